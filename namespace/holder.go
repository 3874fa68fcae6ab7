package namespace

import (
	"sync"
	"sync/atomic"

	"github.com/j2inn/haystack-core-sub001/hval"
)

// Holder publishes the current Namespace to concurrent readers. Readers that
// loaded an older Namespace keep a consistent view of it after a swap.
type Holder struct {
	current atomic.Pointer[Namespace]
}

// NewHolder returns a holder publishing ns.
func NewHolder(ns *Namespace) *Holder {
	h := &Holder{}
	h.Store(ns)
	return h
}

// Load returns the published Namespace, or an empty one if none was stored.
func (h *Holder) Load() *Namespace {
	if ns := h.current.Load(); ns != nil {
		return ns
	}
	return emptyNamespace()
}

// Store publishes ns. A nil ns is ignored.
func (h *Holder) Store(ns *Namespace) {
	if ns != nil {
		h.current.Store(ns)
	}
}

// Swap publishes ns and returns the previous Namespace, if any.
func (h *Holder) Swap(ns *Namespace) *Namespace {
	if ns == nil {
		return h.current.Load()
	}
	return h.current.Swap(ns)
}

var (
	defaultHolder Holder

	emptyOnce sync.Once
	empty     *Namespace
)

// Default returns the process-wide Namespace. It is never nil.
func Default() *Namespace { return defaultHolder.Load() }

// SetDefault replaces the process-wide Namespace.
func SetDefault(ns *Namespace) { defaultHolder.Store(ns) }

// DefaultHolder returns the holder behind Default, for watchers that refresh it.
func DefaultHolder() *Holder { return &defaultHolder }

func emptyNamespace() *Namespace {
	emptyOnce.Do(func() {
		empty = New(hval.NewGrid())
	})
	return empty
}
