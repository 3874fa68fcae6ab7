package namespace

import (
	"fmt"
	"strings"

	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
)

// NotFoundError reports a name that does not resolve, or a def that the
// validated record does not fit.
type NotFoundError struct {
	Name   string
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("def not found: %s", e.Name)
}

func (e *NotFoundError) Unwrap() error { return errors.ErrNotFound }

// MissingTagError reports a mandatory or compulsory tag absent from a record.
type MissingTagError struct {
	Tag        string
	Compulsory bool
}

func (e *MissingTagError) Error() string {
	if e.Compulsory {
		return fmt.Sprintf("missing compulsory tag: %s", e.Tag)
	}
	return fmt.Sprintf("missing mandatory tag: %s", e.Tag)
}

func (e *MissingTagError) Unwrap() error {
	if e.Compulsory {
		return errors.ErrMissingCompulsoryTag
	}
	return errors.ErrMissingMandatoryTag
}

// KindMismatchError reports a tag whose value kind differs from its def's kind.
type KindMismatchError struct {
	Tag      string
	Actual   hval.Kind
	Expected hval.Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s: kind mismatch: got %s, want %s", e.Tag, e.Actual, e.Expected)
}

func (e *KindMismatchError) Unwrap() error { return errors.ErrKindMismatch }

// InvalidArgumentError reports a subject that is not a record.
type InvalidArgumentError struct {
	Arg string
	Got hval.Kind
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: expected dict, got %s", e.Arg, e.Got)
}

func (e *InvalidArgumentError) Unwrap() error { return errors.ErrInvalidArgument }

// notFound builds a NotFoundError, hinting at close names when there are any.
func (ns *Namespace) notFound(name, reason string) error {
	var err error = &NotFoundError{Name: name, Reason: reason}
	if reason != "" {
		return err
	}
	if suggestions := ns.Suggest(name); len(suggestions) > 0 {
		err = errors.WithHintf(err, "did you mean: %s", strings.Join(suggestions, ", "))
	}
	return err
}
