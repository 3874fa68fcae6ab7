package namespace

import (
	"github.com/j2inn/haystack-core-sub001/errors"
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
)

// Validate checks that subject legally implements name.
//
// subject must be a record that fits name. Every mandatory def in the
// implementation of name and every compulsory def must be present as a tag,
// and every tag that resolves to a typed def must hold a value of that kind.
// The first violation is returned.
func (ns *Namespace) Validate(name string, subject hval.Value) error {
	rec, err := asRecord(subject)
	if err != nil {
		return err
	}
	return ns.validate(name, rec, ns.Reflect(rec))
}

// ValidateAll validates subject against every entity or marker def it reflects,
// stopping at the first failure.
func (ns *Namespace) ValidateAll(subject hval.Value) error {
	rec, err := asRecord(subject)
	if err != nil {
		return err
	}
	r := ns.Reflect(rec)
	for _, def := range r.defs {
		if !ns.FitsEntity(def.name) && !ns.FitsMarker(def.name) {
			continue
		}
		if err := ns.validate(def.name, rec, r); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether Validate succeeds.
func (ns *Namespace) IsValid(name string, subject hval.Value) bool {
	return ns.Validate(name, subject) == nil
}

func (ns *Namespace) validate(name string, rec *hval.Dict, r *Reflection) error {
	if !ns.Has(name) || !r.Fits(name) {
		return &NotFoundError{Name: name, Reason: "does not fit record"}
	}

	impl, err := ns.Implementation(name)
	if err != nil {
		return errors.Wrapf(err, "implementation of %s", name)
	}

	for _, def := range impl {
		if def.Mandatory() && !rec.Has(def.name) {
			return &MissingTagError{Tag: def.name}
		}
	}
	for _, def := range ns.compulsory {
		if !rec.Has(def.name) {
			return &MissingTagError{Tag: def.name, Compulsory: true}
		}
	}

	for _, tag := range rec.Names() {
		v, _ := rec.Get(tag)
		if hval.IsNull(v) || !ns.Has(tag) {
			continue
		}
		expected := ns.DefToKind(tag)
		if expected == hval.KindNone {
			continue
		}
		if actual := hval.KindOf(v); actual != expected {
			ns.logger.Debugw("Kind mismatch",
				logger.FieldDef, name,
				logger.FieldTag, tag,
				logger.FieldKind, actual.String())
			return &KindMismatchError{Tag: tag, Actual: actual, Expected: expected}
		}
	}
	return nil
}

func asRecord(subject hval.Value) (*hval.Dict, error) {
	rec, ok := subject.(*hval.Dict)
	if !ok || rec == nil {
		return nil, &InvalidArgumentError{Arg: "subject", Got: hval.KindOf(subject)}
	}
	return rec, nil
}
