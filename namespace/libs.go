package namespace

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/j2inn/haystack-core-sub001/errors"
)

// LibPrefix is the feature prefix of library defs.
const LibPrefix = "lib"

// Libs returns the library defs in table order.
func (ns *Namespace) Libs() []*Def { return ns.FeatureDefs(LibPrefix) }

// LibVersion returns the parsed version of a library. name may be given with
// or without the "lib:" prefix.
func (ns *Namespace) LibVersion(name string) (*semver.Version, error) {
	def, ok := ns.defs[libName(name)]
	if !ok {
		return nil, ns.notFound(libName(name), "")
	}
	if def.meta.Version == "" {
		return nil, errors.Wrapf(errors.ErrNotFound, "%s: no version", def.name)
	}
	v, err := semver.NewVersion(def.meta.Version)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidArgument, "%s: version %q: %v", def.name, def.meta.Version, err)
	}
	return v, nil
}

// RequireLib checks that a library is present and its version satisfies constraint,
// e.g. ">= 3.9, < 4".
func (ns *Namespace) RequireLib(name, constraint string) error {
	v, err := ns.LibVersion(name)
	if err != nil {
		return err
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidArgument, "constraint %q: %v", constraint, err)
	}
	if !c.Check(v) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrConflict, "%s %s does not satisfy %s", libName(name), v, constraint),
			"load a def set providing %s %s", libName(name), constraint)
	}
	return nil
}

func libName(name string) string {
	if strings.HasPrefix(name, LibPrefix+":") {
		return name
	}
	return LibPrefix + ":" + name
}
