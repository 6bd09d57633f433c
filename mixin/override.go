package mixin

import (
	"mixer/internal/common"
	"mixer/internal/syntax"
)

// overrideDependencies rewrites the dependency lists named by spec
// ("key1:[a,b],key2:[c]") onto the descriptor's own copy of the logic.
// A plain callable gains the list; an existing list is replaced. The action
// itself is left untouched.
func overrideDependencies(d *Descriptor, spec string) error {
	overrides, err := syntax.ParseOverrides(spec)
	if err != nil {
		return &Error{
			Code:    CodeInvalidDependencyOverride,
			Mixin:   d.Name,
			Message: "invalid dependency override",
			Err:     err,
		}
	}

	for _, o := range overrides {
		impl, ok := d.Logic[o.Member]
		if !ok {
			return newError(CodeInvalidDependencyOverride, d.Name, o.Member,
				"invalid dependency override: mixin logic %s does not exist", o.Member)
		}

		impl.Depends = common.Clone(o.Depends)
		d.Logic[o.Member] = impl
	}

	return nil
}
