package mixin

import (
	"errors"

	"mixer/internal/depgraph"
)

// Structure applies schema to target in a single synchronous pass. A
// failure aborts the pass; members installed before it stay installed.
func (e *Engine) Structure(target Target, schema *Schema) error {
	if target == nil {
		return newError(CodeInvalidMergeSchema, "", "", "structure: nil target")
	}

	if schema == nil {
		return newError(CodeInvalidMergeSchema, "", "", "structure: nil schema for %s", target.Name())
	}

	return e.structure(target, schema, false)
}

func (e *Engine) structure(target Target, schema *Schema, instance bool) error {
	for _, entry := range schema.entries {
		if entry.Nested != nil {
			if instance {
				return newError(CodeInvalidMergeSchema, "", "",
					"%q wrapper may only nest one level", InstanceKey)
			}

			if err := e.structure(target, entry.Nested, true); err != nil {
				return err
			}

			continue
		}

		strategy, err := ParseStrategy(entry.Key)
		if err != nil {
			return err
		}

		descriptors := make([]*Descriptor, 0, len(entry.Refs))

		for _, ref := range entry.Refs {
			d, err := e.Resolve(ref)
			if err != nil {
				return err
			}

			if instance {
				d.UsesInstance = true
			}

			descriptors = append(descriptors, d)
		}

		if err := e.merge(target, strategy, descriptors); err != nil {
			return err
		}
	}

	return nil
}

// merge installs every descriptor's members with one strategy.
func (e *Engine) merge(target Target, strategy Strategy, descriptors []*Descriptor) error {
	for _, d := range descriptors {
		kind := ScopeShared
		if d.UsesInstance {
			kind = ScopeInstance
		}

		scope, ok := target.Scope(kind)
		if !ok {
			return newError(CodeNoInstanceScope, d.Name, "", "target %s has no %s scope", target.Name(), kind)
		}

		installs, err := d.Installs()
		if err != nil {
			return err
		}

		if e.config.OrderByDependencies {
			installs, err = orderInstalls(d, installs)
			if err != nil {
				return err
			}
		}

		for _, in := range installs {
			impl := d.Logic[in.Key]
			previous, exists := scope.Lookup(in.Name)

			if err := checkInstall(strategy, d.Name, in.Name, exists, missingDependencies(scope, impl)); err != nil {
				return err
			}

			scope.Install(newBinding(in.Name, d.Name, strategy, impl.Action, previous))

			e.log.Debug("installed member",
				"target", target.Name(),
				"scope", kind.String(),
				"mixin", d.Name,
				"member", in.Name,
				"strategy", strategy.String())
		}
	}

	return nil
}

// orderInstalls sorts installs so that members depended upon by other
// members of the same descriptor are installed first. Ties keep
// declaration order.
func orderInstalls(d *Descriptor, installs []Install) ([]Install, error) {
	order, err := depgraph.Sort(len(installs), func(i int) []int {
		var deps []int

		for _, dep := range d.Logic[installs[i].Key].Depends {
			for j, other := range installs {
				if j != i && other.Name == dep {
					deps = append(deps, j)
				}
			}
		}

		return deps
	})
	if err != nil {
		if errors.Is(err, depgraph.ErrCycle) {
			return nil, &Error{
				Code:    CodeDependencyCycle,
				Mixin:   d.Name,
				Message: "members depend on each other",
				Err:     err,
			}
		}

		return nil, err
	}

	out := make([]Install, 0, len(order))
	for _, i := range order {
		out = append(out, installs[i])
	}

	return out, nil
}
