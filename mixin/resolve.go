package mixin

import (
	"mixer/internal/syntax"
)

// Resolve normalizes a reference into a fresh descriptor. Registry entries
// are copied, never returned by reference, so dependency overrides do not
// leak back into the registry.
func (e *Engine) Resolve(ref Ref) (*Descriptor, error) {
	var (
		d   *Descriptor
		err error
	)

	switch {
	case ref.Lookup != "":
		if ref.Fragment != nil || ref.Impl != nil {
			return nil, newError(CodeInvalidMergeSchema, ref.Name, "",
				"reference carries both inline logic and a registry lookup %q", ref.Lookup)
		}

		d, err = e.resolveLookup(ref)

	case ref.Fragment != nil:
		if ref.Impl != nil {
			return nil, newError(CodeInvalidMergeSchema, ref.Name, "",
				"reference carries both a fragment and a single implementation")
		}

		d, err = resolveInline(ref.Name, ref.Fragment)

	case ref.Impl != nil:
		d, err = resolveInline(ref.Name, NewFragment().Set(ref.Name, *ref.Impl))

	default:
		return nil, newError(CodeInvalidMergeSchema, ref.Name, "",
			"reference names neither a fragment nor a registered mixin")
	}

	if err != nil {
		return nil, err
	}

	if len(d.Use) == 0 && len(ref.Use) > 0 {
		use, err := syntax.ParseUseList(ref.Use)
		if err != nil {
			return nil, &Error{
				Code:    CodeInvalidReference,
				Mixin:   d.Name,
				Message: "invalid use list",
				Err:     err,
			}
		}

		d.Use = use
	}

	if ref.Instance {
		d.UsesInstance = true
	}

	if ref.OverrideDepends != "" {
		if err := overrideDependencies(d, ref.OverrideDepends); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func (e *Engine) resolveLookup(ref Ref) (*Descriptor, error) {
	parsed, err := syntax.ParseReference(ref.Lookup)
	if err != nil {
		return nil, &Error{
			Code:    CodeInvalidReference,
			Mixin:   ref.Name,
			Message: "malformed mixin reference",
			Err:     err,
		}
	}

	f, ok := e.registry.fragment(parsed.Name)
	if !ok {
		if _, isChain := e.registry.Transformer(parsed.Name); isChain {
			return nil, newError(CodeMixinNotRegistered, parsed.Name, "",
				"mixin %s is registered as a chain transformer, not a merge fragment", parsed.Name)
		}

		return nil, newError(CodeMixinNotRegistered, parsed.Name, "", "mixin %s is not registered", parsed.Name)
	}

	d := newDescriptor(parsed.Name, f)
	if parsed.HasUse {
		d.Use = parsed.Use
	}

	return d, nil
}

func resolveInline(name string, f *Fragment) (*Descriptor, error) {
	if name == "" {
		return nil, newError(CodeInvalidMergeSchema, "", "", "inline fragment without a name")
	}

	if key, ok := f.validate(); !ok {
		return nil, newError(CodeInvalidFragment, name, key, "member %q has no callable", key)
	}

	return newDescriptor(name, f), nil
}
