package mixin

import "fmt"

// Transformer derives a new type from base, typically with Type.Extend.
type Transformer func(base *Type) *Type

// Through folds transformers over base, left to right: Through(T, A, B)
// returns B(A(T)). Each reference is a registered name, a Transformer or a
// func(*Type) *Type. No conflict checking is done; later transformers may
// redefine anything earlier ones introduced.
func (e *Engine) Through(base *Type, refs ...any) (*Type, error) {
	if base == nil {
		return nil, newError(CodeUnresolvedChainMixin, "", "", "chain has no base type")
	}

	current := base

	for _, ref := range refs {
		fn, name, err := e.transformer(ref)
		if err != nil {
			return nil, err
		}

		next := fn(current)
		if next == nil {
			return nil, newError(CodeUnresolvedChainMixin, name, "",
				"transformer %s returned no type for %s", name, current.Name())
		}

		e.log.Debug("applied chain transformer", "base", current.Name(), "transformer", name, "derived", next.Name())

		current = next
	}

	return current, nil
}

func (e *Engine) transformer(ref any) (Transformer, string, error) {
	switch v := ref.(type) {
	case string:
		t, ok := e.registry.Transformer(v)
		if !ok {
			return nil, v, newError(CodeUnresolvedChainMixin, v, "",
				"mixin must be a transformer or a name registered with RegisterChain: %s", v)
		}

		return t, v, nil

	case Transformer:
		if v != nil {
			return v, fmt.Sprintf("%T", v), nil
		}

	case func(*Type) *Type:
		if v != nil {
			return Transformer(v), fmt.Sprintf("%T", v), nil
		}
	}

	return nil, "", newError(CodeUnresolvedChainMixin, "", "",
		"mixin must be a transformer or a name registered with RegisterChain: %v (%T)", ref, ref)
}
