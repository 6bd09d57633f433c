package mixin

// Register structures t from the merge schema attached to it under member,
// or under the configured SchemaMember when member is empty. The attached
// value is a *Schema, a func() *Schema or a func() (*Schema, error).
func (e *Engine) Register(t *Type, member string) error {
	if member == "" {
		member = e.config.SchemaMember
	}

	if t == nil {
		return newError(CodeInvalidMergeSchema, "", "", "failed to register: nil type")
	}

	v, ok := t.Attached(member)
	if !ok {
		return newError(CodeInvalidMergeSchema, t.Name(), "",
			"failed to register: missing merge schema member %s", member)
	}

	schema, err := attachedSchema(v)
	if err != nil {
		return &Error{
			Code:    CodeInvalidMergeSchema,
			Mixin:   t.Name(),
			Message: "failed to register: merge schema member " + member,
			Err:     err,
		}
	}

	return e.Structure(t, schema)
}

func attachedSchema(v any) (*Schema, error) {
	var (
		s   *Schema
		err error
	)

	switch fn := v.(type) {
	case *Schema:
		s = fn
	case func() *Schema:
		s = fn()
	case func() (*Schema, error):
		s, err = fn()
	default:
		return nil, newError(CodeInvalidMergeSchema, "", "", "got %T, want *Schema or a function returning one", v)
	}

	if err != nil {
		return nil, err
	}

	if s == nil {
		return nil, newError(CodeInvalidMergeSchema, "", "", "schema is nil")
	}

	return s, nil
}
