package mixin

// Builder is a fluent front end over Structure. The first error sticks:
// later calls are no-ops and Err reports it.
type Builder struct {
	engine   *Engine
	target   Target
	instance bool
	err      *error
}

// Mix starts a builder for target.
func (e *Engine) Mix(target Target) *Builder {
	return &Builder{engine: e, target: target, err: new(error)}
}

// Instance returns a builder that installs into the instance scope of the
// same target. It shares the error state of its parent.
func (b *Builder) Instance() *Builder {
	return &Builder{engine: b.engine, target: b.target, instance: true, err: b.err}
}

// Target returns the target being built.
func (b *Builder) Target() Target {
	return b.target
}

// Err returns the first error raised by the builder chain.
func (b *Builder) Err() error {
	return *b.err
}

// Through folds chain transformers over the target, which must be a *Type.
func (b *Builder) Through(refs ...any) (*Type, error) {
	if *b.err != nil {
		return nil, *b.err
	}

	t, ok := b.target.(*Type)
	if !ok {
		return nil, newError(CodeUnresolvedChainMixin, "", "", "chain base %s is not a type", b.target.Name())
	}

	return b.engine.Through(t, refs...)
}

func (b *Builder) apply(strategy Strategy, refs []Ref) *Builder {
	if *b.err != nil {
		return b
	}

	if b.instance {
		marked := make([]Ref, len(refs))
		for i, r := range refs {
			marked[i] = r.OnInstance()
		}

		refs = marked
	}

	*b.err = b.engine.Structure(b.target, NewSchema().Add(strategy.String(), refs...))

	return b
}

func (b *Builder) declare(strategy Strategy, refs []Ref) (Target, error) {
	if err := b.apply(strategy, refs).Err(); err != nil {
		return nil, err
	}

	return b.target, nil
}

// Merge adds new members.
func (b *Builder) Merge(refs ...Ref) *Builder { return b.apply(StrategyMerge, refs) }

// MergeOver overrides existing members, passing the previous one as Super.
func (b *Builder) MergeOver(refs ...Ref) *Builder { return b.apply(StrategyMergeOver, refs) }

// Prepend runs fragments before existing members.
func (b *Builder) Prepend(refs ...Ref) *Builder { return b.apply(StrategyPrepend, refs) }

// AwaitPrepend runs fragments to completion before existing members.
func (b *Builder) AwaitPrepend(refs ...Ref) *Builder { return b.apply(StrategyAwaitPrepend, refs) }

// Append runs fragments after existing members.
func (b *Builder) Append(refs ...Ref) *Builder { return b.apply(StrategyAppend, refs) }

// AwaitAppend runs fragments after existing members complete.
func (b *Builder) AwaitAppend(refs ...Ref) *Builder { return b.apply(StrategyAwaitAppend, refs) }

// MergeAndDeclare is Merge returning the target.
func (b *Builder) MergeAndDeclare(refs ...Ref) (Target, error) { return b.declare(StrategyMerge, refs) }

// MergeOverAndDeclare is MergeOver returning the target.
func (b *Builder) MergeOverAndDeclare(refs ...Ref) (Target, error) {
	return b.declare(StrategyMergeOver, refs)
}

// PrependAndDeclare is Prepend returning the target.
func (b *Builder) PrependAndDeclare(refs ...Ref) (Target, error) {
	return b.declare(StrategyPrepend, refs)
}

// AwaitPrependAndDeclare is AwaitPrepend returning the target.
func (b *Builder) AwaitPrependAndDeclare(refs ...Ref) (Target, error) {
	return b.declare(StrategyAwaitPrepend, refs)
}

// AppendAndDeclare is Append returning the target.
func (b *Builder) AppendAndDeclare(refs ...Ref) (Target, error) {
	return b.declare(StrategyAppend, refs)
}

// AwaitAppendAndDeclare is AwaitAppend returning the target.
func (b *Builder) AwaitAppendAndDeclare(refs ...Ref) (Target, error) {
	return b.declare(StrategyAwaitAppend, refs)
}
