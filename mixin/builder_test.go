package mixin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_StickyError(t *testing.T) {
	e := buildTestEngine(t)
	obj := NewType("Heron").New()

	b := e.Mix(obj).
		MergeOver(R("LandAnimal(walk)")).
		Merge(R("LandAnimal(run)"))

	require.ErrorIs(t, b.Err(), ErrOverrideOfMissingMember)
	assert.False(t, obj.Has("run"))

	_, err := b.AppendAndDeclare(R("LandAnimal(walk)"))
	require.ErrorIs(t, err, ErrOverrideOfMissingMember)
}

func TestBuilder_Instance(t *testing.T) {
	e := buildTestEngine(t)
	heron := NewType("Heron")

	b := e.Mix(heron)
	b.Instance().Merge(R("LandAnimal(walk)"))
	b.Merge(R("LandAnimal(hunt)"))

	require.NoError(t, b.Err())
	assert.True(t, heron.InstanceScope().Has("walk"))
	assert.True(t, heron.SharedScope().Has("hunt"))
	assert.Same(t, heron, b.Target())
}

func TestBuilder_InstanceSharesError(t *testing.T) {
	e := buildTestEngine(t)
	b := e.Mix(NewType("Heron").New())

	b.Instance().Merge(R("LandAnimal(walk)"))

	require.ErrorIs(t, b.Err(), ErrNoInstanceScope)
}

func TestBuilder_DeclareVariants(t *testing.T) {
	rec := &recorder{}
	e := New(nil, DefaultConfig())
	obj := NewType("Bird").Define("sing", func(Self, ...any) (any, error) {
		rec.add("base")
		return "tweet", nil
	}).New()

	hook := func(step string) *Fragment {
		return NewFragment().Fn("sing", func(Self, ...any) (any, error) {
			rec.add(step)
			return nil, nil
		})
	}

	_, err := e.Mix(obj).PrependAndDeclare(Inline("Before", hook("before")))
	require.NoError(t, err)

	_, err = e.Mix(obj).AppendAndDeclare(Inline("After", hook("after")))
	require.NoError(t, err)

	_, err = e.Mix(obj).AwaitPrependAndDeclare(Inline("AwaitBefore", hook("awaitBefore")))
	require.NoError(t, err)

	_, err = e.Mix(obj).AwaitAppendAndDeclare(Inline("AwaitAfter", hook("awaitAfter")))
	require.NoError(t, err)

	_, err = e.Mix(obj).MergeOverAndDeclare(Single("sing", Fn(func(_ Self, args ...any) (any, error) {
		super, rest := TakeSuper(args)
		return Await(super(rest...))
	})))
	require.NoError(t, err)

	v, err := obj.Call("sing")
	require.NoError(t, err)
	assert.Equal(t, "tweet", v)
	assert.Equal(t, []string{"awaitBefore", "before", "base", "after", "awaitAfter"}, rec.get())
}

func TestBuilder_Through(t *testing.T) {
	e := New(nil, DefaultConfig())

	bird, err := e.Mix(buildTestAnimalType()).Through(buildTestBird)
	require.NoError(t, err)
	assert.Equal(t, "Bird", bird.Name())

	_, err = e.Mix(buildTestAnimalType().New()).Through(buildTestBird)
	require.ErrorIs(t, err, ErrUnresolvedChainMixin)
}
