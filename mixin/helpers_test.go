package mixin

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// arg returns args[i] formatted as a string, ignoring a leading Super.
func arg(args []any, i int) string {
	_, rest := TakeSuper(args)
	if i >= len(rest) || rest[i] == nil {
		return ""
	}

	return fmt.Sprint(rest[i])
}

func text(s string) Func {
	return func(Self, ...any) (any, error) { return s, nil }
}

// buildTestLandTraits mirrors a land animal: run, walk, catchAnimal, hunt, environments.
func buildTestLandTraits() *Fragment {
	return NewFragment().
		Fn("run", func(_ Self, args ...any) (any, error) {
			return "Runs toward the " + arg(args, 0), nil
		}).
		Fn("walk", text("walks")).
		Fn("catchAnimal", func(_ Self, args ...any) (any, error) {
			return "Yummy " + arg(args, 0), nil
		}).
		Fn("hunt", text("Looks in the bushes")).
		Fn("environments", func(_ Self, args ...any) (any, error) {
			_, rest := TakeSuper(args)
			types := rest[0].(*[]string)
			*types = append(*types, "grasslands")

			return nil, nil
		})
}

// buildTestWaterTraits mirrors a water animal; transitionToLand depends on walk.
func buildTestWaterTraits() *Fragment {
	return NewFragment().
		Fn("swim", func(_ Self, args ...any) (any, error) {
			return "Swims toward the " + arg(args, 0), nil
		}).
		Fn("catchFish", func(_ Self, args ...any) (any, error) {
			return "Yummy " + arg(args, 0), nil
		}).
		Fn("hunt", text("Looks in the water")).
		Fn("environments", func(_ Self, args ...any) (any, error) {
			_, rest := TakeSuper(args)
			types := rest[0].(*[]string)
			*types = append(*types, "rivers")

			return nil, nil
		}).
		Action("transitionToLand", func(self Self, _ ...any) (any, error) {
			swim, err := self.Call("swim", "shore")
			if err != nil {
				return nil, err
			}

			walk, err := self.Call("walk")
			if err != nil {
				return nil, err
			}

			return fmt.Sprintf("%v, then %v", swim, walk), nil
		}, "walk")
}

// buildTestTransition overrides transitionToLand and needs runs.
func buildTestTransition() *Fragment {
	return NewFragment().
		Action("transitionToLand", func(self Self, args ...any) (any, error) {
			super, _ := TakeSuper(args)

			before, err := super()
			if err != nil {
				return nil, err
			}

			runs, err := self.Call("runs", "horizon")
			if err != nil {
				return nil, err
			}

			return fmt.Sprintf("%v. Then: %v", before, runs), nil
		}, "runs")
}

// buildTestAnimalType has run, swim and environments on its instance scope.
func buildTestAnimalType() *Type {
	return NewType("Animal").
		Define("run", text("Can`t run")).
		Define("swim", text("Can`t swim")).
		Define("environments", func(_ Self, args ...any) (any, error) {
			return args[0], nil
		})
}

func buildTestEngine(t *testing.T) *Engine {
	t.Helper()

	reg := NewRegistry()
	require.NoError(t, reg.RegisterFragment("LandAnimal", buildTestLandTraits()))
	require.NoError(t, reg.RegisterFragment("WaterAnimal", buildTestWaterTraits()))

	return New(reg, DefaultConfig())
}

func call(t *testing.T, self Self, name string, args ...any) any {
	t.Helper()

	v, err := self.Call(name, args...)
	require.NoError(t, err)

	return v
}
