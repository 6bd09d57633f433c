package mixin

import (
	"fmt"
	"strings"
)

// Func is the callable shape of every member. self is the receiver the
// member was invoked on.
type Func func(self Self, args ...any) (any, error)

// Self is the receiver handed to every member invocation.
type Self interface {
	// Call invokes the named member on the receiver.
	Call(name string, args ...any) (any, error)
	// Has reports whether the receiver can resolve the named member.
	Has(name string) bool
}

// Super is the previous implementation bound to the current receiver. It is
// passed as the first argument to members installed with mergeOver.
type Super func(args ...any) (any, error)

// TakeSuper splits a leading Super off args. It returns a nil Super when the
// member was not installed with mergeOver.
func TakeSuper(args []any) (Super, []any) {
	if len(args) > 0 {
		if s, ok := args[0].(Super); ok {
			return s, args[1:]
		}
	}

	return nil, args
}

// Member is one binding in a scope. A member installed by a composition
// strategy keeps the binding it replaced as Previous, so the full layering
// is inspectable through Chain.
type Member struct {
	name     string
	origin   string
	strategy Strategy
	fn       Func
	previous *Member
}

// Native creates a member that is not the product of a composition.
func Native(name string, fn Func) *Member {
	return &Member{name: name, strategy: StrategyNative, fn: fn}
}

func newBinding(name, origin string, strategy Strategy, fn Func, previous *Member) *Member {
	return &Member{
		name:     name,
		origin:   origin,
		strategy: strategy,
		fn:       fn,
		previous: previous,
	}
}

// Name returns the name the member is installed under.
func (m *Member) Name() string { return m.name }

// Origin returns the mixin that installed the member, or "" for native members.
func (m *Member) Origin() string { return m.origin }

// Strategy returns the strategy the member was installed with.
func (m *Member) Strategy() Strategy { return m.strategy }

// Previous returns the binding this member replaced, if any.
func (m *Member) Previous() *Member { return m.previous }

// Chain returns the composition layers, outermost first.
func (m *Member) Chain() []*Member {
	var out []*Member
	for cur := m; cur != nil; cur = cur.previous {
		out = append(out, cur)
	}

	return out
}

// String renders the chain, e.g. "prepend(LandAnimal) > merge(WaterAnimal)".
func (m *Member) String() string {
	chain := m.Chain()
	parts := make([]string, 0, len(chain))

	for _, layer := range chain {
		if layer.origin == "" {
			parts = append(parts, layer.strategy.String())
			continue
		}

		parts = append(parts, layer.strategy.String()+"("+layer.origin+")")
	}

	return strings.Join(parts, " > ")
}

// Invoke runs the member against self.
func (m *Member) Invoke(self Self, args ...any) (any, error) {
	switch m.strategy {
	case StrategyNative, StrategyMerge:
		return m.fn(self, args...)

	case StrategyMergeOver:
		prev, err := m.requirePrevious()
		if err != nil {
			return nil, err
		}

		super := Super(func(a ...any) (any, error) {
			return prev.Invoke(self, a...)
		})

		return m.fn(self, append([]any{super}, args...)...)

	case StrategyPrepend:
		prev, err := m.requirePrevious()
		if err != nil {
			return nil, err
		}

		if _, err := m.fn(self, args...); err != nil {
			return nil, err
		}

		return prev.Invoke(self, args...)

	case StrategyAppend:
		prev, err := m.requirePrevious()
		if err != nil {
			return nil, err
		}

		value, err := prev.Invoke(self, args...)
		if err != nil {
			return nil, err
		}

		if _, err := m.fn(self, args...); err != nil {
			return nil, err
		}

		return value, nil

	case StrategyAwaitPrepend:
		prev, err := m.requirePrevious()
		if err != nil {
			return nil, err
		}

		return Async(func() (any, error) {
			if _, err := Await(m.fn(self, args...)); err != nil {
				return nil, err
			}

			return Await(prev.Invoke(self, args...))
		}), nil

	case StrategyAwaitAppend:
		prev, err := m.requirePrevious()
		if err != nil {
			return nil, err
		}

		return Async(func() (any, error) {
			value, err := Await(prev.Invoke(self, args...))
			if err != nil {
				return nil, err
			}

			if _, err := Await(m.fn(self, args...)); err != nil {
				return nil, err
			}

			return value, nil
		}), nil

	default:
		return nil, fmt.Errorf("member %q: unknown strategy %d", m.name, int(m.strategy))
	}
}

func (m *Member) requirePrevious() (*Member, error) {
	if m.previous == nil {
		return nil, fmt.Errorf("%w: %s has no previous implementation", ErrNoMember, m.name)
	}

	return m.previous, nil
}
