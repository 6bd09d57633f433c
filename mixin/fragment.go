package mixin

import (
	"mixer/internal/common"
)

// Implementation is one fragment member: the callable plus the members that
// must already resolve on the target before it may be installed.
type Implementation struct {
	Action  Func
	Depends []string
}

// Fn wraps a plain callable with no declared dependencies.
func Fn(fn Func) Implementation {
	return Implementation{Action: fn}
}

// Action wraps a callable together with its dependencies.
func Action(fn Func, depends ...string) Implementation {
	if depends == nil {
		depends = []string{}
	}

	return Implementation{Action: fn, Depends: depends}
}

// HasDepends reports whether the implementation declares a dependency list.
func (i Implementation) HasDepends() bool {
	return i.Depends != nil
}

func (i Implementation) clone() Implementation {
	return Implementation{Action: i.Action, Depends: common.Clone(i.Depends)}
}

// Fragment is an ordered map of member implementations.
type Fragment struct {
	keys  []string
	logic map[string]Implementation
}

// NewFragment creates an empty fragment.
func NewFragment() *Fragment {
	return &Fragment{logic: make(map[string]Implementation)}
}

// Set binds name to impl. Rebinding keeps the original position.
func (f *Fragment) Set(name string, impl Implementation) *Fragment {
	if _, exists := f.logic[name]; !exists {
		f.keys = append(f.keys, name)
	}

	f.logic[name] = impl

	return f
}

// Fn binds a plain callable.
func (f *Fragment) Fn(name string, fn Func) *Fragment {
	return f.Set(name, Fn(fn))
}

// Action binds a callable with dependencies.
func (f *Fragment) Action(name string, fn Func, depends ...string) *Fragment {
	return f.Set(name, Action(fn, depends...))
}

// Keys returns member names in declaration order.
func (f *Fragment) Keys() []string {
	return common.Clone(f.keys)
}

// Get returns the implementation bound to name.
func (f *Fragment) Get(name string) (Implementation, bool) {
	impl, ok := f.logic[name]
	return impl, ok
}

// Len returns the number of members.
func (f *Fragment) Len() int {
	return len(f.keys)
}

// Clone returns a deep copy; dependency slices are not shared.
func (f *Fragment) Clone() *Fragment {
	out := &Fragment{
		keys:  common.Clone(f.keys),
		logic: make(map[string]Implementation, len(f.logic)),
	}

	for k, impl := range f.logic {
		out.logic[k] = impl.clone()
	}

	return out
}

// validate reports the first member without a callable.
func (f *Fragment) validate() (string, bool) {
	for _, k := range f.keys {
		if f.logic[k].Action == nil {
			return k, false
		}
	}

	return "", true
}
