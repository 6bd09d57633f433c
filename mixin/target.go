package mixin

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoMember is returned by the host when a called member does not resolve.
var ErrNoMember = errors.New("no such member")

// Target is anything members can be composed onto.
type Target interface {
	// Name identifies the target in errors and logs.
	Name() string
	// Scope returns the member table of the given kind, if the target has one.
	Scope(kind ScopeKind) (*Scope, bool)
}

// Type is a named type. Its shared scope holds type-level members; its
// instance scope holds the members every Object created from it inherits.
type Type struct {
	name     string
	base     *Type
	shared   *Scope
	instance *Scope
	inits    []func(*Object)
	attached map[string]any
}

// NewType creates a type with empty scopes.
func NewType(name string) *Type {
	return &Type{
		name:     name,
		shared:   NewScope(ScopeShared, name, nil),
		instance: NewScope(ScopeInstance, name, nil),
		attached: make(map[string]any),
	}
}

// Extend derives a type whose scopes fall back to t's scopes.
func (t *Type) Extend(name string) *Type {
	return &Type{
		name:     name,
		base:     t,
		shared:   NewScope(ScopeShared, name, t.shared),
		instance: NewScope(ScopeInstance, name, t.instance),
		attached: make(map[string]any),
	}
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Base returns the type t was derived from, or nil.
func (t *Type) Base() *Type { return t.base }

// Scope implements Target.
func (t *Type) Scope(kind ScopeKind) (*Scope, bool) {
	switch kind {
	case ScopeShared:
		return t.shared, true
	case ScopeInstance:
		return t.instance, true
	default:
		return nil, false
	}
}

// SharedScope returns the type-level member table.
func (t *Type) SharedScope() *Scope { return t.shared }

// InstanceScope returns the member table inherited by objects.
func (t *Type) InstanceScope() *Scope { return t.instance }

// Define binds a native instance member.
func (t *Type) Define(name string, fn Func) *Type {
	t.instance.Define(name, fn)
	return t
}

// DefineShared binds a native type-level member.
func (t *Type) DefineShared(name string, fn Func) *Type {
	t.shared.Define(name, fn)
	return t
}

// OnInit registers a hook run by New. Base hooks run before derived ones.
func (t *Type) OnInit(fn func(*Object)) *Type {
	t.inits = append(t.inits, fn)
	return t
}

// Attach stores a named type-level value, such as a merge schema.
func (t *Type) Attach(name string, value any) *Type {
	t.attached[name] = value
	return t
}

// Attached returns a named type-level value, consulting base types.
func (t *Type) Attached(name string) (any, bool) {
	for cur := t; cur != nil; cur = cur.base {
		if v, ok := cur.attached[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// DerivesFrom reports whether t is other or was derived from it.
func (t *Type) DerivesFrom(other *Type) bool {
	for cur := t; cur != nil; cur = cur.base {
		if cur == other {
			return true
		}
	}

	return false
}

// New creates an object whose members resolve through t's instance scope.
func (t *Type) New() *Object {
	o := &Object{
		typ:    t,
		scope:  NewScope(ScopeShared, t.name, t.instance),
		fields: make(map[string]any),
	}

	var lineage []*Type
	for cur := t; cur != nil; cur = cur.base {
		lineage = append(lineage, cur)
	}

	for i := len(lineage) - 1; i >= 0; i-- {
		for _, fn := range lineage[i].inits {
			fn(o)
		}
	}

	return o
}

// Call invokes a type-level member with t as the receiver.
func (t *Type) Call(name string, args ...any) (any, error) {
	m, ok := t.shared.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoMember, t.name, name)
	}

	return m.Invoke(t, args...)
}

// Has reports whether a type-level member resolves.
func (t *Type) Has(name string) bool {
	return t.shared.Has(name)
}

// CallSuper invokes the instance member name as defined above t, with self
// as the receiver.
func (t *Type) CallSuper(self Self, name string, args ...any) (any, error) {
	if t.base == nil {
		return nil, fmt.Errorf("%w: %s has no base for %s", ErrNoMember, t.name, name)
	}

	m, ok := t.base.instance.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: super.%s on %s", ErrNoMember, name, t.name)
	}

	return m.Invoke(self, args...)
}

// Object is an instance of a Type. It owns a shared scope that falls back to
// its type's instance scope, and a bag of fields.
type Object struct {
	typ   *Type
	scope *Scope

	mu     sync.RWMutex
	fields map[string]any
}

// Type returns the type the object was created from.
func (o *Object) Type() *Type { return o.typ }

// Name implements Target.
func (o *Object) Name() string { return o.typ.name }

// Scope implements Target. Objects have no instance scope.
func (o *Object) Scope(kind ScopeKind) (*Scope, bool) {
	if kind == ScopeShared {
		return o.scope, true
	}

	return nil, false
}

// Define binds a native member on this object only.
func (o *Object) Define(name string, fn Func) *Object {
	o.scope.Define(name, fn)
	return o
}

// Call invokes a member with o as the receiver.
func (o *Object) Call(name string, args ...any) (any, error) {
	m, ok := o.scope.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoMember, o.typ.name, name)
	}

	return m.Invoke(o, args...)
}

// Has reports whether a member resolves on the object.
func (o *Object) Has(name string) bool {
	return o.scope.Has(name)
}

// Get returns a field value.
func (o *Object) Get(field string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	v, ok := o.fields[field]

	return v, ok
}

// GetString returns a field as a string, or "" when unset or not a string.
func (o *Object) GetString(field string) string {
	v, _ := o.Get(field)
	s, _ := v.(string)

	return s
}

// Set stores a field value.
func (o *Object) Set(field string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.fields[field] = value
}
