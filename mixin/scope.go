package mixin

import "mixer/internal/common"

//go:generate go tool stringer -type=ScopeKind -linecomment -output=scopekind_string.go

// ScopeKind addresses one of the two member tables of a target.
type ScopeKind int

const (
	// ScopeShared is the target's own member table.
	ScopeShared ScopeKind = iota // shared
	// ScopeInstance is the table inherited by objects created from a type.
	ScopeInstance // instance
)

// Scope is an ordered table of members with an optional parent consulted by
// lookups.
type Scope struct {
	kind    ScopeKind
	owner   string
	parent  *Scope
	names   []string
	members map[string]*Member
}

// NewScope creates an empty scope. parent may be nil.
func NewScope(kind ScopeKind, owner string, parent *Scope) *Scope {
	return &Scope{
		kind:    kind,
		owner:   owner,
		parent:  parent,
		members: make(map[string]*Member),
	}
}

// Kind returns the scope kind.
func (s *Scope) Kind() ScopeKind { return s.kind }

// Owner returns the name of the target owning the scope.
func (s *Scope) Owner() string { return s.owner }

// Parent returns the scope consulted after this one, if any.
func (s *Scope) Parent() *Scope { return s.parent }

// Own returns the member bound directly on this scope.
func (s *Scope) Own(name string) (*Member, bool) {
	m, ok := s.members[name]
	return m, ok
}

// Lookup returns the member visible under name, walking parents.
func (s *Scope) Lookup(name string) (*Member, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if m, ok := cur.members[name]; ok {
			return m, true
		}
	}

	return nil, false
}

// Has reports whether name resolves on this scope or a parent.
func (s *Scope) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Define binds a native member.
func (s *Scope) Define(name string, fn Func) *Scope {
	s.Install(Native(name, fn))
	return s
}

// Install binds m under its name, replacing any own binding.
func (s *Scope) Install(m *Member) {
	if _, exists := s.members[m.name]; !exists {
		s.names = append(s.names, m.name)
	}

	s.members[m.name] = m
}

// Names returns own member names in first-definition order.
func (s *Scope) Names() []string {
	return common.Clone(s.names)
}

// Members returns own members in first-definition order.
func (s *Scope) Members() []*Member {
	out := make([]*Member, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, s.members[n])
	}

	return out
}
