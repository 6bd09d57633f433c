package mixin

import "strings"

// Ref references a mixin inside a merge schema. It takes one of three forms:
//
//   - compact: Lookup holds "Name" or "Name(a, b as c)", resolved in the registry
//   - inline: Name plus Fragment carrying the logic directly
//   - single: Name plus Impl, shorthand for a one-member fragment whose only
//     member is Name
//
// Use, OverrideDepends and Instance apply to every form.
type Ref struct {
	Name            string
	Fragment        *Fragment
	Impl            *Implementation
	Lookup          string
	Use             []string
	OverrideDepends string
	Instance        bool
}

// R references a registered mixin by its compact form.
func R(compact string) Ref {
	return Ref{Lookup: compact}
}

// Named references a registered mixin under a local label, the object form
// whose value is a registry lookup.
func Named(label, compact string) Ref {
	return Ref{Name: label, Lookup: compact}
}

// Inline references a fragment that is not registered.
func Inline(name string, f *Fragment) Ref {
	return Ref{Name: name, Fragment: f}
}

// Single references a one-member fragment named after its member.
func Single(name string, impl Implementation) Ref {
	return Ref{Name: name, Impl: &impl}
}

// Using restricts the installed members.
func (r Ref) Using(use ...string) Ref {
	r.Use = append(append([]string(nil), r.Use...), use...)
	return r
}

// WithDepends sets the dependency override, e.g. "run:[walk]".
func (r Ref) WithDepends(spec string) Ref {
	r.OverrideDepends = spec
	return r
}

// OnInstance targets the instance scope.
func (r Ref) OnInstance() Ref {
	r.Instance = true
	return r
}

// String renders the reference for logs.
func (r Ref) String() string {
	var b strings.Builder

	switch {
	case r.Lookup != "" && r.Name != "":
		b.WriteString(r.Name + "=" + r.Lookup)
	case r.Lookup != "":
		b.WriteString(r.Lookup)
	default:
		b.WriteString(r.Name)
	}

	if len(r.Use) > 0 {
		b.WriteString(" use[" + strings.Join(r.Use, ", ") + "]")
	}

	if r.OverrideDepends != "" {
		b.WriteString(" depends[" + r.OverrideDepends + "]")
	}

	if r.Instance {
		b.WriteString(" instance")
	}

	return b.String()
}
