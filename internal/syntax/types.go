package syntax

import (
	"fmt"
	"strings"
)

// Reference is a parsed compact mixin reference such as "Name(a, b as c)".
type Reference struct {
	// Name is the registry name of the referenced mixin.
	Name string
	// Use is the parenthesized use list, in order. Nil when HasUse is false.
	Use []UseSpec
	// HasUse is true when the reference carried a parenthesized list.
	HasUse bool
}

// String renders the reference in canonical compact form.
func (r Reference) String() string {
	if !r.HasUse {
		return r.Name
	}

	parts := make([]string, 0, len(r.Use))
	for _, u := range r.Use {
		parts = append(parts, u.String())
	}

	return r.Name + "(" + strings.Join(parts, ", ") + ")"
}

// UseSpec selects one fragment member and the name it is installed under.
type UseSpec struct {
	Original string
	Alias    string
}

// Installed returns the member name the entry is installed under.
func (u UseSpec) Installed() string {
	if u.Alias != "" {
		return u.Alias
	}

	return u.Original
}

// IsAlias reports whether the entry renames its member.
func (u UseSpec) IsAlias() bool {
	return u.Alias != ""
}

// String renders "original" or "original as alias".
func (u UseSpec) String() string {
	if u.Alias == "" {
		return u.Original
	}

	return u.Original + " as " + u.Alias
}

// OverrideSpec replaces the dependency list of one fragment member.
type OverrideSpec struct {
	Member  string
	Depends []string
}

// String renders "member:[a,b]".
func (o OverrideSpec) String() string {
	return o.Member + ":[" + strings.Join(o.Depends, ",") + "]"
}

// Error reports malformed compact syntax.
type Error struct {
	// What names the construct being parsed: "reference", "use", "override" or "strategy".
	What string
	// Input is the full text that failed to parse.
	Input string
	// Msg describes the problem.
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.What, e.Input, e.Msg)
}

func newError(what, input, format string, args ...any) *Error {
	return &Error{What: what, Input: input, Msg: fmt.Sprintf(format, args...)}
}
