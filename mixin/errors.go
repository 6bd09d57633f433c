package mixin

import (
	"fmt"
	"strings"
)

// Code identifies the kind of structuring failure.
type Code string

const (
	CodeDuplicateName             Code = "duplicate_name"
	CodeInvalidRegistration       Code = "invalid_registration"
	CodeInvalidFragment           Code = "invalid_fragment"
	CodeInvalidMergeSchema        Code = "invalid_merge_schema"
	CodeUnknownStrategy           Code = "unknown_strategy"
	CodeInvalidReference          Code = "invalid_reference"
	CodeMixinNotRegistered        Code = "mixin_not_registered"
	CodeInvalidUseReference       Code = "invalid_use_reference"
	CodeInvalidDependencyOverride Code = "invalid_dependency_override"
	CodeMissingDependency         Code = "missing_dependency"
	CodeOverrideOfMissingMember   Code = "override_of_missing_member"
	CodeDuplicateMember           Code = "duplicate_member"
	CodeHookOnMissingMember       Code = "hook_on_missing_member"
	CodeUnresolvedChainMixin      Code = "unresolved_chain_mixin"
	CodeDependencyCycle           Code = "dependency_cycle"
	CodeNoInstanceScope           Code = "no_instance_scope"
)

// Sentinels for errors.Is. Matching compares codes only.
var (
	ErrDuplicateName             = &Error{Code: CodeDuplicateName}
	ErrInvalidRegistration       = &Error{Code: CodeInvalidRegistration}
	ErrInvalidFragment           = &Error{Code: CodeInvalidFragment}
	ErrInvalidMergeSchema        = &Error{Code: CodeInvalidMergeSchema}
	ErrUnknownStrategy           = &Error{Code: CodeUnknownStrategy}
	ErrInvalidReference          = &Error{Code: CodeInvalidReference}
	ErrMixinNotRegistered        = &Error{Code: CodeMixinNotRegistered}
	ErrInvalidUseReference       = &Error{Code: CodeInvalidUseReference}
	ErrInvalidDependencyOverride = &Error{Code: CodeInvalidDependencyOverride}
	ErrMissingDependency         = &Error{Code: CodeMissingDependency}
	ErrOverrideOfMissingMember   = &Error{Code: CodeOverrideOfMissingMember}
	ErrDuplicateMember           = &Error{Code: CodeDuplicateMember}
	ErrHookOnMissingMember       = &Error{Code: CodeHookOnMissingMember}
	ErrUnresolvedChainMixin      = &Error{Code: CodeUnresolvedChainMixin}
	ErrDependencyCycle           = &Error{Code: CodeDependencyCycle}
	ErrNoInstanceScope           = &Error{Code: CodeNoInstanceScope}
)

// Error is the single error kind raised by registration, structuring and
// chaining.
type Error struct {
	Code Code
	// Mixin is the mixin being processed, if any.
	Mixin string
	// Member is the installed member name, if any.
	Member string
	// Missing lists missing dependencies or offending use entries.
	Missing []string
	// Message is the human-readable description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("mixin")

	if e.Mixin != "" {
		b.WriteString(" ")
		b.WriteString(e.Mixin)
	}

	b.WriteString(": ")

	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(string(e.Code))
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

func newError(code Code, mixin, member string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Mixin:   mixin,
		Member:  member,
		Message: fmt.Sprintf(format, args...),
	}
}
