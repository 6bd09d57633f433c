package mixin

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "message",
			err:  newError(CodeDuplicateMember, "LandAnimal", "run", "property %q already exists", "run"),
			want: `mixin LandAnimal: property "run" already exists`,
		},
		{
			name: "code only",
			err:  &Error{Code: CodeDependencyCycle},
			want: "mixin: dependency_cycle",
		},
		{
			name: "wrapped",
			err:  &Error{Code: CodeInvalidReference, Mixin: "X", Message: "malformed", Err: cause},
			want: "mixin X: malformed: cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := errors.New("cause")
	err := fmt.Errorf("outer: %w", &Error{Code: CodeInvalidReference, Err: cause})

	require.ErrorIs(t, err, ErrInvalidReference)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidUseReference)

	var me *Error
	require.ErrorAs(t, err, &me)
	assert.Equal(t, CodeInvalidReference, me.Code)
}
