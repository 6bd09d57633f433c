package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIdent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"run", true},
		{"walkSlow", true},
		{"_private", true},
		{"$ref", true},
		{"a1", true},
		{"", false},
		{"1a", false},
		{"walk slow", false},
		{"a-b", false},
		{"a(b", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIdent(tt.in))
		})
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]string{"run", "walk", "swim"}, func(s string) bool { return s != "walk" })
	assert.Equal(t, []string{"run", "swim"}, got)
	assert.Nil(t, Filter([]string{"a"}, func(string) bool { return false }))
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone([]string(nil)))

	src := []string{"a", "b"}
	dst := Clone(src)
	dst[0] = "z"
	assert.Equal(t, "a", src[0])
}

func TestUnpack2(t *testing.T) {
	a, b := Unpack2([]string{"walk", "walkSlow", "extra"})
	assert.Equal(t, "walk", a)
	assert.Equal(t, "walkSlow", b)

	a, b = Unpack2([]string{"walk"})
	assert.Equal(t, "walk", a)
	assert.Empty(t, b)

	a, b = Unpack2([]string(nil))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
