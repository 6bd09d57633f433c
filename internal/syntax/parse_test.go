package syntax

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Reference
	}{
		{
			name: "bare name",
			in:   "LandAnimal",
			want: Reference{Name: "LandAnimal"},
		},
		{
			name: "surrounding whitespace",
			in:   "  LandAnimal ",
			want: Reference{Name: "LandAnimal"},
		},
		{
			name: "single use",
			in:   "WaterAnimal(swim)",
			want: Reference{Name: "WaterAnimal", Use: []UseSpec{{Original: "swim"}}, HasUse: true},
		},
		{
			name: "use with alias",
			in:   "LandAnimal(hunt, walk as walkSlow)",
			want: Reference{
				Name:   "LandAnimal",
				Use:    []UseSpec{{Original: "hunt"}, {Original: "walk", Alias: "walkSlow"}},
				HasUse: true,
			},
		},
		{
			name: "irregular spacing",
			in:   "LandAnimal (  run   as  runs ,walk )",
			want: Reference{
				Name:   "LandAnimal",
				Use:    []UseSpec{{Original: "run", Alias: "runs"}, {Original: "walk"}},
				HasUse: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReference(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReference_Malformed(t *testing.T) {
	tests := []struct {
		in      string
		wantMsg string
	}{
		{"", "empty reference"},
		{"   ", "empty reference"},
		{"LandAnimal(run", "unbalanced parenthesis"},
		{"LandAnimal run)", "unbalanced parenthesis"},
		{"LandAnimal((run))", "unbalanced parenthesis"},
		{"LandAnimal(run)x", "unbalanced parenthesis"},
		{"LandAnimal()", "empty use list"},
		{"(run)", "invalid mixin name"},
		{"Land Animal", "invalid mixin name"},
		{"LandAnimal(run,)", "empty use entry"},
		{"LandAnimal(run as)", "invalid member name"},
		{"LandAnimal(run as a as b)", "more than one alias"},
		{"LandAnimal(run as 9)", "invalid alias"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseReference(tt.in)
			require.Error(t, err)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "reference", se.What)
			assert.Contains(t, se.Msg, tt.wantMsg)
		})
	}
}

func TestParseUse(t *testing.T) {
	u, err := ParseUse("walk as walkSlow")
	require.NoError(t, err)
	assert.Equal(t, "walk", u.Original)
	assert.Equal(t, "walkSlow", u.Installed())
	assert.True(t, u.IsAlias())
	assert.Equal(t, "walk as walkSlow", u.String())

	u, err = ParseUse(" hunt ")
	require.NoError(t, err)
	assert.Equal(t, "hunt", u.Installed())
	assert.False(t, u.IsAlias())

	_, err = ParseUse("")
	require.Error(t, err)
}

func TestParseOverrides(t *testing.T) {
	got, err := ParseOverrides("transitionToLand:[swim,walkSlow],hunt:[walk]")
	require.NoError(t, err)
	assert.Equal(t, []OverrideSpec{
		{Member: "transitionToLand", Depends: []string{"swim", "walkSlow"}},
		{Member: "hunt", Depends: []string{"walk"}},
	}, got)

	got, err = ParseOverrides(" run : [ ] ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Depends)
	assert.Empty(t, got[0].Depends)

	got, err = ParseOverrides("a:[b , c] , d:[e]")
	require.NoError(t, err)
	assert.Equal(t, "a:[b,c]", got[0].String())
	assert.Equal(t, "d:[e]", got[1].String())
}

func TestParseOverrides_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"run",
		"run:",
		"run:swim",
		"run:[swim",
		"run:[swim]]",
		"run:[[swim]",
		"run:[swim],",
		"run:[swim] hunt:[walk]",
		":[swim]",
		"run:[sw im]",
		"run:[swim,]",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseOverrides(in)
			require.Error(t, err)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "override", se.What)
		})
	}
}

func TestStrategyKey(t *testing.T) {
	assert.Equal(t, "merge", StrategyKey("merge"))
	assert.Equal(t, "merge", StrategyKey("merge2"))
	assert.Equal(t, "awaitAppend", StrategyKey("awaitAppend10"))
	assert.Equal(t, "", StrategyKey("42"))
}

func FuzzParseReference(f *testing.F) {
	seeds := []string{
		"LandAnimal",
		"LandAnimal(run)",
		"LandAnimal(hunt, walk as walkSlow)",
		"LandAnimal(",
		"LandAnimal)",
		"()",
		"A(b as)",
		"A(,)",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		ref, err := ParseReference(in)
		if err != nil {
			return
		}

		if ref.Name == "" {
			t.Fatalf("parsed %q into a reference without a name", in)
		}

		again, err := ParseReference(ref.String())
		if err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", ref.String(), in, err)
		}

		if again.String() != ref.String() {
			t.Fatalf("round trip changed %q into %q", ref.String(), again.String())
		}
	})
}

func FuzzParseOverrides(f *testing.F) {
	seeds := []string{
		"a:[b,c],d:[e]",
		"a:[]",
		"a:[b",
		"a:b]",
		":[]",
		"a:[b],",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, in string) {
		specs, err := ParseOverrides(in)
		if err != nil {
			return
		}

		parts := make([]string, 0, len(specs))
		for _, o := range specs {
			if o.Member == "" {
				t.Fatalf("parsed %q into an override without a member", in)
			}

			parts = append(parts, o.String())
		}

		canonical := strings.Join(parts, ",")

		again, err := ParseOverrides(canonical)
		if err != nil {
			t.Fatalf("canonical form %q of %q does not parse: %v", canonical, in, err)
		}

		if len(again) != len(specs) {
			t.Fatalf("round trip of %q changed override count", canonical)
		}
	})
}
