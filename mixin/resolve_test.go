package mixin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	e := buildTestEngine(t)
	require.NoError(t, e.Registry().RegisterChain("Bird", func(base *Type) *Type { return base.Extend("Bird") }))

	tests := []struct {
		name    string
		ref     Ref
		wantErr error
		check   func(t *testing.T, d *Descriptor)
	}{
		{
			name: "compact without use",
			ref:  R("LandAnimal"),
			check: func(t *testing.T, d *Descriptor) {
				assert.Equal(t, "LandAnimal", d.Name)
				assert.Equal(t, []string{"run", "walk", "catchAnimal", "hunt", "environments"}, d.Keys)
				assert.Empty(t, d.Use)
			},
		},
		{
			name: "compact with use",
			ref:  R("LandAnimal(run, walk as walkSlow)"),
			check: func(t *testing.T, d *Descriptor) {
				assert.Equal(t, []UseSpec{{Original: "run"}, {Original: "walk", Alias: "walkSlow"}}, d.Use)
			},
		},
		{
			name: "object use applies without compact list",
			ref:  Named("Slow", "LandAnimal").Using("walk as walkSlow"),
			check: func(t *testing.T, d *Descriptor) {
				assert.Equal(t, []UseSpec{{Original: "walk", Alias: "walkSlow"}}, d.Use)
			},
		},
		{
			name: "compact list wins over object use",
			ref:  Named("Slow", "LandAnimal(run)").Using("walk"),
			check: func(t *testing.T, d *Descriptor) {
				assert.Equal(t, []UseSpec{{Original: "run"}}, d.Use)
			},
		},
		{
			name: "single implementation",
			ref:  Single("dive", Action(text("dives"), "swim")),
			check: func(t *testing.T, d *Descriptor) {
				assert.Equal(t, "dive", d.Name)
				assert.Equal(t, []string{"dive"}, d.Keys)
				assert.Equal(t, []string{"swim"}, d.Logic["dive"].Depends)
			},
		},
		{
			name: "instance mark",
			ref:  R("LandAnimal").OnInstance(),
			check: func(t *testing.T, d *Descriptor) {
				assert.True(t, d.UsesInstance)
			},
		},
		{
			name:    "not registered",
			ref:     R("Dragon"),
			wantErr: ErrMixinNotRegistered,
		},
		{
			name:    "registered as chain",
			ref:     R("Bird"),
			wantErr: ErrMixinNotRegistered,
		},
		{
			name:    "malformed",
			ref:     R("LandAnimal(run"),
			wantErr: ErrInvalidReference,
		},
		{
			name:    "malformed object use",
			ref:     Named("Slow", "LandAnimal").Using("walk as"),
			wantErr: ErrInvalidReference,
		},
		{
			name:    "inline and lookup",
			ref:     Ref{Name: "x", Lookup: "LandAnimal", Fragment: buildTestLandTraits()},
			wantErr: ErrInvalidMergeSchema,
		},
		{
			name:    "empty ref",
			ref:     Ref{},
			wantErr: ErrInvalidMergeSchema,
		},
		{
			name:    "inline without name",
			ref:     Inline("", buildTestLandTraits()),
			wantErr: ErrInvalidMergeSchema,
		},
		{
			name:    "nil action",
			ref:     Inline("Broken", NewFragment().Fn("run", nil)),
			wantErr: ErrInvalidFragment,
		},
		{
			name:    "override on missing key",
			ref:     R("LandAnimal").WithDepends("fly:[walk]"),
			wantErr: ErrInvalidDependencyOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := e.Resolve(tt.ref)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)

				return
			}

			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}

func TestResolve_ChainNameMessage(t *testing.T) {
	e := New(nil, DefaultConfig())
	require.NoError(t, e.Registry().RegisterChain("Bird", func(base *Type) *Type { return base.Extend("Bird") }))

	_, err := e.Resolve(R("Bird"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain transformer")
}

func TestResolve_FreshDescriptors(t *testing.T) {
	e := buildTestEngine(t)

	first, err := e.Resolve(R("WaterAnimal").WithDepends("transitionToLand:[swim]"))
	require.NoError(t, err)
	assert.Equal(t, []string{"swim"}, first.Logic["transitionToLand"].Depends)

	second, err := e.Resolve(R("WaterAnimal"))
	require.NoError(t, err)
	assert.Equal(t, []string{"walk"}, second.Logic["transitionToLand"].Depends)

	stored, ok := e.Registry().Fragment("WaterAnimal")
	require.True(t, ok)

	impl, _ := stored.Get("transitionToLand")
	assert.Equal(t, []string{"walk"}, impl.Depends)
}
