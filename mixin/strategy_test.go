package mixin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyFacets(t *testing.T) {
	tests := []struct {
		strategy  Strategy
		name      string
		override  bool
		before    bool
		after     bool
		promisify bool
	}{
		{strategy: StrategyMerge, name: "merge"},
		{strategy: StrategyMergeOver, name: "mergeOver", override: true},
		{strategy: StrategyPrepend, name: "prepend", before: true},
		{strategy: StrategyAwaitPrepend, name: "awaitPrepend", before: true, promisify: true},
		{strategy: StrategyAppend, name: "append", after: true},
		{strategy: StrategyAwaitAppend, name: "awaitAppend", after: true, promisify: true},
	}

	require.Len(t, Strategies(), len(tests))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.strategy
			assert.Equal(t, tt.name, s.String())
			assert.Equal(t, tt.override, s.Override())
			assert.Equal(t, tt.before, s.Before())
			assert.Equal(t, tt.after, s.After())
			assert.Equal(t, tt.before || tt.after, s.Hook())
			assert.Equal(t, tt.promisify, s.Promisify())
			assert.False(t, s.Override() && s.Hook())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		key     string
		want    Strategy
		wantErr bool
	}{
		{key: "merge", want: StrategyMerge},
		{key: "merge2", want: StrategyMerge},
		{key: "mergeOver10", want: StrategyMergeOver},
		{key: "awaitAppend", want: StrategyAwaitAppend},
		{key: "native", wantErr: true},
		{key: "Merge", wantErr: true},
		{key: "2merge", wantErr: true},
		{key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseStrategy(tt.key)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownStrategy)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrategy_Unknown(t *testing.T) {
	assert.Equal(t, "Strategy(99)", Strategy(99).String())
	assert.Equal(t, "native", StrategyNative.String())
}
