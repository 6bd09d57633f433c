package mixin

import (
	"strings"

	"mixer/internal/syntax"
)

//go:generate go tool stringer -type=Strategy -linecomment -output=strategy_string.go

// Strategy is a composition policy governing how a fragment member interacts
// with the member it is installed over.
type Strategy int

const (
	// StrategyNative marks members defined directly on a scope.
	StrategyNative       Strategy = iota // native
	StrategyMerge                        // merge
	StrategyMergeOver                    // mergeOver
	StrategyPrepend                      // prepend
	StrategyAwaitPrepend                 // awaitPrepend
	StrategyAppend                       // append
	StrategyAwaitAppend                  // awaitAppend
)

type facets struct {
	override  bool
	before    bool
	after     bool
	promisify bool
}

var strategyFacets = map[Strategy]facets{
	StrategyMergeOver:    {override: true},
	StrategyPrepend:      {before: true},
	StrategyAwaitPrepend: {before: true, promisify: true},
	StrategyAppend:       {after: true},
	StrategyAwaitAppend:  {after: true, promisify: true},
}

// Strategies returns the six composition strategies in declaration order.
func Strategies() []Strategy {
	return []Strategy{
		StrategyMerge,
		StrategyMergeOver,
		StrategyPrepend,
		StrategyAwaitPrepend,
		StrategyAppend,
		StrategyAwaitAppend,
	}
}

// Override reports whether the strategy replaces an existing member and
// hands it to the fragment as a super call.
func (s Strategy) Override() bool { return strategyFacets[s].override }

// Before reports whether the fragment runs before the previous member.
func (s Strategy) Before() bool { return strategyFacets[s].before }

// After reports whether the fragment runs after the previous member.
func (s Strategy) After() bool { return strategyFacets[s].after }

// Hook reports whether the strategy is a before or after hook.
func (s Strategy) Hook() bool { return s.Before() || s.After() }

// Promisify reports whether the hook steps are awaited in order.
func (s Strategy) Promisify() bool { return strategyFacets[s].promisify }

// ParseStrategy resolves a schema key, ignoring a numeric suffix, to its
// strategy.
func ParseStrategy(key string) (Strategy, error) {
	name := syntax.StrategyKey(key)

	for _, s := range Strategies() {
		if s.String() == name {
			return s, nil
		}
	}

	names := make([]string, 0, len(Strategies()))
	for _, s := range Strategies() {
		names = append(names, s.String())
	}

	return StrategyNative, newError(CodeUnknownStrategy, "", "",
		"unknown merge type %q, must be one of %s", name, strings.Join(names, ", "))
}
