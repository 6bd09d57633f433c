// Package depgraph orders named nodes so that dependencies come first.
package depgraph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrCycle is returned when the dependency relation is not acyclic.
var ErrCycle = errors.New("cycle detected")

// Sort returns indices in execution order.
//
// Nodes are by index in the input. depsFn(i) yields indices that must be
// executed before i.
//
// The result is deterministic: when multiple nodes are available, the
// smallest index wins. If a cycle exists, ErrCycle is
// returned.
func Sort(n int, depsFn func(i int) []int) ([]int, error) {
	order, err := kahn(n, depsFn)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// kahn returns the orderable prefix even when a cycle stops it.
func kahn(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return order, ErrCycle
	}

	return order, nil
}

// SortNames orders names so that every name follows the names it depends on.
// Dependencies outside names are ignored; ties keep the input order.
func SortNames(names []string, depsFn func(name string) []string) ([]string, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	order, err := kahn(len(names), func(i int) []int {
		var deps []int

		for _, d := range depsFn(names[i]) {
			if j, ok := index[d]; ok && j != i {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		if errors.Is(err, ErrCycle) {
			return nil, fmt.Errorf("%w among %s", ErrCycle, strings.Join(cycleMembers(names, order), ", "))
		}

		return nil, err
	}

	out := make([]string, 0, len(order))
	for _, i := range order {
		out = append(out, names[i])
	}

	return out, nil
}

// cycleMembers returns the names that could not be ordered.
func cycleMembers(names []string, order []int) []string {
	placed := make(map[int]bool, len(order))
	for _, i := range order {
		placed[i] = true
	}

	var rest []string

	for i, name := range names {
		if !placed[i] {
			rest = append(rest, name)
		}
	}

	return rest
}
