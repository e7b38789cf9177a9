// Package graph builds an arena-indexed constraint graph from a roster.
//
// Participants are mapped to dense integer indices once, up front, so the
// validator, analyzer, and search all work over plain int slices instead of
// chasing IDs through maps on the hot path. Building the graph also
// normalizes the roster defensively: self-references are dropped, IDs that
// are not on the roster are dropped, and an identity listed in both a
// writer's preference and exclusion lists is treated as excluded only.
package graph

import (
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/steveroseik/scribematch/types"
)

// Graph is the normalized constraint view of one roster snapshot.
//
// All methods take and return arena indices in [0, Len()). The graph is
// immutable after Build and safe for concurrent readers.
type Graph struct {
	ids   []string
	names []string
	index map[string]int

	excludes [][]bool // excludes[w][t]: w must never write about t
	prefers  [][]bool // prefers[w][t]: w would like to write about t

	validOut []int // per writer: other participants not excluded by it
	validIn  []int // per target: other participants not excluding it
}

// Build constructs the constraint graph for a roster snapshot.
//
// Normalization applied, in order:
//   - a participant's own ID in its preference or exclusion list is ignored
//   - IDs not present on the roster are ignored
//   - exclusion wins over preference for the same (writer, target) pair
func Build(participants []types.Participant) *Graph {
	n := len(participants)
	g := &Graph{
		ids:      make([]string, n),
		names:    make([]string, n),
		index:    make(map[string]int, n),
		excludes: make([][]bool, n),
		prefers:  make([][]bool, n),
		validOut: make([]int, n),
		validIn:  make([]int, n),
	}

	for i, p := range participants {
		g.ids[i] = p.ID
		g.names[i] = p.Name
		g.index[p.ID] = i
	}

	for w, p := range participants {
		g.excludes[w] = make([]bool, n)
		g.prefers[w] = make([]bool, n)
		for _, id := range p.Exclusions {
			if t, ok := g.index[id]; ok && t != w {
				g.excludes[w][t] = true
			}
		}
		for _, id := range p.Preferences {
			if t, ok := g.index[id]; ok && t != w && !g.excludes[w][t] {
				g.prefers[w][t] = true
			}
		}
	}

	for w := range participants {
		for t := range participants {
			if t == w {
				continue
			}
			if !g.excludes[w][t] {
				g.validOut[w]++
				g.validIn[t]++
			}
		}
	}

	return g
}

// Len returns the roster size.
func (g *Graph) Len() int { return len(g.ids) }

// ID returns the participant ID at index i.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Name returns the display name at index i.
func (g *Graph) Name(i int) string { return g.names[i] }

// Excludes reports whether writer w excludes target t.
func (g *Graph) Excludes(w, t int) bool { return g.excludes[w][t] }

// Prefers reports whether writer w prefers target t. Always false for pairs
// the writer also excludes.
func (g *Graph) Prefers(w, t int) bool { return g.prefers[w][t] }

// ValidTargets returns how many other participants writer w may be assigned.
func (g *Graph) ValidTargets(w int) int { return g.validOut[w] }

// ValidWriters returns how many other participants may write about target t.
func (g *Graph) ValidWriters(t int) int { return g.validIn[t] }

// ExclusionCount returns the size of participant w's normalized exclusion set.
func (g *Graph) ExclusionCount(w int) int {
	return g.Len() - 1 - g.validOut[w]
}

// Excluded returns the indices participant w excludes, in roster order.
func (g *Graph) Excluded(w int) []int {
	var out []int
	for t, ex := range g.excludes[w] {
		if ex {
			out = append(out, t)
		}
	}

	return out
}

// Excluders returns the indices of participants that exclude t, in roster
// order.
func (g *Graph) Excluders(t int) []int {
	var out []int
	for w := range g.excludes {
		if g.excludes[w][t] {
			out = append(out, w)
		}
	}

	return out
}

// Fingerprint returns a stable 64-bit hash of the normalized constraints
// and the target count.
//
// The hash covers IDs, exclusions, and preferences in sorted order, so it is
// independent of roster ordering and of display names. Two calls with
// semantically identical inputs always produce the same fingerprint, which
// makes it usable as a memoization key and as a run-correlation handle in
// logs.
func (g *Graph) Fingerprint(targetsPerPlayer int) uint64 {
	order := make([]int, g.Len())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return g.ids[order[a]] < g.ids[order[b]] })

	var b strings.Builder
	for _, w := range order {
		b.WriteString(g.ids[w])
		b.WriteByte(0x1d)
		for _, t := range order {
			if g.excludes[w][t] {
				b.WriteString(g.ids[t])
				b.WriteByte(0x1e)
			}
		}
		b.WriteByte(0x1d)
		for _, t := range order {
			if g.prefers[w][t] {
				b.WriteString(g.ids[t])
				b.WriteByte(0x1e)
			}
		}
		b.WriteByte(0x1f)
	}

	return xxh3.HashStringSeed(b.String(), uint64(targetsPerPlayer))
}
