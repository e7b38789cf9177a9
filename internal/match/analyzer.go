package match

import (
	"fmt"
	"sort"

	"github.com/steveroseik/scribematch/internal/graph"
	"github.com/steveroseik/scribematch/types"
)

// Analyze inspects the constraint graph and proposes a ranked list of
// minimal edits that would make (or keep) the roster feasible.
//
// Three passes run in a fixed order and their results are concatenated:
//
//  1. Target starvation: for each participant excluded by too many others,
//     propose removing up to the shortfall of those exclusions.
//  2. Writer starvation: for each participant with too few valid targets,
//     propose removing up to the shortfall of its own exclusions.
//  3. Near-boundary advisory: for each participant with exactly zero slack,
//     propose one additional preference to reduce brittleness.
//
// Removal candidates are always the participants with the smallest
// exclusion sets first, to minimize collateral disruption; ties keep roster
// order. Identical suggestions produced by more than one pass (same actor,
// kind, and counterpart) are emitted once, at their first position.
//
// Analyze never fails and performs no search; with no suggestion to make,
// the summary states that the infeasibility (if any) is a higher-order
// interaction and recommends lowering the target count.
func Analyze(g *graph.Graph, targetsPerPlayer int) *types.ConflictReport {
	report := &types.ConflictReport{
		RosterFingerprint: g.Fingerprint(targetsPerPlayer),
	}
	seen := make(map[suggestionKey]bool)

	add := func(s types.Suggestion) {
		key := suggestionKey{s.Kind, s.ActorID, s.SubjectID}
		if seen[key] {
			return
		}
		seen[key] = true
		report.Suggestions = append(report.Suggestions, s)
	}

	// Pass 1: participants that cannot receive enough assignments.
	for t := range g.Len() {
		writers := g.ValidWriters(t)
		if writers >= targetsPerPlayer {
			continue
		}
		shortfall := targetsPerPlayer - writers
		excluders := byExclusionCount(g, g.Excluders(t))
		for _, w := range excluders[:min(shortfall, len(excluders))] {
			add(types.Suggestion{
				Kind:        types.SuggestionRemoveAvoid,
				ActorID:     g.ID(w),
				ActorName:   g.Name(w),
				SubjectID:   g.ID(t),
				SubjectName: g.Name(t),
				Reason: fmt.Sprintf(
					"only %d of %d other participants may write about %s, but %d are required; removing this exclusion raises that count",
					writers, g.Len()-1, g.Name(t), targetsPerPlayer),
			})
		}
	}

	// Pass 2: participants that cannot produce enough assignments.
	for w := range g.Len() {
		targets := g.ValidTargets(w)
		if targets >= targetsPerPlayer {
			continue
		}
		shortfall := targetsPerPlayer - targets
		excluded := byExclusionCount(g, g.Excluded(w))
		for _, t := range excluded[:min(shortfall, len(excluded))] {
			add(types.Suggestion{
				Kind:        types.SuggestionRemoveAvoid,
				ActorID:     g.ID(w),
				ActorName:   g.Name(w),
				SubjectID:   g.ID(t),
				SubjectName: g.Name(t),
				Reason: fmt.Sprintf(
					"%s has only %d valid targets but must write about %d; removing the exclusion of %s raises that count",
					g.Name(w), targets, targetsPerPlayer, g.Name(t)),
			})
		}
	}

	// Pass 3: zero-slack participants. No shortfall to fix, but one more
	// preference makes the search less brittle around them.
	for w := range g.Len() {
		if g.ValidTargets(w) != targetsPerPlayer {
			continue
		}
		t, ok := firstUnpreferred(g, w)
		if !ok {
			continue
		}
		add(types.Suggestion{
			Kind:        types.SuggestionAddPreference,
			ActorID:     g.ID(w),
			ActorName:   g.Name(w),
			SubjectID:   g.ID(t),
			SubjectName: g.Name(t),
			Reason: fmt.Sprintf(
				"%s has exactly %d valid targets with zero slack; preferring %s nudges the search toward a workable order",
				g.Name(w), targetsPerPlayer, g.Name(t)),
		})
	}

	report.Summary = summarize(report)

	return report
}

type suggestionKey struct {
	kind    types.SuggestionKind
	actor   string
	subject string
}

// byExclusionCount orders participant indices ascending by the size of
// their own exclusion set, keeping roster order for ties, so the least
// constrained participants are preferred as removal candidates.
func byExclusionCount(g *graph.Graph, indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.SliceStable(out, func(a, b int) bool {
		return g.ExclusionCount(out[a]) < g.ExclusionCount(out[b])
	})

	return out
}

// firstUnpreferred returns the first valid target of w, in roster order,
// that w does not already prefer.
func firstUnpreferred(g *graph.Graph, w int) (int, bool) {
	for t := range g.Len() {
		if t == w || g.Excludes(w, t) || g.Prefers(w, t) {
			continue
		}

		return t, true
	}

	return 0, false
}

func summarize(r *types.ConflictReport) string {
	if len(r.Suggestions) == 0 {
		return "no obvious single-constraint conflict found; if matchmaking still fails, lower the target count or relax exclusions across the roster"
	}

	return fmt.Sprintf("%d suggested edits: %d exclusion removals, %d preference additions",
		len(r.Suggestions),
		r.CountByKind(types.SuggestionRemoveAvoid),
		r.CountByKind(types.SuggestionAddPreference))
}
