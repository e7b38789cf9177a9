package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steveroseik/scribematch/types"
)

func openRoster(size int) []types.Participant {
	roster := make([]types.Participant, size)
	for i := range roster {
		roster[i] = types.Participant{
			ID:   fmt.Sprintf("p%d", i),
			Name: fmt.Sprintf("Player %d", i),
		}
	}

	return roster
}

func TestBacktracking_TwoParticipants(t *testing.T) {
	// The only valid round: each writes about the other.
	s := NewBacktracking()
	roster := openRoster(2)

	assignments, err := s.Search(roster, 1)

	require.NoError(t, err)
	require.ElementsMatch(t, []types.Assignment{
		{WriterID: "p0", TargetID: "p1"},
		{WriterID: "p1", TargetID: "p0"},
	}, assignments)
}

func TestBacktracking_SatisfiesInvariants(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		targets int
	}{
		{"small round", 4, 1},
		{"two targets each", 5, 2},
		{"dense", 8, 3},
		{"full degree", 5, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewBacktracking(WithSeed(7))
			roster := openRoster(tc.size)

			assignments, err := s.Search(roster, tc.targets)

			require.NoError(t, err)
			require.Len(t, assignments, tc.size*tc.targets)
			require.NoError(t, types.VerifyAssignments(roster, tc.targets, assignments))
		})
	}
}

func TestBacktracking_HonorsExclusions(t *testing.T) {
	s := NewBacktracking(WithSeed(11))
	roster := []types.Participant{
		{ID: "a", Exclusions: []string{"b"}},
		{ID: "b", Exclusions: []string{"c"}},
		{ID: "c"},
		{ID: "d"},
	}

	assignments, err := s.Search(roster, 2)

	require.NoError(t, err)
	require.NoError(t, types.VerifyAssignments(roster, 2, assignments))
	for _, a := range assignments {
		require.False(t, a.WriterID == "a" && a.TargetID == "b")
		require.False(t, a.WriterID == "b" && a.TargetID == "c")
	}
}

func TestBacktracking_SeedReproducesTrace(t *testing.T) {
	roster := openRoster(6)

	first, err := NewBacktracking(WithSeed(42)).Search(roster, 2)
	require.NoError(t, err)

	second, err := NewBacktracking(WithSeed(42)).Search(roster, 2)
	require.NoError(t, err)

	require.Equal(t, first, second, "a fixed seed must reproduce a fixed search trace")

	// The same strategy instance must also reproduce itself call-to-call.
	s := NewBacktracking(WithSeed(42))
	again1, err := s.Search(roster, 2)
	require.NoError(t, err)
	again2, err := s.Search(roster, 2)
	require.NoError(t, err)
	require.Equal(t, again1, again2)
}

func TestBacktracking_NoSolution(t *testing.T) {
	// Degree bounds hold for every participant, yet both a and b can only
	// write about d, which may receive one assignment: infeasible beyond
	// the validator's sight. Every attempt must fail, deterministically in
	// aggregate, across seeds.
	roster := []types.Participant{
		{ID: "a", Exclusions: []string{"b", "c"}},
		{ID: "b", Exclusions: []string{"a", "c"}},
		{ID: "c"},
		{ID: "d"},
	}

	for seed := uint64(0); seed < 5; seed++ {
		s := NewBacktracking(WithSeed(seed), WithMaxAttempts(20))
		_, err := s.Search(roster, 1)
		require.ErrorIs(t, err, types.ErrNoSolution, "seed %d", seed)
	}
}

func TestBacktracking_DegenerateInputs(t *testing.T) {
	s := NewBacktracking()

	_, err := s.Search(openRoster(1), 1)
	require.ErrorIs(t, err, types.ErrNoSolution)

	_, err = s.Search(openRoster(3), 0)
	require.ErrorIs(t, err, types.ErrNoSolution)
}

func TestBacktracking_PreferenceBiasIsSoft(t *testing.T) {
	// a prefers b, but b's incoming slot is contested; whatever the search
	// settles on must still be a complete valid round.
	roster := []types.Participant{
		{ID: "a", Preferences: []string{"b"}},
		{ID: "b", Preferences: []string{"a"}},
		{ID: "c", Preferences: []string{"b"}},
	}
	s := NewBacktracking(WithSeed(3))

	assignments, err := s.Search(roster, 1)

	require.NoError(t, err)
	require.NoError(t, types.VerifyAssignments(roster, 1, assignments))
}

func TestBacktracking_PreferredTargetsWinWhenUncontested(t *testing.T) {
	// With two targets per writer out of three valid candidates and no
	// contention on the preferred pair beyond capacity, a preferred target
	// should appear in the writer's set: preferred candidates are tried
	// first and only backtracking can displace them.
	roster := []types.Participant{
		{ID: "a", Preferences: []string{"d"}},
		{ID: "b"},
		{ID: "c"},
		{ID: "d"},
	}

	hits := 0
	const runs = 20
	for seed := uint64(0); seed < runs; seed++ {
		s := NewBacktracking(WithSeed(seed))
		assignments, err := s.Search(roster, 2)
		require.NoError(t, err)

		for _, asgn := range assignments {
			if asgn.WriterID == "a" && asgn.TargetID == "d" {
				hits++
				break
			}
		}
	}

	// Unbiased, a would hit d in 2/3 of runs; the bias should push this to
	// (or very near) every run.
	require.Greater(t, hits, runs*2/3)
}
