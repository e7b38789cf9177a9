package graph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/steveroseik/scribematch/types"
)

func roster() []types.Participant {
	return []types.Participant{
		{ID: "a", Name: "Ada"},
		{ID: "b", Name: "Ben", Exclusions: []string{"a"}},
		{ID: "c", Name: "Cyd", Preferences: []string{"a", "b"}},
	}
}

func TestBuild_Normalization(t *testing.T) {
	t.Run("ignores self-references", func(t *testing.T) {
		g := Build([]types.Participant{
			{ID: "a", Preferences: []string{"a", "b"}, Exclusions: []string{"a"}},
			{ID: "b"},
		})

		require.False(t, g.Excludes(0, 0))
		require.False(t, g.Prefers(0, 0))
		require.True(t, g.Prefers(0, 1))
		require.Equal(t, 1, g.ValidTargets(0))
	})

	t.Run("ignores unknown ids", func(t *testing.T) {
		g := Build([]types.Participant{
			{ID: "a", Exclusions: []string{"ghost"}, Preferences: []string{"phantom"}},
			{ID: "b"},
		})

		require.Equal(t, 0, g.ExclusionCount(0))
		require.Equal(t, 1, g.ValidTargets(0))
	})

	t.Run("exclusion wins over preference", func(t *testing.T) {
		g := Build([]types.Participant{
			{ID: "a", Preferences: []string{"b"}, Exclusions: []string{"b"}},
			{ID: "b"},
		})

		require.True(t, g.Excludes(0, 1))
		require.False(t, g.Prefers(0, 1))
	})
}

func TestGraph_Degrees(t *testing.T) {
	g := Build(roster())

	// Ben excludes Ada, nobody else excludes anyone.
	require.Equal(t, 2, g.ValidTargets(0))
	require.Equal(t, 1, g.ValidTargets(1))
	require.Equal(t, 2, g.ValidTargets(2))

	require.Equal(t, 1, g.ValidWriters(0))
	require.Equal(t, 2, g.ValidWriters(1))
	require.Equal(t, 2, g.ValidWriters(2))

	require.Equal(t, []int{0}, g.Excluded(1))
	require.Equal(t, []int{1}, g.Excluders(0))
	require.Equal(t, 1, g.ExclusionCount(1))
}

func TestGraph_Fingerprint(t *testing.T) {
	t.Run("independent of roster order and names", func(t *testing.T) {
		a := Build(roster())

		shuffled := []types.Participant{
			{ID: "c", Name: "renamed", Preferences: []string{"b", "a"}},
			{ID: "a"},
			{ID: "b", Exclusions: []string{"a"}},
		}
		b := Build(shuffled)

		require.Equal(t, a.Fingerprint(2), b.Fingerprint(2))
	})

	t.Run("sensitive to constraints and target count", func(t *testing.T) {
		a := Build(roster())

		changed := roster()
		changed[0].Exclusions = []string{"c"}
		b := Build(changed)

		require.NotEqual(t, a.Fingerprint(1), b.Fingerprint(1))
		require.NotEqual(t, a.Fingerprint(1), a.Fingerprint(2))
	})
}
