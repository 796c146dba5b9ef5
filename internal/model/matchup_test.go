package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAllMatchups(t *testing.T) {
	t.Run("Three teams", func(t *testing.T) {
		// Act
		universe := GenerateAllMatchups(3)

		// Assert: the 6 bench permutations of the single triple, in stable order
		expected := []Matchup{
			{1, 2, 3},
			{1, 3, 2},
			{2, 1, 3},
			{2, 3, 1},
			{3, 1, 2},
			{3, 2, 1},
		}
		assert.Equal(t, expected, universe)
	})

	t.Run("Universe size and distinctness", func(t *testing.T) {
		for _, nTeams := range []int{3, 5, 9, 12} {
			// Act
			universe := GenerateAllMatchups(nTeams)

			// Assert: C(nTeams, 3) * 6 distinct ordered triples of distinct teams
			assert.Len(t, universe, nTeams*(nTeams-1)*(nTeams-2))
			assert.Len(t, lo.Uniq(universe), len(universe))
			for _, matchup := range universe {
				assert.NotEqual(t, matchup[0], matchup[1])
				assert.NotEqual(t, matchup[0], matchup[2])
				assert.NotEqual(t, matchup[1], matchup[2])
				for _, team := range matchup {
					assert.GreaterOrEqual(t, team, 1)
					assert.LessOrEqual(t, team, nTeams)
				}
			}
		}
	})

	t.Run("Stable order across runs", func(t *testing.T) {
		assert.Equal(t, GenerateAllMatchups(7), GenerateAllMatchups(7))
	})
}

func TestMatchupContains(t *testing.T) {
	matchup := Matchup{4, 7, 2}

	assert.True(t, matchup.Contains(4))
	assert.True(t, matchup.Contains(7))
	assert.True(t, matchup.Contains(2))
	assert.False(t, matchup.Contains(1))
}
