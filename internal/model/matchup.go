package model

// Matchup is an ordered triple of distinct team identifiers. Position encodes
// which bench each team occupies during the match, so permutations of the
// same three teams are distinct matchups.
type Matchup [3]int

func (m Matchup) Contains(team int) bool {
	return m[0] == team || m[1] == team || m[2] == team
}

// benchPermutations lists the 3-element permutations in lexicographic order,
// which keeps the universe order stable across runs.
var benchPermutations = [6][3]int{
	{0, 1, 2},
	{0, 2, 1},
	{1, 0, 2},
	{1, 2, 0},
	{2, 0, 1},
	{2, 1, 0},
}

// GenerateAllMatchups enumerates every ordered 3-team combination from teams
// 1..nTeams: C(nTeams, 3) ascending triples, each expanded into its 6 bench
// permutations.
func GenerateAllMatchups(nTeams int) []Matchup {
	matchups := make([]Matchup, 0, nTeams*(nTeams-1)*(nTeams-2))

	for first := 1; first <= nTeams-2; first++ {
		for second := first + 1; second <= nTeams-1; second++ {
			for third := second + 1; third <= nTeams; third++ {
				triple := [3]int{first, second, third}
				for _, permutation := range benchPermutations {
					matchups = append(matchups, Matchup{
						triple[permutation[0]],
						triple[permutation[1]],
						triple[permutation[2]],
					})
				}
			}
		}
	}

	return matchups
}
