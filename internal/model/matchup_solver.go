package model

import (
	"fmt"

	"github.com/samber/lo"

	"quizscheduler/internal/ilp"
)

// ConfigurationError reports request parameters under which no matchup set
// can satisfy the per-team load and unique-opponent constraints at once. It
// is raised before any model is built.
type ConfigurationError struct {
	NTeams          int
	NMatchesPerTeam int
	Reason          string
}

func (err ConfigurationError) Error() string {
	return fmt.Sprintf("impossible configuration (n_teams = %v, n_matches_per_team = %v): %v", err.NTeams, err.NMatchesPerTeam, err.Reason)
}

type MatchupSolver interface {
	// FindSolutions returns up to maxSolutions distinct feasible matchup sets
	// drawn from the universe, in the order the solver finds them. An empty
	// result means the model is infeasible from the start.
	FindSolutions(universe []Matchup, maxSolutions int) ([][]Matchup, error)

	// Verify independently re-checks a matchup solution against every
	// invariant. It is a pure audit and never mutates the solution.
	Verify(solution []Matchup) bool
}

func NewMatchupSolver(solver ilp.Solver, nTeams, nMatchesPerTeam int) MatchupSolver {
	return &ilpMatchupSolver{
		solver:          solver,
		nTeams:          nTeams,
		nMatchesPerTeam: nMatchesPerTeam,
	}
}

type ilpMatchupSolver struct {
	solver ilp.Solver

	nTeams          int
	nMatchesPerTeam int
}

func (ms *ilpMatchupSolver) FindSolutions(universe []Matchup, maxSolutions int) ([][]Matchup, error) {
	if err := ms.validateConfiguration(); err != nil {
		return nil, err
	}

	base := ms.teamLoadConstraints(universe)
	base = append(base, ms.uniqueOpponentConstraints(universe)...)
	base = append(base, ms.benchBalanceConstraints(universe)...)

	solutions := make([][]Matchup, 0, maxSolutions)
	cuts := make([]ilp.Constraint, 0, maxSolutions)

	for len(solutions) < maxSolutions {
		constraints := make([]ilp.Constraint, 0, len(base)+len(cuts))
		constraints = append(constraints, base...)
		constraints = append(constraints, cuts...)

		assignment, err := ms.solver.Solve(ilp.Model{Variables: len(universe), Constraints: constraints})
		if err != nil {
			return nil, fmt.Errorf("matchup solve failed: %w", err)
		} else if assignment == nil { // No further distinct solution exists
			break
		}

		selected := lo.FilterMap(assignment, func(value bool, index int) (int, bool) { return index + 1, value })
		if len(selected) == 0 {
			break
		}

		solutions = append(solutions, lo.Map(selected, func(lit int, _ int) Matchup { return universe[lit-1] }))

		// Forbid reselecting this exact matchup set so the next solve must
		// differ by at least one matchup
		cuts = append(cuts, ilp.SumAtMost(selected, len(selected)-1))
	}

	return solutions, nil
}

func (ms *ilpMatchupSolver) Verify(solution []Matchup) bool {
	base := ms.nMatchesPerTeam / 3

	for team := 1; team <= ms.nTeams; team++ {
		appearances := 0
		benchCounts := [3]int{}
		opponents := make([]int, 0, 2*ms.nMatchesPerTeam)

		for _, matchup := range solution {
			if !matchup.Contains(team) {
				continue
			}
			appearances++
			for position, member := range matchup {
				if member == team {
					benchCounts[position]++
				} else {
					opponents = append(opponents, member)
				}
			}
		}

		if appearances != ms.nMatchesPerTeam {
			return false
		}

		for _, count := range benchCounts {
			if ms.nMatchesPerTeam < 3 {
				if count > 1 {
					return false
				}
			} else if count < base || count > base+1 {
				return false
			}
		}

		if len(lo.Uniq(opponents)) != 2*ms.nMatchesPerTeam {
			return false
		}
	}

	return true
}

func (ms *ilpMatchupSolver) validateConfiguration() error {
	if ms.nMatchesPerTeam%3 == 0 {
		if ms.nTeams <= 2*ms.nMatchesPerTeam {
			return ConfigurationError{
				NTeams:          ms.nTeams,
				NMatchesPerTeam: ms.nMatchesPerTeam,
				Reason:          "when n_matches_per_team is a multiple of 3, n_teams must be greater than 2 * n_matches_per_team",
			}
		}
		return nil
	}

	if ms.nTeams%3 != 0 {
		return ConfigurationError{
			NTeams:          ms.nTeams,
			NMatchesPerTeam: ms.nMatchesPerTeam,
			Reason:          "when n_matches_per_team is not a multiple of 3, n_teams must be a multiple of 3",
		}
	}
	if ms.nTeams < 2*ms.nMatchesPerTeam {
		return ConfigurationError{
			NTeams:          ms.nTeams,
			NMatchesPerTeam: ms.nMatchesPerTeam,
			Reason:          "when n_matches_per_team is not a multiple of 3, n_teams must be at least 2 * n_matches_per_team",
		}
	}
	return nil
}

// Every team plays exactly nMatchesPerTeam matches
func (ms *ilpMatchupSolver) teamLoadConstraints(universe []Matchup) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ms.nTeams)
	for team := 1; team <= ms.nTeams; team++ {
		lits := lo.FilterMap(universe, func(matchup Matchup, index int) (int, bool) {
			return index + 1, matchup.Contains(team)
		})
		constraints = append(constraints, ilp.SumExactly(lits, ms.nMatchesPerTeam))
	}
	return constraints
}

// No unordered pair of teams shares more than one match
func (ms *ilpMatchupSolver) uniqueOpponentConstraints(universe []Matchup) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ms.nTeams*(ms.nTeams-1)/2)
	for team1 := 1; team1 <= ms.nTeams; team1++ {
		for team2 := team1 + 1; team2 <= ms.nTeams; team2++ {
			lits := lo.FilterMap(universe, func(matchup Matchup, index int) (int, bool) {
				return index + 1, matchup.Contains(team1) && matchup.Contains(team2)
			})
			constraints = append(constraints, ilp.SumAtMost(lits, 1))
		}
	}
	return constraints
}

// Every team's bench-position occupancy stays balanced across its matches
func (ms *ilpMatchupSolver) benchBalanceConstraints(universe []Matchup) []ilp.Constraint {
	base := ms.nMatchesPerTeam / 3

	constraints := make([]ilp.Constraint, 0, 3*ms.nTeams)
	for team := 1; team <= ms.nTeams; team++ {
		for position := range 3 {
			lits := lo.FilterMap(universe, func(matchup Matchup, index int) (int, bool) {
				return index + 1, matchup[position] == team
			})

			if ms.nMatchesPerTeam < 3 {
				constraints = append(constraints, ilp.SumAtMost(lits, 1))
			} else if ms.nMatchesPerTeam%3 == 0 {
				constraints = append(constraints, ilp.SumExactly(lits, base))
			} else {
				constraints = append(constraints,
					ilp.SumAtLeast(lits, base),
					ilp.SumAtMost(lits, base+1),
				)
			}
		}
	}
	return constraints
}
