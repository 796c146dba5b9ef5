package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"quizscheduler/internal/ilp"
)

// Runs the whole pipeline the way the CLI drives it: universe, matchup
// enumeration, audit, scheduling with relaxation, audit.
func TestEndToEndGeneration(t *testing.T) {
	g := NewWithT(t)

	const (
		NTeams            = 9
		NMatchesPerTeam   = 3
		NMatchupSolutions = 2
		NRooms            = 3
		NTimeSlots        = 5
	)

	solver := ilp.NewGophersatSolver()
	matchupSolver := NewMatchupSolver(solver, NTeams, NMatchesPerTeam)

	universe := GenerateAllMatchups(NTeams)
	g.Expect(universe).To(HaveLen(NTeams * (NTeams - 1) * (NTeams - 2)))

	solutions, err := matchupSolver.FindSolutions(universe, NMatchupSolutions)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(solutions).NotTo(BeEmpty())

	for _, solution := range solutions {
		g.Expect(solution).To(HaveLen(NTeams * NMatchesPerTeam / 3))
		g.Expect(matchupSolver.Verify(solution)).To(BeTrue())
	}

	scheduleSolver := NewScheduleSolver(solver, NTeams, NMatchesPerTeam, NRooms, NTimeSlots)
	schedule, relaxed, err := scheduleSolver.Schedule(solutions[0])
	g.Expect(err).NotTo(HaveOccurred())

	if schedule == nil {
		g.Expect(relaxed).To(Equal([]string{RoomDiversityConstraint, ConsecutiveMatchesConstraint}))
		return
	}

	g.Expect(schedule).To(HaveLen(len(solutions[0])))

	cells := lo.Map(schedule, func(entry ScheduleEntry, _ int) [2]int { return [2]int{entry.Room, entry.TimeSlot} })
	g.Expect(lo.Uniq(cells)).To(HaveLen(len(cells)))

	scheduled := lo.Map(schedule, func(entry ScheduleEntry, _ int) Matchup { return entry.Matchup })
	g.Expect(scheduled).To(ConsistOf(solutions[0]))

	for slot := 1; slot <= NTimeSlots; slot++ {
		teams := []int{}
		for _, entry := range schedule {
			if entry.TimeSlot == slot {
				teams = append(teams, entry.Matchup[0], entry.Matchup[1], entry.Matchup[2])
			}
		}
		g.Expect(lo.Uniq(teams)).To(HaveLen(len(teams)))
	}

	if len(relaxed) == 0 {
		g.Expect(scheduleSolver.Verify(schedule)).To(BeTrue())
	}
}
