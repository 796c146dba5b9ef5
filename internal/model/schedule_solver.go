package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"quizscheduler/internal/ilp"
)

// Names of the schedule constraints that may be relaxed. relaxationOrder
// fixes the sacrifice order: room diversity goes before consecutive-play
// avoidance.
const (
	RoomDiversityConstraint      = "room_diversity"
	ConsecutiveMatchesConstraint = "consecutive_matches"
)

var relaxationOrder = []string{RoomDiversityConstraint, ConsecutiveMatchesConstraint}

// ScheduleEntry assigns a matchup to a room at a time slot.
type ScheduleEntry struct {
	TimeSlot int
	Room     int
	Matchup  Matchup
}

type ScheduleSolver interface {
	// Schedule assigns every matchup to a (room, time-slot) cell. When the
	// fully constrained model is infeasible it retries with constraints
	// relaxed in a fixed order, and reports the names of the constraints that
	// were disabled in the accepted attempt. A nil schedule alongside the full
	// relaxation log means no assignment exists even fully relaxed.
	Schedule(matchups []Matchup) ([]ScheduleEntry, []string, error)

	// Verify independently re-checks a schedule against every invariant. It
	// is a pure audit and never mutates the schedule.
	Verify(schedule []ScheduleEntry) bool
}

func NewScheduleSolver(solver ilp.Solver, nTeams, nMatchesPerTeam, nRooms, nTimeSlots int) ScheduleSolver {
	return &ilpScheduleSolver{
		solver:          solver,
		nTeams:          nTeams,
		nMatchesPerTeam: nMatchesPerTeam,
		nRooms:          nRooms,
		nTimeSlots:      nTimeSlots,
	}
}

type ilpScheduleSolver struct {
	solver ilp.Solver

	nTeams          int
	nMatchesPerTeam int
	nRooms          int
	nTimeSlots      int
}

func (ss *ilpScheduleSolver) Schedule(matchups []Matchup) ([]ScheduleEntry, []string, error) {
	relaxed := []string{}

	schedule, err := ss.attempt(matchups, relaxed)
	if err != nil {
		return nil, nil, err
	}

	for _, constraint := range relaxationOrder {
		if schedule != nil {
			break
		}
		relaxed = append(relaxed, constraint)
		schedule, err = ss.attempt(matchups, relaxed)
		if err != nil {
			return nil, nil, err
		}
	}

	return schedule, relaxed, nil
}

func (ss *ilpScheduleSolver) attempt(matchups []Matchup, relaxed []string) ([]ScheduleEntry, error) {
	indexer := NewIndexer(len(matchups), ss.nRooms, ss.nTimeSlots)

	constraints := ss.occurrenceConstraints(matchups, indexer)
	constraints = append(constraints, ss.roomSlotConstraints(matchups, indexer)...)
	constraints = append(constraints, ss.simultaneousPlayConstraints(matchups, indexer)...)
	if !slices.Contains(relaxed, ConsecutiveMatchesConstraint) {
		constraints = append(constraints, ss.consecutiveMatchConstraints(matchups, indexer)...)
	}
	if !slices.Contains(relaxed, RoomDiversityConstraint) {
		constraints = append(constraints, ss.roomDiversityConstraints(matchups, indexer)...)
	}

	model := ilp.Model{
		Variables:   len(matchups) * ss.nRooms * ss.nTimeSlots,
		Constraints: constraints,
	}

	assignment, err := ss.solver.Solve(model)
	if err != nil {
		return nil, fmt.Errorf("schedule solve failed: %w", err)
	} else if assignment == nil {
		return nil, nil
	}

	schedule := make([]ScheduleEntry, 0, len(matchups))
	for index, value := range assignment {
		if !value {
			continue
		}
		matchup, room, slot := indexer.Attributes(index)
		schedule = append(schedule, ScheduleEntry{
			TimeSlot: slot + 1,
			Room:     room + 1,
			Matchup:  matchups[matchup],
		})
	}

	// Entries are produced in matchup insertion order, which the stable sort
	// keeps as the tie-break
	slices.SortStableFunc(schedule, func(a, b ScheduleEntry) int {
		if comparison := cmp.Compare(a.TimeSlot, b.TimeSlot); comparison != 0 {
			return comparison
		}
		return cmp.Compare(a.Room, b.Room)
	})

	return schedule, nil
}

func (ss *ilpScheduleSolver) Verify(schedule []ScheduleEntry) bool {
	teamRooms := make(map[int][]int, ss.nTeams)
	teamSlots := make(map[int][]int, ss.nTeams)
	for _, entry := range schedule {
		for _, team := range entry.Matchup {
			teamRooms[team] = append(teamRooms[team], entry.Room)
			teamSlots[team] = append(teamSlots[team], entry.TimeSlot)
		}
	}

	// No team plays twice in the same time slot
	for _, slots := range teamSlots {
		if len(lo.Uniq(slots)) != len(slots) {
			return false
		}
	}

	expectedRoomVisits := min(ss.nRooms, ss.nMatchesPerTeam)
	for team := 1; team <= ss.nTeams; team++ {
		if len(lo.Uniq(teamRooms[team])) != expectedRoomVisits {
			return false
		}
	}

	if ss.nMatchesPerTeam > 3 {
		for _, slots := range teamSlots {
			if hasConsecutiveRun(slots, 3) {
				return false
			}
		}
	}

	return true
}

// hasConsecutiveRun reports whether the slots contain a run of at least
// length adjacent time slots
func hasConsecutiveRun(slots []int, length int) bool {
	sorted := slices.Clone(slots)
	slices.Sort(sorted)

	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1]+1 {
			run++
			if run >= length {
				return true
			}
		} else if sorted[i] != sorted[i-1] {
			run = 1
		}
	}
	return false
}

// Every matchup lands on exactly one (room, slot) cell
func (ss *ilpScheduleSolver) occurrenceConstraints(matchups []Matchup, indexer Indexer) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, len(matchups))
	for matchup := range matchups {
		lits := make([]int, 0, ss.nRooms*ss.nTimeSlots)
		for room := range ss.nRooms {
			for slot := range ss.nTimeSlots {
				lits = append(lits, indexer.Index(matchup, room, slot)+1)
			}
		}
		constraints = append(constraints, ilp.SumExactly(lits, 1))
	}
	return constraints
}

// Every (room, slot) cell hosts at most one matchup
func (ss *ilpScheduleSolver) roomSlotConstraints(matchups []Matchup, indexer Indexer) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ss.nRooms*ss.nTimeSlots)
	for room := range ss.nRooms {
		for slot := range ss.nTimeSlots {
			lits := make([]int, 0, len(matchups))
			for matchup := range matchups {
				lits = append(lits, indexer.Index(matchup, room, slot)+1)
			}
			constraints = append(constraints, ilp.SumAtMost(lits, 1))
		}
	}
	return constraints
}

// No team plays in two rooms during the same time slot
func (ss *ilpScheduleSolver) simultaneousPlayConstraints(matchups []Matchup, indexer Indexer) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ss.nTeams*ss.nTimeSlots)
	for slot := range ss.nTimeSlots {
		for team := 1; team <= ss.nTeams; team++ {
			lits := make([]int, 0, len(matchups)*ss.nRooms)
			for matchup, candidate := range matchups {
				if !candidate.Contains(team) {
					continue
				}
				for room := range ss.nRooms {
					lits = append(lits, indexer.Index(matchup, room, slot)+1)
				}
			}
			constraints = append(constraints, ilp.SumAtMost(lits, 1))
		}
	}
	return constraints
}

// No team plays in 3 consecutive time slots
func (ss *ilpScheduleSolver) consecutiveMatchConstraints(matchups []Matchup, indexer Indexer) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ss.nTeams*ss.nTimeSlots)
	for team := 1; team <= ss.nTeams; team++ {
		for slot := 0; slot+2 < ss.nTimeSlots; slot++ {
			lits := make([]int, 0, 3*len(matchups)*ss.nRooms)
			for matchup, candidate := range matchups {
				if !candidate.Contains(team) {
					continue
				}
				for room := range ss.nRooms {
					lits = append(lits,
						indexer.Index(matchup, room, slot)+1,
						indexer.Index(matchup, room, slot+1)+1,
						indexer.Index(matchup, room, slot+2)+1,
					)
				}
			}
			constraints = append(constraints, ilp.SumAtMost(lits, 2))
		}
	}
	return constraints
}

// Every team plays its full match load spread over distinct rooms
func (ss *ilpScheduleSolver) roomDiversityConstraints(matchups []Matchup, indexer Indexer) []ilp.Constraint {
	constraints := make([]ilp.Constraint, 0, ss.nTeams*(ss.nRooms+1))
	for team := 1; team <= ss.nTeams; team++ {
		teamLits := make([]int, 0, len(matchups)*ss.nRooms*ss.nTimeSlots)
		for matchup, candidate := range matchups {
			if !candidate.Contains(team) {
				continue
			}
			for room := range ss.nRooms {
				for slot := range ss.nTimeSlots {
					teamLits = append(teamLits, indexer.Index(matchup, room, slot)+1)
				}
			}
		}
		constraints = append(constraints, ilp.SumExactly(teamLits, ss.nMatchesPerTeam))

		for room := range ss.nRooms {
			lits := make([]int, 0, len(matchups)*ss.nTimeSlots)
			for matchup, candidate := range matchups {
				if !candidate.Contains(team) {
					continue
				}
				for slot := range ss.nTimeSlots {
					lits = append(lits, indexer.Index(matchup, room, slot)+1)
				}
			}
			constraints = append(constraints, ilp.SumAtMost(lits, 1))
		}
	}
	return constraints
}
