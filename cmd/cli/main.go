package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"quizscheduler/internal/ilp"
	"quizscheduler/internal/model"
)

var (
	validSolvers = []string{"gophersat", "roundingsat"}
	solvers      = map[string]func() ilp.Solver{
		"gophersat":   ilp.NewGophersatSolver,
		"roundingsat": ilp.NewRoundingsatSolver,
	}
)

type matchupsOutput struct {
	Solutions map[string][]model.Matchup `json:"solutions"`
}

type scheduleOutput struct {
	Schedule           []scheduleItem `json:"schedule"`
	ConstraintsRelaxed []string       `json:"constraints_relaxed"`
}

type scheduleItem struct {
	TimeSlot int           `json:"time_slot"`
	Room     int           `json:"room"`
	Matchup  model.Matchup `json:"matchup"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to a JSON request file; its fields override the defaults, and flags below override the file")
	teamsPtr := flag.Int("teams", 0, "Number of participating teams")
	matchesPtr := flag.Int("matches", 0, "Number of matches each team plays")
	solutionsPtr := flag.Int("solutions", 0, "Number of distinct matchup solutions to generate")
	roomsPtr := flag.Int("rooms", 0, "Number of available rooms")
	slotsPtr := flag.Int("slots", 0, "Number of time slots")
	schedulePtr := flag.Bool("schedule", false, "Assign the generated matchups to rooms and time slots")
	solverPtr := flag.String("solver", "gophersat", "Solver to use. Allowed values are: \"gophersat\" and \"roundingsat\", where \"gophersat\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	// Build the request: defaults, then file, then explicit flags
	request := model.DefaultRequest()
	if *filePathPtr != "" {
		var err error
		request, err = model.RequestFromJson(*filePathPtr)
		if err != nil {
			log.Fatalf("cannot parse request file: %v", err)
		}
	}
	if *teamsPtr > 0 {
		request.NTeams = *teamsPtr
	}
	if *matchesPtr > 0 {
		request.NMatchesPerTeam = *matchesPtr
	}
	if *solutionsPtr > 0 {
		request.NMatchupSolutions = *solutionsPtr
	}
	if *roomsPtr > 0 {
		request.NRooms = *roomsPtr
	}
	if *slotsPtr > 0 {
		request.NTimeSlots = *slotsPtr
	}
	if err := request.Validate(); err != nil {
		log.Fatalf("invalid request: %v", err)
	}

	// Initialize engines
	solver := solvers[solverStr]()
	matchupSolver := model.NewMatchupSolver(solver, request.NTeams, request.NMatchesPerTeam)

	// Generate matchup solutions
	universe := model.GenerateAllMatchups(request.NTeams)
	solutions, err := matchupSolver.FindSolutions(universe, request.NMatchupSolutions)
	if err != nil {
		log.Fatalf("an error occurred during matchup generation: %v", err)
	} else if len(solutions) == 0 {
		fmt.Println("No feasible matchup set exists")
		os.Exit(20)
	}

	for i, solution := range solutions {
		if !matchupSolver.Verify(solution) {
			log.Fatalf("matchup audit failed for solution_set_%v", i+1)
		}
	}

	if !*schedulePtr {
		output := matchupsOutput{Solutions: map[string][]model.Matchup{}}
		for i, solution := range solutions {
			output.Solutions[fmt.Sprintf("solution_set_%v", i+1)] = solution
		}
		writeOutput(output, *outFilePathPtr)
		os.Exit(10)
	}

	// Schedule the first solution set that fits the room-slot grid
	scheduleSolver := model.NewScheduleSolver(solver, request.NTeams, request.NMatchesPerTeam, request.NRooms, request.NTimeSlots)

	for _, solution := range solutions {
		schedule, relaxed, err := scheduleSolver.Schedule(solution)
		if err != nil {
			log.Fatalf("an error occurred during scheduling: %v", err)
		} else if schedule == nil {
			continue
		}

		if len(relaxed) == 0 && !scheduleSolver.Verify(schedule) {
			log.Fatal("schedule audit failed")
		}

		output := scheduleOutput{
			Schedule:           make([]scheduleItem, 0, len(schedule)),
			ConstraintsRelaxed: relaxed,
		}
		for _, entry := range schedule {
			output.Schedule = append(output.Schedule, scheduleItem{
				TimeSlot: entry.TimeSlot,
				Room:     entry.Room,
				Matchup:  entry.Matchup,
			})
		}
		writeOutput(output, *outFilePathPtr)
		os.Exit(10)
	}

	fmt.Println("No valid schedule found even after relaxing constraints")
	os.Exit(20)
}

func writeOutput(output any, outFile string) {
	outputJson, err := json.Marshal(output)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	if outFile == "" {
		fmt.Println(string(outputJson))
	} else if err := os.WriteFile(outFile, outputJson, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}
}
