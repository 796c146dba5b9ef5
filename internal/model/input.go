package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Request carries the validated integer parameters of a generation run.
type Request struct {
	NTeams            int `mapstructure:"n_teams"`
	NMatchesPerTeam   int `mapstructure:"n_matches_per_team"`
	NMatchupSolutions int `mapstructure:"n_matchup_solutions"`
	NRooms            int `mapstructure:"n_rooms"`
	NTimeSlots        int `mapstructure:"n_time_slots"`
}

func DefaultRequest() Request {
	return Request{
		NTeams:            30,
		NMatchesPerTeam:   3,
		NMatchupSolutions: 2,
		NRooms:            5,
		NTimeSlots:        6,
	}
}

// Validate rejects non-positive parameters. Feasibility of the combination is
// the matchup solver's concern, not the request's.
func (request Request) Validate() error {
	if request.NTeams < 3 {
		return fmt.Errorf("n_teams must be at least 3: %v", request.NTeams)
	}
	if request.NMatchesPerTeam <= 0 {
		return fmt.Errorf("n_matches_per_team must be positive: %v", request.NMatchesPerTeam)
	}
	if request.NMatchupSolutions <= 0 {
		return fmt.Errorf("n_matchup_solutions must be positive: %v", request.NMatchupSolutions)
	}
	if request.NRooms <= 0 {
		return fmt.Errorf("n_rooms must be positive: %v", request.NRooms)
	}
	if request.NTimeSlots <= 0 {
		return fmt.Errorf("n_time_slots must be positive: %v", request.NTimeSlots)
	}
	return nil
}

// RequestFromJson decodes a request from a JSON file. Missing fields keep
// their default values.
func RequestFromJson(filePath string) (Request, error) {
	request := DefaultRequest()

	content, err := os.ReadFile(filePath)
	if err != nil {
		return request, fmt.Errorf("cannot read input file: %v", err)
	}

	var rawRequest map[string]any
	if err := json.Unmarshal(content, &rawRequest); err != nil {
		return request, fmt.Errorf("cannot unmarshal input file: %v", err)
	}

	if err := mapstructure.Decode(rawRequest, &request); err != nil {
		return request, fmt.Errorf("cannot decode input file: %v", err)
	}

	return request, nil
}
