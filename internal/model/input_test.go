package model

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestFromJson(t *testing.T) {
	t.Run("Missing fields keep defaults", func(t *testing.T) {
		// Arrange
		filePath := path.Join(t.TempDir(), "request.json")
		err := os.WriteFile(filePath, []byte(`{"n_teams": 9, "n_rooms": 3}`), 0666)
		assert.Nil(t, err)

		// Act
		request, err := RequestFromJson(filePath)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 9, request.NTeams)
		assert.Equal(t, 3, request.NRooms)
		assert.Equal(t, DefaultRequest().NMatchesPerTeam, request.NMatchesPerTeam)
		assert.Equal(t, DefaultRequest().NMatchupSolutions, request.NMatchupSolutions)
		assert.Equal(t, DefaultRequest().NTimeSlots, request.NTimeSlots)
	})

	t.Run("Unreadable file errors", func(t *testing.T) {
		_, err := RequestFromJson(path.Join(t.TempDir(), "missing.json"))
		assert.NotNil(t, err)
	})

	t.Run("Malformed json errors", func(t *testing.T) {
		filePath := path.Join(t.TempDir(), "request.json")
		assert.Nil(t, os.WriteFile(filePath, []byte("{"), 0666))

		_, err := RequestFromJson(filePath)
		assert.NotNil(t, err)
	})
}

func TestRequestValidate(t *testing.T) {
	assert.Nil(t, DefaultRequest().Validate())

	scenarios := []Request{
		{NTeams: 2, NMatchesPerTeam: 3, NMatchupSolutions: 1, NRooms: 1, NTimeSlots: 1},
		{NTeams: 9, NMatchesPerTeam: 0, NMatchupSolutions: 1, NRooms: 1, NTimeSlots: 1},
		{NTeams: 9, NMatchesPerTeam: 3, NMatchupSolutions: 0, NRooms: 1, NTimeSlots: 1},
		{NTeams: 9, NMatchesPerTeam: 3, NMatchupSolutions: 1, NRooms: 0, NTimeSlots: 1},
		{NTeams: 9, NMatchesPerTeam: 3, NMatchupSolutions: 1, NRooms: 1, NTimeSlots: 0},
	}
	for _, request := range scenarios {
		assert.NotNil(t, request.Validate())
	}
}
