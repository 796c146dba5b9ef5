package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToOPB(t *testing.T) {
	// Arrange
	model := Model{
		Variables: 4,
		Constraints: []Constraint{
			SumAtLeast([]int{1, 2, 3}, 2),
			SumAtMost([]int{2, 4}, 1),
			SumExactly([]int{1, 4}, 1),
		},
	}

	// Act
	opb := model.ToOPB()

	// Assert
	expected := "* #variable= 4 #constraint= 3\n" +
		"+1 x1 +1 x2 +1 x3 >= 2 ;\n" +
		"-1 x2 -1 x4 >= -1 ;\n" +
		"+1 x1 +1 x4 = 1 ;\n"
	assert.Equal(t, expected, opb)
}

func TestParsePBSolution(t *testing.T) {
	// Arrange
	output := "c some comment\ns SATISFIABLE\nv x1 -x2 x3\nv ~x4 x5\n"

	// Act
	assignment, err := ParsePBSolution(output, 5)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, Assignment{true, false, true, false, true}, assignment)
}

func TestParsePBSolutionRejectsGarbage(t *testing.T) {
	_, err := ParsePBSolution("s SATISFIABLE\nv x1 y2\n", 2)
	assert.NotNil(t, err)

	_, err = ParsePBSolution("s SATISFIABLE\nv x7\n", 2)
	assert.NotNil(t, err)
}

func TestAssertAssignment(t *testing.T) {
	model := Model{
		Variables: 3,
		Constraints: []Constraint{
			SumExactly([]int{1, 2, 3}, 2),
			SumAtMost([]int{1, 2}, 1),
		},
	}

	assert.True(t, AssertAssignment(model, Assignment{true, false, true}))
	assert.False(t, AssertAssignment(model, Assignment{true, true, false}))
	assert.False(t, AssertAssignment(model, Assignment{true, false, true, false}))
}
