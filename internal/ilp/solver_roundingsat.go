package ilp

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// RoundingsatPath points to a PB-competition-compliant solver binary.
var RoundingsatPath = "roundingsat"

type roundingsatSolver struct{}

func NewRoundingsatSolver() Solver {
	return &roundingsatSolver{}
}

func (*roundingsatSolver) Solve(model Model) (Assignment, error) {
	opb := model.ToOPB()

	file, err := os.CreateTemp("", "model-*.opb")
	if err != nil {
		return nil, fmt.Errorf("cannot create opb file: %v", err)
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(opb); err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot write opb file: %v", err)
	}
	file.Close()

	cmd := exec.Command(RoundingsatPath, file.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 && cmd.ProcessState.ExitCode() != 30 { // Exit-codes 10, 20 and 30 stand for satisfiable, unsatisfiable and optimum found
		return nil, fmt.Errorf("an error occurred during solver execution: %v : %v", err.Error(), stderr.String())
	}

	status, ok := lo.Find(strings.Split(stdOut.String(), "\n"), func(line string) bool { return strings.HasPrefix(line, "s ") })
	if !ok {
		return nil, fmt.Errorf("solver output carries no status line: %v", stderr.String())
	}
	if strings.Contains(status, "UNSATISFIABLE") {
		return nil, nil
	}

	return ParsePBSolution(stdOut.String(), model.Variables)
}

// ParsePBSolution extracts the assignment from the "v" lines of a
// PB-competition-formatted solver output, where literals read "x3" or "-x3"
// (some solvers print "~x3" for negation).
func ParsePBSolution(solverOutput string, variables int) (Assignment, error) {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool { return strings.HasPrefix(line, "v ") })

	assignment := make(Assignment, variables)
	for _, line := range valueLines {
		for _, token := range strings.Fields(line[2:]) {
			value := true
			if strings.HasPrefix(token, "-") || strings.HasPrefix(token, "~") {
				value = false
				token = token[1:]
			}
			if len(token) < 2 || token[0] != 'x' {
				return nil, fmt.Errorf("invalid literal in solver output: %v", token)
			}
			variable, err := strconv.Atoi(token[1:])
			if err != nil {
				return nil, fmt.Errorf("invalid literal in solver output: %v", err)
			}
			if variable < 1 || variable > variables {
				return nil, fmt.Errorf("literal out of range in solver output: x%d", variable)
			}
			assignment[variable-1] = value
		}
	}
	return assignment, nil
}
