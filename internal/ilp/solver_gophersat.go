package ilp

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (*gophersatSolver) Solve(model Model) (Assignment, error) {
	constrs := make([]solver.PBConstr, 0, len(model.Constraints))
	for _, constraint := range model.Constraints {
		if len(constraint.Lits) == 0 {
			// An empty sum is 0: trivially true or proven infeasible right here
			switch {
			case constraint.Rel == AtLeast && constraint.Bound > 0,
				constraint.Rel == Exactly && constraint.Bound != 0:
				return nil, nil
			default:
				continue
			}
		}
		weights := unitWeights(len(constraint.Lits))
		switch constraint.Rel {
		case AtLeast:
			constrs = append(constrs, solver.GtEq(constraint.Lits, weights, constraint.Bound))
		case AtMost:
			constrs = append(constrs, solver.LtEq(constraint.Lits, weights, constraint.Bound))
		case Exactly:
			constrs = append(constrs,
				solver.GtEq(constraint.Lits, weights, constraint.Bound),
				solver.LtEq(constraint.Lits, weights, constraint.Bound),
			)
		default:
			return nil, fmt.Errorf("unknown constraint relation: %v", constraint.Rel)
		}
	}

	problem := solver.ParsePBConstrs(constrs)
	s := solver.New(problem)

	switch status := s.Solve(); status {
	case solver.Sat:
	case solver.Unsat:
		return nil, nil
	default:
		return nil, fmt.Errorf("gophersat returned an inconclusive status: %v", status)
	}

	// The problem only knows about variables mentioned in constraints, so the
	// returned model may be shorter than the declared variable count.
	assignment := make(Assignment, model.Variables)
	copy(assignment, s.Model())
	return assignment, nil
}

func unitWeights(length int) []int {
	weights := make([]int, length)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
