package ilp

import "math/rand/v2"

func GenerateModel(variables, constraints int) Model {
	model := Model{
		Variables:   variables,
		Constraints: make([]Constraint, constraints),
	}

	for i := range constraints {
		lits := make([]int, 0, variables)
		for variable := 1; variable <= variables; variable++ {
			if rand.Float32() < 0.5 {
				lits = append(lits, variable)
			}
		}
		if len(lits) == 0 {
			lits = append(lits, 1+rand.IntN(variables))
		}

		bound := rand.IntN(len(lits) + 1)
		relation := Relation(rand.IntN(3))
		model.Constraints[i] = Constraint{Lits: lits, Rel: relation, Bound: bound}
	}

	return model
}

func AssertAssignment(model Model, assignment Assignment) bool {
	if len(assignment) != model.Variables {
		return false
	}

	for _, constraint := range model.Constraints {
		sum := 0
		for _, lit := range constraint.Lits {
			if assignment[lit-1] {
				sum++
			}
		}

		switch constraint.Rel {
		case AtLeast:
			if sum < constraint.Bound {
				return false
			}
		case AtMost:
			if sum > constraint.Bound {
				return false
			}
		case Exactly:
			if sum != constraint.Bound {
				return false
			}
		}
	}

	return true
}
