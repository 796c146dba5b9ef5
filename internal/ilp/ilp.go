package ilp

import (
	"fmt"
	"strings"
)

// Relation compares the sum of a constraint's literals against its bound.
type Relation int

const (
	AtLeast Relation = iota
	AtMost
	Exactly
)

// Constraint is a cardinality constraint over binary decision variables:
// the number of true literals among Lits must relate to Bound according to
// Rel. Literals are 1-based variable indices.
type Constraint struct {
	Lits  []int
	Rel   Relation
	Bound int
}

// Model is a 0-1 feasibility problem: find an assignment of Variables binary
// variables satisfying every constraint, or prove that none exists.
type Model struct {
	Variables   int
	Constraints []Constraint
}

func SumAtLeast(lits []int, bound int) Constraint {
	return Constraint{Lits: lits, Rel: AtLeast, Bound: bound}
}

func SumAtMost(lits []int, bound int) Constraint {
	return Constraint{Lits: lits, Rel: AtMost, Bound: bound}
}

func SumExactly(lits []int, bound int) Constraint {
	return Constraint{Lits: lits, Rel: Exactly, Bound: bound}
}

// ToOPB serializes the model into the OPB pseudo-boolean format. At-most
// constraints are emitted in negated at-least form since the base format only
// guarantees the ">=" and "=" operators.
func (m Model) ToOPB() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "* #variable= %d #constraint= %d\n", m.Variables, len(m.Constraints))
	for _, constraint := range m.Constraints {
		switch constraint.Rel {
		case AtLeast:
			writeOPBRow(&builder, constraint.Lits, 1, ">=", constraint.Bound)
		case AtMost:
			writeOPBRow(&builder, constraint.Lits, -1, ">=", -constraint.Bound)
		case Exactly:
			writeOPBRow(&builder, constraint.Lits, 1, "=", constraint.Bound)
		}
	}
	return builder.String()
}

func writeOPBRow(builder *strings.Builder, lits []int, coefficient int, operator string, bound int) {
	for _, lit := range lits {
		fmt.Fprintf(builder, "%+d x%d ", coefficient, lit)
	}
	fmt.Fprintf(builder, "%s %d ;\n", operator, bound)
}
