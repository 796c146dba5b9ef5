package ilp

// Assignment holds the truth value of every model variable; variable i lives
// at index i-1.
type Assignment []bool

type Solver interface {
	Solve(Model) (Assignment, error) // Returns a feasible assignment of the model if one exists, else returns nil (these are valid outputs where error shall be nil)
}
