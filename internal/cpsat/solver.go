package cpsat

import "context"

// Status is the outcome of a solve call.
type Status int

const (
	// StatusUnknown means the search was cut short (deadline, cancellation)
	// before reaching a verdict.
	StatusUnknown Status = iota
	StatusSatisfiable
	StatusUnsatisfiable
)

func (s Status) String() string {
	switch s {
	case StatusSatisfiable:
		return "SATISFIABLE"
	case StatusUnsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Solution holds the value of every variable, indexed by Var - 1.
type Solution []bool

// Value returns the solved value of a variable.
func (s Solution) Value(v Var) bool {
	return s[v-1]
}

type Result struct {
	Status Status
	Values Solution // nil unless Status is StatusSatisfiable
}

// Solver finds an assignment satisfying every constraint of a model, or
// proves none exists. Implementations are stateless across calls.
type Solver interface {
	Solve(ctx context.Context, model *Model) (Result, error)
}
