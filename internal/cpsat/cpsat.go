package cpsat

import (
	"fmt"
	"math"
	"strings"
)

// Var is a handle to a boolean decision variable of a Model. Handles are
// 1-based so they can be negated when serialized to solver formats.
type Var uint64

// Term is a weighted occurrence of a variable inside a linear constraint.
type Term struct {
	Coefficient int64
	Var         Var
}

// Bounds sentinels for one-sided linear constraints.
const (
	NoLowerBound int64 = math.MinInt64
	NoUpperBound int64 = math.MaxInt64
)

// LinearConstraint states that Lower <= sum(Coefficient * value(Var)) <= Upper
// over boolean variables valued in {0, 1}.
type LinearConstraint struct {
	Terms []Term
	Lower int64
	Upper int64
}

// Model is a conjunction of linear constraints over boolean variables.
// NewBoolVar and AddLinearConstraint are the only mutation surface: every
// higher-level constraint is lowered onto them.
type Model struct {
	names       []string
	constraints []LinearConstraint
}

func NewModel() *Model {
	return &Model{}
}

// NewBoolVar declares a fresh boolean variable and returns its handle.
func (m *Model) NewBoolVar(name string) Var {
	m.names = append(m.names, name)
	return Var(len(m.names))
}

// Variables returns the number of declared variables.
func (m *Model) Variables() uint64 {
	return uint64(len(m.names))
}

// Name returns the declaration name of a variable.
func (m *Model) Name(v Var) string {
	return m.names[v-1]
}

// Constraints returns the constraints added so far.
func (m *Model) Constraints() []LinearConstraint {
	return m.constraints
}

func (m *Model) AddLinearConstraint(terms []Term, lower, upper int64) {
	m.constraints = append(m.constraints, LinearConstraint{Terms: terms, Lower: lower, Upper: upper})
}

// AddExactlyOne states that exactly one of the given variables is true.
// An empty variable set yields a constraint that is unsatisfiable by
// construction, which is intentional: callers rely on the solver to report it.
func (m *Model) AddExactlyOne(vars []Var) {
	m.AddLinearConstraint(unitTerms(vars), 1, 1)
}

// AddAtMost states that at most bound of the given variables are true.
func (m *Model) AddAtMost(vars []Var, bound int64) {
	m.AddLinearConstraint(unitTerms(vars), NoLowerBound, bound)
}

// AddFixedFalse pins a variable to 0.
func (m *Model) AddFixedFalse(v Var) {
	m.AddLinearConstraint([]Term{{Coefficient: 1, Var: v}}, 0, 0)
}

func unitTerms(vars []Var) []Term {
	terms := make([]Term, 0, len(vars))
	for _, v := range vars {
		terms = append(terms, Term{Coefficient: 1, Var: v})
	}
	return terms
}

// ToOPB serializes the model into the OPB pseudo-boolean text format consumed
// by PB-competition solvers. Ranged constraints are split into a ">=" line and
// a negated ">=" line, since OPB has no native two-sided operator.
func (m *Model) ToOPB() string {
	lines := 0
	for _, constraint := range m.constraints {
		if constraint.Lower == constraint.Upper {
			lines++
			continue
		}
		if constraint.Lower != NoLowerBound {
			lines++
		}
		if constraint.Upper != NoUpperBound {
			lines++
		}
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "* #variable= %d #constraint= %d\n", len(m.names), lines)
	for _, constraint := range m.constraints {
		if constraint.Lower == constraint.Upper {
			writeOPBLine(&builder, constraint.Terms, "=", constraint.Lower, false)
			continue
		}
		if constraint.Lower != NoLowerBound {
			writeOPBLine(&builder, constraint.Terms, ">=", constraint.Lower, false)
		}
		if constraint.Upper != NoUpperBound {
			// sum <= upper becomes -sum >= -upper
			writeOPBLine(&builder, constraint.Terms, ">=", -constraint.Upper, true)
		}
	}
	return builder.String()
}

func writeOPBLine(builder *strings.Builder, terms []Term, operator string, degree int64, negate bool) {
	for _, term := range terms {
		coefficient := term.Coefficient
		if negate {
			coefficient = -coefficient
		}
		fmt.Fprintf(builder, "%+d x%d ", coefficient, term.Var)
	}
	fmt.Fprintf(builder, "%s %d ;\n", operator, degree)
}
