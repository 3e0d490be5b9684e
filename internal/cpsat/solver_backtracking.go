package cpsat

import (
	"context"
	"slices"
)

// backtrackingSolver is the in-process backend: depth-first search over the
// boolean variables with linear-constraint propagation. Each constraint keeps
// running bounds of its reachable sum so infeasible branches are pruned as
// soon as a partial assignment rules them out.
type backtrackingSolver struct{}

func NewBacktrackingSolver() Solver {
	return &backtrackingSolver{}
}

func (solver *backtrackingSolver) Solve(ctx context.Context, model *Model) (Result, error) {
	search := newSearch(ctx, model)

	if !search.propagateAll() {
		return Result{Status: StatusUnsatisfiable}, nil
	}

	status := search.run()
	if status != StatusSatisfiable {
		return Result{Status: status}, nil
	}

	values := make(Solution, model.Variables())
	for i, value := range search.assignment {
		values[i] = value == 1
	}
	return Result{Status: StatusSatisfiable, Values: values}, nil
}

type occurrence struct {
	constraint  int
	coefficient int64
}

type search struct {
	ctx         context.Context
	constraints []LinearConstraint
	occurrences [][]occurrence // per variable

	assignment []int8  // -1 unassigned, else 0/1
	curMin     []int64 // per constraint: minimum reachable sum
	curMax     []int64 // per constraint: maximum reachable sum
	trail      []Var
	order      []Var
	nodes      uint64
}

func newSearch(ctx context.Context, model *Model) *search {
	variables := int(model.Variables())
	constraints := model.Constraints()

	s := &search{
		ctx:         ctx,
		constraints: constraints,
		occurrences: make([][]occurrence, variables),
		assignment:  make([]int8, variables),
		curMin:      make([]int64, len(constraints)),
		curMax:      make([]int64, len(constraints)),
	}

	for i := range s.assignment {
		s.assignment[i] = -1
	}

	for i, constraint := range constraints {
		for _, term := range constraint.Terms {
			s.occurrences[term.Var-1] = append(s.occurrences[term.Var-1], occurrence{constraint: i, coefficient: term.Coefficient})
			if term.Coefficient < 0 {
				s.curMin[i] += term.Coefficient
			} else {
				s.curMax[i] += term.Coefficient
			}
		}
	}

	// Branch on the most constrained variables first
	s.order = make([]Var, variables)
	for i := range s.order {
		s.order[i] = Var(i + 1)
	}
	slices.SortStableFunc(s.order, func(a, b Var) int {
		return len(s.occurrences[b-1]) - len(s.occurrences[a-1])
	})

	return s
}

func (s *search) run() Status {
	s.nodes++
	if s.nodes&255 == 0 && s.ctx.Err() != nil {
		return StatusUnknown
	}

	variable, ok := s.nextUnassigned()
	if !ok {
		return StatusSatisfiable
	}

	for _, value := range [2]int8{1, 0} {
		mark := len(s.trail)
		if s.assign(variable, value) {
			status := s.run()
			if status != StatusUnsatisfiable {
				return status
			}
		}
		s.undo(mark)
	}

	return StatusUnsatisfiable
}

func (s *search) nextUnassigned() (Var, bool) {
	for _, variable := range s.order {
		if s.assignment[variable-1] == -1 {
			return variable, true
		}
	}
	return 0, false
}

// assign sets a variable, updates the reachable bounds of every constraint it
// occurs in and propagates forced values. Returns false on conflict; the
// caller unwinds through the trail.
func (s *search) assign(variable Var, value int8) bool {
	if current := s.assignment[variable-1]; current != -1 {
		return current == value
	}

	s.assignment[variable-1] = value
	s.trail = append(s.trail, variable)

	for _, occ := range s.occurrences[variable-1] {
		fixed := int64(0)
		if value == 1 {
			fixed = occ.coefficient
		}
		s.curMin[occ.constraint] += fixed - min(occ.coefficient, 0)
		s.curMax[occ.constraint] += fixed - max(occ.coefficient, 0)
	}

	for _, occ := range s.occurrences[variable-1] {
		if !s.propagate(occ.constraint) {
			return false
		}
	}
	return true
}

// propagate checks feasibility of one constraint and assigns any variable
// whose alternative value would make the constraint unreachable.
func (s *search) propagate(index int) bool {
	constraint := s.constraints[index]
	if s.curMin[index] > constraint.Upper || s.curMax[index] < constraint.Lower {
		return false
	}

	for _, term := range constraint.Terms {
		if s.assignment[term.Var-1] != -1 {
			continue
		}

		feasible := func(value int64) bool {
			newMin := s.curMin[index] + value*term.Coefficient - min(term.Coefficient, 0)
			newMax := s.curMax[index] + value*term.Coefficient - max(term.Coefficient, 0)
			return newMin <= constraint.Upper && newMax >= constraint.Lower
		}

		canBeFalse, canBeTrue := feasible(0), feasible(1)
		switch {
		case !canBeFalse && !canBeTrue:
			return false
		case !canBeFalse:
			if !s.assign(term.Var, 1) {
				return false
			}
		case !canBeTrue:
			if !s.assign(term.Var, 0) {
				return false
			}
		}
	}
	return true
}

// propagateAll runs the initial propagation pass before any decision is made.
func (s *search) propagateAll() bool {
	for index := range s.constraints {
		if !s.propagate(index) {
			return false
		}
	}
	return true
}

func (s *search) undo(mark int) {
	for len(s.trail) > mark {
		variable := s.trail[len(s.trail)-1]
		s.trail = s.trail[:len(s.trail)-1]

		value := s.assignment[variable-1]
		s.assignment[variable-1] = -1

		for _, occ := range s.occurrences[variable-1] {
			fixed := int64(0)
			if value == 1 {
				fixed = occ.coefficient
			}
			s.curMin[occ.constraint] -= fixed - min(occ.coefficient, 0)
			s.curMax[occ.constraint] -= fixed - max(occ.coefficient, 0)
		}
	}
}
