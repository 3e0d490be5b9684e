package cpsat

import "math/rand/v2"

// GenerateModel builds a random model over the given number of variables:
// a mix of exactly-one groups, cardinality caps and weighted-sum caps.
// Instances generated this way may or may not be satisfiable.
func GenerateModel(variables uint64, constraints int) *Model {
	model := NewModel()

	vars := make([]Var, variables)
	for i := range vars {
		vars[i] = model.NewBoolVar("")
	}

	for range constraints {
		picked := make([]Var, 0, variables)
		for _, v := range vars {
			if rand.Float32() < 0.4 {
				picked = append(picked, v)
			}
		}
		if len(picked) == 0 {
			picked = append(picked, vars[rand.IntN(len(vars))])
		}

		switch rand.IntN(3) {
		case 0:
			model.AddExactlyOne(picked)
		case 1:
			model.AddAtMost(picked, 1+rand.Int64N(int64(len(picked))))
		default:
			terms := make([]Term, 0, len(picked))
			var total int64
			for _, v := range picked {
				coefficient := 1 + rand.Int64N(3)
				terms = append(terms, Term{Coefficient: coefficient, Var: v})
				total += coefficient
			}
			model.AddLinearConstraint(terms, NoLowerBound, 1+rand.Int64N(total))
		}
	}

	return model
}

// AssertSolution checks that an assignment satisfies every constraint of the
// model.
func AssertSolution(model *Model, values Solution) bool {
	if uint64(len(values)) != model.Variables() {
		return false
	}

	for _, constraint := range model.Constraints() {
		var sum int64
		for _, term := range constraint.Terms {
			if values.Value(term.Var) {
				sum += term.Coefficient
			}
		}
		if sum < constraint.Lower || sum > constraint.Upper {
			return false
		}
	}
	return true
}
