package cpsat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoolVarHandlesAreOneBased(t *testing.T) {
	model := NewModel()

	a := model.NewBoolVar("a")
	b := model.NewBoolVar("b")

	assert.Equal(t, Var(1), a)
	assert.Equal(t, Var(2), b)
	assert.Equal(t, uint64(2), model.Variables())
	assert.Equal(t, "a", model.Name(a))
	assert.Equal(t, "b", model.Name(b))
}

func TestAddExactlyOneLowering(t *testing.T) {
	model := NewModel()
	a := model.NewBoolVar("a")
	b := model.NewBoolVar("b")

	model.AddExactlyOne([]Var{a, b})

	constraints := model.Constraints()
	assert.Len(t, constraints, 1)
	assert.Equal(t, int64(1), constraints[0].Lower)
	assert.Equal(t, int64(1), constraints[0].Upper)
	assert.Equal(t, []Term{{1, a}, {1, b}}, constraints[0].Terms)
}

func TestToOPB(t *testing.T) {
	model := NewModel()
	a := model.NewBoolVar("a")
	b := model.NewBoolVar("b")
	c := model.NewBoolVar("c")

	model.AddExactlyOne([]Var{a, b})
	model.AddAtMost([]Var{b, c}, 1)
	model.AddLinearConstraint([]Term{{2, a}, {1, c}}, 1, 2)

	expected := "* #variable= 3 #constraint= 4\n" +
		"+1 x1 +1 x2 = 1 ;\n" +
		"-1 x2 -1 x3 >= -1 ;\n" +
		"+2 x1 +1 x3 >= 1 ;\n" +
		"-2 x1 -1 x3 >= -2 ;\n"
	assert.Equal(t, expected, model.ToOPB())
}

func TestParseOPBSolution(t *testing.T) {
	output := "c some comment\ns SATISFIABLE\nv x1 -x2 x3\n"

	values, err := parseOPBSolution(output, 3)

	assert.Nil(t, err)
	assert.Equal(t, Solution{true, false, true}, values)
}

func TestParseOPBSolutionRejectsGarbage(t *testing.T) {
	_, err := parseOPBSolution("v y1\n", 1)
	assert.NotNil(t, err)

	_, err = parseOPBSolution("s SATISFIABLE\n", 1)
	assert.NotNil(t, err)
}
