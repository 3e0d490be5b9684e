package cpsat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const roundingsatPath = "roundingsat"

// roundingsatSolver shells out to the RoundingSat pseudo-boolean solver,
// feeding the model in OPB format through standard input.
type roundingsatSolver struct{}

func NewRoundingsatSolver() Solver {
	return &roundingsatSolver{}
}

func (solver *roundingsatSolver) Solve(ctx context.Context, model *Model) (Result, error) {
	opb := model.ToOPB() // Transform the model into OPB string format

	cmd := exec.CommandContext(ctx, roundingsatPath, "--print-sol=1")
	cmd.Stdin = strings.NewReader(opb) // Feed opb into roundingsat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return Result{}, fmt.Errorf("cannot execute roundingsat: %v", err)
	}

	// Exit-code of 10 stands for satisfiable, 20 for unsatisfiable and 0 for indeterminate
	exitCode := cmd.ProcessState.ExitCode()
	if ctx.Err() != nil {
		return Result{Status: StatusUnknown}, nil
	} else if err != nil && exitCode != 10 && exitCode != 20 && exitCode != 0 {
		return Result{}, fmt.Errorf("an error occurred during roundingsat execution: %v : %v", err.Error(), stderr.String())
	} else if exitCode == 20 {
		return Result{Status: StatusUnsatisfiable}, nil
	} else if exitCode != 10 {
		return Result{Status: StatusUnknown}, nil
	}

	values, err := parseOPBSolution(stdOut.String(), model.Variables())
	if err != nil {
		return Result{}, err
	}
	return Result{Status: StatusSatisfiable, Values: values}, nil
}

// parseOPBSolution reads the "v" lines of a PB-competition solver output,
// where each literal is either xN (true) or -xN (false).
func parseOPBSolution(solverOutput string, variables uint64) (Solution, error) {
	values := make(Solution, variables)

	found := false
	for _, line := range strings.Split(solverOutput, "\n") {
		if !strings.HasPrefix(line, "v") {
			continue
		}
		found = true

		for _, token := range strings.Fields(line[1:]) {
			negated := strings.HasPrefix(token, "-")
			token = strings.TrimPrefix(token, "-")
			if !strings.HasPrefix(token, "x") {
				return nil, fmt.Errorf("invalid literal %q in roundingsat output", token)
			}

			var index uint64
			if _, err := fmt.Sscanf(token[1:], "%d", &index); err != nil || index == 0 || index > variables {
				return nil, fmt.Errorf("invalid literal %q in roundingsat output", token)
			}
			values[index-1] = !negated
		}
	}

	if !found {
		return nil, fmt.Errorf("no value line in roundingsat output")
	}
	return values, nil
}
