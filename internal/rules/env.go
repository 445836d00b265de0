// Package rules compiles CEL invariants and checks variable sets against them.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Check is a named boolean CEL formula. Error is reported when the formula
// evaluates to false.
type Check struct {
	Name    string
	Formula string
	Error   string
}

// Violation is returned for the first check that does not hold.
type Violation struct {
	Check string
	Msg   string
}

func (v *Violation) Error() string { return fmt.Sprintf("%s: %s", v.Check, v.Msg) }

type program struct {
	check Check
	prg   cel.Program
}

// Validator evaluates precompiled checks over double-valued variables.
type Validator struct {
	programs []program
}

// NewValidator declares vars as CEL doubles and compiles every check.
func NewValidator(vars []string, checks []Check) (*Validator, error) {
	opts := make([]cel.EnvOption, 0, len(vars))
	for _, name := range vars {
		opts = append(opts, cel.Variable(name, cel.DoubleType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, err
	}

	v := &Validator{}
	for _, c := range checks {
		ast, iss := env.Compile(c.Formula)
		if iss.Err() != nil {
			return nil, fmt.Errorf("compile %s: %w", c.Name, iss.Err())
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("compile %s: formula must be boolean, got %v", c.Name, ast.OutputType())
		}
		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("program %s: %w", c.Name, err)
		}
		v.programs = append(v.programs, program{check: c, prg: prg})
	}
	return v, nil
}

// Validate runs the checks in order and stops at the first failure.
func (v *Validator) Validate(values map[string]any) error {
	for _, p := range v.programs {
		out, _, err := p.prg.Eval(values)
		if err != nil {
			return fmt.Errorf("eval %s: %w", p.check.Name, err)
		}
		if ok, _ := out.Value().(bool); !ok {
			return &Violation{Check: p.check.Name, Msg: p.check.Error}
		}
	}
	return nil
}
