package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// Compiled is a propositional formula translated into an expr program.
// Variables are renamed to slots v0..vn so any identifier the grammar
// accepts is a valid expr identifier.
type Compiled struct {
	Source  string
	vars    []string
	program *vm.Program
}

func Compile(f logic.Formula) (*Compiled, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	vars := logic.Variables(f)
	slots := make(map[string]string, len(vars))
	env := make(map[string]any, len(vars))
	for i, name := range vars {
		slot := fmt.Sprintf("v%d", i)
		slots[name] = slot
		env[slot] = false
	}

	var b strings.Builder
	writeExpr(&b, f, slots)
	src := b.String()

	program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", f, err)
	}

	return &Compiled{Source: src, vars: vars, program: program}, nil
}

// EvalRow satisfies logic.RowEvaluator. It is safe for concurrent use.
func (c *Compiled) EvalRow(a logic.Assignment) (bool, error) {
	env := make(map[string]any, len(c.vars))
	for i, name := range c.vars {
		v, ok := a[name]
		if !ok {
			return false, &logic.EvaluationError{Kind: logic.UnboundVariable, Name: name}
		}
		env[fmt.Sprintf("v%d", i)] = v
	}

	out, err := expr.Run(c.program, env)
	if err != nil {
		return false, err
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("formula must evaluate to bool (got %T)", out)
	}
	return b, nil
}

// Eval compiles f and evaluates it once.
func Eval(f logic.Formula, a logic.Assignment) (bool, error) {
	c, err := Compile(f)
	if err != nil {
		return false, err
	}
	return c.EvalRow(a)
}

func writeExpr(b *strings.Builder, f logic.Formula, slots map[string]string) {
	switch n := f.(type) {
	case logic.Var:
		b.WriteString(slots[n.Name])
	case logic.Not:
		b.WriteString("!(")
		writeExpr(b, n.Child, slots)
		b.WriteString(")")
	case logic.And:
		writeBinary(b, n.Left, " && ", n.Right, slots)
	case logic.Or:
		writeBinary(b, n.Left, " || ", n.Right, slots)
	case logic.Implies:
		b.WriteString("(!(")
		writeExpr(b, n.Left, slots)
		b.WriteString(") || ")
		writeExpr(b, n.Right, slots)
		b.WriteString(")")
	default:
		// Validate has already rejected first-order nodes.
		panic(fmt.Sprintf("eval: unsupported node %T", f))
	}
}

func writeBinary(b *strings.Builder, l logic.Formula, op string, r logic.Formula, slots map[string]string) {
	b.WriteString("(")
	writeExpr(b, l, slots)
	b.WriteString(op)
	writeExpr(b, r, slots)
	b.WriteString(")")
}
