// Package sat answers satisfiability and entailment questions with the
// gophersat CDCL solver instead of exhaustive enumeration. Answers agree
// with the logic package on every propositional input, but models are
// whatever the solver finds first, not the canonical-order first model.
package sat

import (
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// Translate converts a propositional formula into a gophersat formula.
func Translate(f logic.Formula) (bf.Formula, error) {
	switch n := f.(type) {
	case logic.Var:
		return bf.Var(n.Name), nil
	case logic.Not:
		c, err := Translate(n.Child)
		if err != nil {
			return nil, err
		}
		return bf.Not(c), nil
	case logic.And:
		l, r, err := translatePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return bf.And(l, r), nil
	case logic.Or:
		l, r, err := translatePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return bf.Or(l, r), nil
	case logic.Implies:
		l, r, err := translatePair(n.Left, n.Right)
		if err != nil {
			return nil, err
		}
		return bf.Implies(l, r), nil
	case nil:
		return nil, fmt.Errorf("formula is nil")
	default:
		return nil, &logic.EvaluationError{Kind: logic.NotPropositional, Name: f.String()}
	}
}

func translatePair(l, r logic.Formula) (bf.Formula, bf.Formula, error) {
	lf, err := Translate(l)
	if err != nil {
		return nil, nil, err
	}
	rf, err := Translate(r)
	if err != nil {
		return nil, nil, err
	}
	return lf, rf, nil
}

// Satisfiable returns a model of f, or ok=false when f has none.
func Satisfiable(f logic.Formula) (model logic.Assignment, ok bool, err error) {
	t, err := Translate(f)
	if err != nil {
		return nil, false, err
	}
	m := bf.Solve(t)
	if m == nil {
		return nil, false, nil
	}
	return restrict(m, logic.Variables(f)), true, nil
}

// Entails decides premises ⊨ conclusion by refutation: the premises
// together with ¬conclusion must be unsatisfiable.
func Entails(premises []logic.Formula, conclusion logic.Formula) (logic.Verdict, error) {
	all := append(append([]logic.Formula{}, premises...), logic.Not{Child: conclusion})
	model, sat, err := Satisfiable(logic.Conjoin(all...))
	if err != nil {
		return logic.Verdict{}, err
	}
	if sat {
		return logic.Verdict{Entailed: false, Counterexample: model}, nil
	}
	return logic.Verdict{Entailed: true}, nil
}

// restrict keeps exactly the formula's own variables. The solver may
// leave a variable out of its model when it is irrelevant; such variables
// are reported as false.
func restrict(m map[string]bool, vars []string) logic.Assignment {
	out := make(logic.Assignment, len(vars))
	for _, v := range vars {
		out[v] = m[v]
	}
	return out
}

// Solver exposes the package functions as a value, for callers that
// depend on an oracle interface.
type Solver struct{}

func (Solver) Satisfiable(f logic.Formula) (logic.Assignment, bool, error) {
	return Satisfiable(f)
}

func (Solver) Entails(premises []logic.Formula, conclusion logic.Formula) (logic.Verdict, error) {
	return Entails(premises, conclusion)
}

// New returns the oracle registered under name.
func New(name string) (Oracle, error) {
	switch name {
	case "", "gophersat":
		return Solver{}, nil
	case "gini":
		return Gini{}, nil
	default:
		return nil, fmt.Errorf("unknown SAT solver %q", name)
	}
}

// Oracle is implemented by every solver backend.
type Oracle interface {
	Satisfiable(f logic.Formula) (logic.Assignment, bool, error)
	Entails(premises []logic.Formula, conclusion logic.Formula) (logic.Verdict, error)
}
