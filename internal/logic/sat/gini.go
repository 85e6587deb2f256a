package sat

import (
	"fmt"

	"github.com/go-air/gini"
	ginilogic "github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// circuit maps a propositional formula onto a gini circuit, allocating one
// input literal per variable name.
type circuit struct {
	c    *ginilogic.C
	vars map[string]z.Lit
}

func newCircuit() *circuit {
	return &circuit{c: ginilogic.NewC(), vars: map[string]z.Lit{}}
}

func (k *circuit) lit(f logic.Formula) (z.Lit, error) {
	switch n := f.(type) {
	case logic.Var:
		if m, ok := k.vars[n.Name]; ok {
			return m, nil
		}
		m := k.c.Lit()
		k.vars[n.Name] = m
		return m, nil
	case logic.Not:
		m, err := k.lit(n.Child)
		if err != nil {
			return z.LitNull, err
		}
		return m.Not(), nil
	case logic.And:
		l, r, err := k.pair(n.Left, n.Right)
		if err != nil {
			return z.LitNull, err
		}
		return k.c.And(l, r), nil
	case logic.Or:
		l, r, err := k.pair(n.Left, n.Right)
		if err != nil {
			return z.LitNull, err
		}
		return k.c.Or(l, r), nil
	case logic.Implies:
		l, r, err := k.pair(n.Left, n.Right)
		if err != nil {
			return z.LitNull, err
		}
		return k.c.Or(l.Not(), r), nil
	case nil:
		return z.LitNull, fmt.Errorf("formula is nil")
	default:
		return z.LitNull, &logic.EvaluationError{Kind: logic.NotPropositional, Name: f.String()}
	}
}

func (k *circuit) pair(l, r logic.Formula) (z.Lit, z.Lit, error) {
	lm, err := k.lit(l)
	if err != nil {
		return z.LitNull, z.LitNull, err
	}
	rm, err := k.lit(r)
	if err != nil {
		return z.LitNull, z.LitNull, err
	}
	return lm, rm, nil
}

// solve assumes every root literal and reports a model over vars when the
// conjunction is satisfiable.
func (k *circuit) solve(roots []z.Lit, vars []string) (logic.Assignment, bool) {
	g := gini.New()
	k.c.ToCnf(g)
	g.Assume(roots...)
	if g.Solve() != 1 {
		return nil, false
	}
	out := make(logic.Assignment, len(vars))
	for _, v := range vars {
		out[v] = g.Value(k.vars[v])
	}
	return out, true
}

// Gini answers the same questions as Solver on the gini incremental
// solver. Entailment is a single solve under assumptions rather than a
// translated refutation formula.
type Gini struct{}

func (Gini) Satisfiable(f logic.Formula) (logic.Assignment, bool, error) {
	k := newCircuit()
	root, err := k.lit(f)
	if err != nil {
		return nil, false, err
	}
	model, ok := k.solve([]z.Lit{root}, logic.Variables(f))
	return model, ok, nil
}

func (Gini) Entails(premises []logic.Formula, conclusion logic.Formula) (logic.Verdict, error) {
	k := newCircuit()
	roots := make([]z.Lit, 0, len(premises)+1)
	for _, p := range premises {
		m, err := k.lit(p)
		if err != nil {
			return logic.Verdict{}, err
		}
		roots = append(roots, m)
	}
	c, err := k.lit(conclusion)
	if err != nil {
		return logic.Verdict{}, err
	}
	roots = append(roots, c.Not())

	vars := logic.Variables(append(append([]logic.Formula{}, premises...), conclusion)...)
	if model, sat := k.solve(roots, vars); sat {
		return logic.Verdict{Entailed: false, Counterexample: model}, nil
	}
	return logic.Verdict{Entailed: true}, nil
}
