package logic

import (
	"fmt"
	"maps"
)

// Assignment maps propositional variable names to truth values.
type Assignment map[string]bool

// Domain is the ordered universe of discourse for quantifiers.
type Domain []any

// Predicates maps a predicate name to its meaning over domain elements.
type Predicates map[string]func(any) bool

// Bindings maps a bound variable to the domain element chosen by an
// enclosing quantifier.
type Bindings map[string]any

// Interpretation is the structure a first-order formula is evaluated in.
// Props gives values to bare propositional variables that appear next to
// predicates, e.g. the Q in "∀x P(x) → Q".
type Interpretation struct {
	Domain     Domain
	Predicates Predicates
	Props      Assignment
}

// Evaluate computes f under a. Every variable of f must be present in a.
func Evaluate(f Formula, a Assignment) (bool, error) {
	switch n := f.(type) {
	case Var:
		v, ok := a[n.Name]
		if !ok {
			return false, &EvaluationError{Kind: UnboundVariable, Name: n.Name}
		}
		return v, nil
	case Not:
		v, err := Evaluate(n.Child, a)
		if err != nil {
			return false, err
		}
		return !v, nil
	case And:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, a)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case Or:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, a)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case Implies:
		l, err := Evaluate(n.Left, a)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, a)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	case Predicate:
		return false, &EvaluationError{Kind: NotPropositional, Name: n.String()}
	case ForAll:
		return false, &EvaluationError{Kind: NotPropositional, Name: "∀" + n.Variable}
	case Exists:
		return false, &EvaluationError{Kind: NotPropositional, Name: "∃" + n.Variable}
	default:
		panic(fmt.Sprintf("logic: unknown formula node %T", f))
	}
}

// EvaluateFirstOrder computes f in the interpretation in, with b holding
// the values of free variables. b is never modified: each quantifier works
// on its own copy, so a binding cannot escape the quantifier's subtree and
// an inner quantifier over a re-used name shadows the outer one only
// within its body.
func EvaluateFirstOrder(f Formula, in Interpretation, b Bindings) (bool, error) {
	if len(in.Domain) == 0 {
		return false, &EvaluationError{Kind: EmptyDomain}
	}
	return evalFO(f, in, b)
}

func evalFO(f Formula, in Interpretation, b Bindings) (bool, error) {
	switch n := f.(type) {
	case Var:
		v, ok := in.Props[n.Name]
		if !ok {
			return false, &EvaluationError{Kind: UnboundVariable, Name: n.Name}
		}
		return v, nil
	case Predicate:
		fn, ok := in.Predicates[n.Name]
		if !ok || fn == nil {
			return false, &EvaluationError{Kind: UnknownPredicate, Name: n.Name}
		}
		elem, ok := b[n.Term]
		if !ok {
			return false, &EvaluationError{Kind: UnboundVariable, Name: n.Term}
		}
		return fn(elem), nil
	case Not:
		v, err := evalFO(n.Child, in, b)
		if err != nil {
			return false, err
		}
		return !v, nil
	case And:
		l, err := evalFO(n.Left, in, b)
		if err != nil {
			return false, err
		}
		r, err := evalFO(n.Right, in, b)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case Or:
		l, err := evalFO(n.Left, in, b)
		if err != nil {
			return false, err
		}
		r, err := evalFO(n.Right, in, b)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case Implies:
		l, err := evalFO(n.Left, in, b)
		if err != nil {
			return false, err
		}
		r, err := evalFO(n.Right, in, b)
		if err != nil {
			return false, err
		}
		return !l || r, nil
	case ForAll:
		return quantify(n.Variable, n.Body, in, b, false)
	case Exists:
		return quantify(n.Variable, n.Body, in, b, true)
	default:
		panic(fmt.Sprintf("logic: unknown formula node %T", f))
	}
}

// quantify iterates the domain in order and stops at the first element
// whose body value equals stopOn: false for ∀, true for ∃.
func quantify(v string, body Formula, in Interpretation, outer Bindings, stopOn bool) (bool, error) {
	scope := make(Bindings, len(outer)+1)
	maps.Copy(scope, outer)

	for _, elem := range in.Domain {
		scope[v] = elem
		ok, err := evalFO(body, in, scope)
		if err != nil {
			return false, err
		}
		if ok == stopOn {
			return stopOn, nil
		}
	}
	return !stopOn, nil
}
