package logic

import "fmt"

// Formula is a node of a parsed logic expression. The set of node kinds is
// closed: only the types declared in this file implement it.
type Formula interface {
	fmt.Stringer
	isFormula()
}

// Var is a propositional variable.
type Var struct {
	Name string
}

// Not is logical negation.
type Not struct {
	Child Formula
}

// And is conjunction.
type And struct {
	Left, Right Formula
}

// Or is disjunction.
type Or struct {
	Left, Right Formula
}

// Implies is material implication.
type Implies struct {
	Left, Right Formula
}

// Predicate applies a named predicate to a single term, e.g. P(x).
type Predicate struct {
	Name string
	Term string
}

// ForAll is universal quantification of Variable over Body.
type ForAll struct {
	Variable string
	Body     Formula
}

// Exists is existential quantification of Variable over Body.
type Exists struct {
	Variable string
	Body     Formula
}

func (Var) isFormula()       {}
func (Not) isFormula()       {}
func (And) isFormula()       {}
func (Or) isFormula()        {}
func (Implies) isFormula()   {}
func (Predicate) isFormula() {}
func (ForAll) isFormula()    {}
func (Exists) isFormula()    {}

// String renders binary nodes fully parenthesized, so the output always
// parses back into the same tree.
func (v Var) String() string       { return v.Name }
func (n Not) String() string       { return "¬" + n.Child.String() }
func (a And) String() string       { return fmt.Sprintf("(%s ∧ %s)", a.Left, a.Right) }
func (o Or) String() string        { return fmt.Sprintf("(%s ∨ %s)", o.Left, o.Right) }
func (i Implies) String() string   { return fmt.Sprintf("(%s → %s)", i.Left, i.Right) }
func (p Predicate) String() string { return fmt.Sprintf("%s(%s)", p.Name, p.Term) }
func (q ForAll) String() string    { return fmt.Sprintf("∀%s %s", q.Variable, q.Body) }
func (q Exists) String() string    { return fmt.Sprintf("∃%s %s", q.Variable, q.Body) }

// IsPropositional reports whether f contains no predicates or quantifiers.
func IsPropositional(f Formula) bool {
	switch n := f.(type) {
	case Var:
		return true
	case Not:
		return IsPropositional(n.Child)
	case And:
		return IsPropositional(n.Left) && IsPropositional(n.Right)
	case Or:
		return IsPropositional(n.Left) && IsPropositional(n.Right)
	case Implies:
		return IsPropositional(n.Left) && IsPropositional(n.Right)
	case Predicate, ForAll, Exists:
		return false
	default:
		panic(fmt.Sprintf("logic: unknown formula node %T", f))
	}
}

// Conjoin folds fs into a left-nested conjunction. It returns nil for an
// empty slice.
func Conjoin(fs ...Formula) Formula {
	if len(fs) == 0 {
		return nil
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out = And{Left: out, Right: f}
	}
	return out
}
