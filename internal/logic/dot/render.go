package dot

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

const graphName = "Formula"

// Render draws the syntax tree of f as a DOT digraph. Each node carries a
// human label and a machine-readable comment ("and", "var:A",
// "pred:P:x", "forall:x", ...); binary edges are labelled L and R. Parse
// reads the same shape back.
func Render(f logic.Formula) (string, error) {
	if f == nil {
		return "", fmt.Errorf("formula is nil")
	}

	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	r := &renderer{g: g}
	if _, err := r.node(f); err != nil {
		return "", fmt.Errorf("failed to render DOT: %w", err)
	}
	return g.String(), nil
}

type renderer struct {
	g    *gographviz.Graph
	next int
}

func (r *renderer) node(f logic.Formula) (string, error) {
	id := fmt.Sprintf("n%d", r.next)
	r.next++

	label, comment := describe(f)
	attrs := map[string]string{
		"label":   strconv.Quote(label),
		"comment": strconv.Quote(comment),
	}
	if err := r.g.AddNode(graphName, id, attrs); err != nil {
		return "", err
	}

	switch n := f.(type) {
	case logic.Not:
		return id, r.edge(id, n.Child, "")
	case logic.ForAll:
		return id, r.edge(id, n.Body, "")
	case logic.Exists:
		return id, r.edge(id, n.Body, "")
	case logic.And:
		return id, r.pair(id, n.Left, n.Right)
	case logic.Or:
		return id, r.pair(id, n.Left, n.Right)
	case logic.Implies:
		return id, r.pair(id, n.Left, n.Right)
	}
	return id, nil
}

func (r *renderer) pair(id string, l, rt logic.Formula) error {
	if err := r.edge(id, l, "L"); err != nil {
		return err
	}
	return r.edge(id, rt, "R")
}

func (r *renderer) edge(from string, child logic.Formula, side string) error {
	to, err := r.node(child)
	if err != nil {
		return err
	}
	var attrs map[string]string
	if side != "" {
		attrs = map[string]string{"label": strconv.Quote(side)}
	}
	return r.g.AddEdge(from, to, true, attrs)
}

func describe(f logic.Formula) (label, comment string) {
	switch n := f.(type) {
	case logic.Var:
		return n.Name, "var:" + n.Name
	case logic.Not:
		return "¬", "not"
	case logic.And:
		return "∧", "and"
	case logic.Or:
		return "∨", "or"
	case logic.Implies:
		return "→", "implies"
	case logic.Predicate:
		return n.String(), "pred:" + n.Name + ":" + n.Term
	case logic.ForAll:
		return "∀" + n.Variable, "forall:" + n.Variable
	case logic.Exists:
		return "∃" + n.Variable, "exists:" + n.Variable
	default:
		panic(fmt.Sprintf("dot: unknown formula node %T", f))
	}
}
