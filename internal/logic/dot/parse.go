package dot

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

type child struct {
	to   string
	side string
}

// Parse rebuilds a formula from a DOT graph in the shape produced by
// Render.
func Parse(src string) (logic.Formula, error) {
	ast, err := gographviz.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DOT: %w", err)
	}

	g := gographviz.NewGraph()
	if err := gographviz.Analyse(ast, g); err != nil {
		return nil, fmt.Errorf("failed to analyze DOT: %w", err)
	}

	children := map[string][]child{}
	incoming := map[string]int{}
	for _, e := range g.Edges.Edges {
		if _, ok := g.Nodes.Lookup[e.Src]; !ok {
			return nil, fmt.Errorf("edge references unknown source node %q", e.Src)
		}
		if _, ok := g.Nodes.Lookup[e.Dst]; !ok {
			return nil, fmt.Errorf("edge references unknown destination node %q", e.Dst)
		}
		children[e.Src] = append(children[e.Src], child{to: e.Dst, side: getAttr(e.Attrs, "label")})
		incoming[e.Dst]++
	}

	root := ""
	for _, n := range g.Nodes.Nodes {
		if incoming[n.Name] > 1 {
			return nil, fmt.Errorf("node %q has %d parents; a formula is a tree", n.Name, incoming[n.Name])
		}
		if incoming[n.Name] == 0 {
			if root != "" {
				return nil, fmt.Errorf("multiple roots: %q and %q", root, n.Name)
			}
			root = n.Name
		}
	}
	if root == "" {
		return nil, fmt.Errorf("graph has no root node")
	}

	b := &builder{g: g, children: children, seen: map[string]bool{}}
	return b.build(root)
}

type builder struct {
	g        *gographviz.Graph
	children map[string][]child
	seen     map[string]bool
}

func (b *builder) build(id string) (logic.Formula, error) {
	if b.seen[id] {
		return nil, fmt.Errorf("cycle through node %q", id)
	}
	b.seen[id] = true

	comment := getAttr(b.g.Nodes.Lookup[id].Attrs, "comment")
	kind, rest, _ := strings.Cut(comment, ":")
	kids := b.children[id]

	switch kind {
	case "var":
		if rest == "" || len(kids) != 0 {
			return nil, fmt.Errorf("invalid variable node %q", id)
		}
		return logic.Var{Name: rest}, nil
	case "pred":
		name, term, ok := strings.Cut(rest, ":")
		if !ok || name == "" || term == "" || len(kids) != 0 {
			return nil, fmt.Errorf("invalid predicate node %q", id)
		}
		return logic.Predicate{Name: name, Term: term}, nil
	case "not", "forall", "exists":
		if len(kids) != 1 {
			return nil, fmt.Errorf("node %q (%s) needs exactly one child, has %d", id, kind, len(kids))
		}
		sub, err := b.build(kids[0].to)
		if err != nil {
			return nil, err
		}
		switch {
		case kind == "not":
			return logic.Not{Child: sub}, nil
		case rest == "":
			return nil, fmt.Errorf("quantifier node %q has no variable", id)
		case kind == "forall":
			return logic.ForAll{Variable: rest, Body: sub}, nil
		default:
			return logic.Exists{Variable: rest, Body: sub}, nil
		}
	case "and", "or", "implies":
		l, r, err := b.sides(id, kids)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "and":
			return logic.And{Left: l, Right: r}, nil
		case "or":
			return logic.Or{Left: l, Right: r}, nil
		default:
			return logic.Implies{Left: l, Right: r}, nil
		}
	default:
		return nil, fmt.Errorf("node %q has unknown kind %q", id, comment)
	}
}

func (b *builder) sides(id string, kids []child) (logic.Formula, logic.Formula, error) {
	if len(kids) != 2 {
		return nil, nil, fmt.Errorf("node %q needs two children, has %d", id, len(kids))
	}
	var left, right string
	for _, k := range kids {
		switch k.side {
		case "L":
			left = k.to
		case "R":
			right = k.to
		}
	}
	if left == "" || right == "" {
		return nil, nil, fmt.Errorf("node %q needs edges labelled L and R", id)
	}
	l, err := b.build(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := b.build(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// getAttr reads a Graphviz attribute without its surrounding quotes.
func getAttr(attrs gographviz.Attrs, key string) string {
	val, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return ""
	}

	val = strings.TrimSpace(val)
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	return val
}
