package logic

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Row is one line of a truth table.
type Row struct {
	Assignment Assignment `json:"assignment"`
	Result     bool       `json:"result"`
}

// TruthTable evaluates f under every assignment of its variables, in
// canonical order. The result always has 2^n rows.
func TruthTable(f Formula, opts ...TableOption) ([]Row, error) {
	if err := requirePropositional(f); err != nil {
		return nil, err
	}
	cfg := newTableConfig(opts)
	vars := Variables(f)
	if err := cfg.checkSize(vars); err != nil {
		return nil, err
	}

	ev := cfg.evaluator
	if ev == nil {
		ev = treeEvaluator{f: f}
	}

	rows := make([]Row, 0, 1<<len(vars))
	for a := range AllAssignments(vars) {
		rows = append(rows, Row{Assignment: a})
	}

	if cfg.parallelism <= 1 || len(rows) < 2 {
		for i := range rows {
			v, err := ev.EvalRow(rows[i].Assignment)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			rows[i].Result = v
		}
		return rows, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for i := range rows {
		g.Go(func() error {
			v, err := ev.EvalRow(rows[i].Assignment)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			rows[i].Result = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
