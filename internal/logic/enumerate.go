package logic

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// DefaultMaxVariables caps exhaustive enumeration. Every enumeration
// visits 2^n assignments, so 20 variables is already about a million rows.
const DefaultMaxVariables = 20

// Variables returns the sorted, de-duplicated propositional variable names
// of fs. Predicate terms and bound variables are not included.
func Variables(fs ...Formula) []string {
	var names []string
	for _, f := range fs {
		names = collectVars(f, names)
	}
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

func collectVars(f Formula, acc []string) []string {
	switch n := f.(type) {
	case Var:
		return append(acc, n.Name)
	case Not:
		return collectVars(n.Child, acc)
	case And:
		return collectVars(n.Right, collectVars(n.Left, acc))
	case Or:
		return collectVars(n.Right, collectVars(n.Left, acc))
	case Implies:
		return collectVars(n.Right, collectVars(n.Left, acc))
	case ForAll:
		return collectVars(n.Body, acc)
	case Exists:
		return collectVars(n.Body, acc)
	case Predicate:
		return acc
	default:
		panic(fmt.Sprintf("logic: unknown formula node %T", f))
	}
}

// AllAssignments yields the 2^n assignments of vars in canonical order:
// the first row is all-true, the last all-false, and the last variable
// changes fastest. Row i gives vars[k] the value true iff bit (n-1-k) of i
// is zero. vars is expected to be sorted and distinct already.
//
// Each yielded Assignment is a fresh map the caller may keep. The sequence
// can be ranged over any number of times.
func AllAssignments(vars []string) iter.Seq[Assignment] {
	vars = slices.Clone(vars)
	n := len(vars)
	return func(yield func(Assignment) bool) {
		total := uint64(1) << n
		for i := uint64(0); i < total; i++ {
			if !yield(assignmentAt(vars, i)) {
				return
			}
		}
	}
}

func assignmentAt(vars []string, row uint64) Assignment {
	n := len(vars)
	a := make(Assignment, n)
	for k, name := range vars {
		a[name] = row&(uint64(1)<<(n-1-k)) == 0
	}
	return a
}

// TableOption configures the exhaustive builders.
type TableOption func(*tableConfig)

// RowEvaluator computes a formula for one assignment. The tree walker
// Evaluate is the default; a compiled evaluator can be plugged in.
type RowEvaluator interface {
	EvalRow(a Assignment) (bool, error)
}

type tableConfig struct {
	maxVars     int
	parallelism int
	evaluator   RowEvaluator
}

// WithMaxVariables raises (or lowers) the enumeration cap. n <= 0 disables it.
func WithMaxVariables(n int) TableOption {
	return func(c *tableConfig) { c.maxVars = n }
}

// WithParallelism evaluates truth table rows on up to n goroutines. Row
// order in the result is unaffected.
func WithParallelism(n int) TableOption {
	return func(c *tableConfig) { c.parallelism = n }
}

// WithEvaluator replaces the tree walker for truth table rows.
func WithEvaluator(e RowEvaluator) TableOption {
	return func(c *tableConfig) { c.evaluator = e }
}

func newTableConfig(opts []TableOption) tableConfig {
	c := tableConfig{maxVars: DefaultMaxVariables, parallelism: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c tableConfig) checkSize(vars []string) error {
	if n := c.limit(); len(vars) > n {
		return fmt.Errorf("%w: %d variables (limit %d)", ErrTooManyVariables, len(vars), n)
	}
	return nil
}

// limit is the effective variable cap. 63 is a hard limit: the row
// counter is a uint64.
func (c tableConfig) limit() int {
	if c.maxVars <= 0 || c.maxVars > 63 {
		return 63
	}
	return c.maxVars
}

type treeEvaluator struct {
	f Formula
}

func (t treeEvaluator) EvalRow(a Assignment) (bool, error) { return Evaluate(t.f, a) }

func requirePropositional(fs ...Formula) error {
	for _, f := range fs {
		if f == nil {
			return fmt.Errorf("formula is nil")
		}
		if !IsPropositional(f) {
			return &EvaluationError{Kind: NotPropositional, Name: f.String()}
		}
	}
	return nil
}
