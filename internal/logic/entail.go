package logic

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Verdict is the outcome of one entailment algorithm. Counterexample is
// set only when Entailed is false.
type Verdict struct {
	Entailed       bool       `json:"entailed"`
	Counterexample Assignment `json:"counterexample,omitempty"`
	RowsChecked    int        `json:"rows_checked"`
}

// Entails reports whether premises ⊨ conclusion. It runs both the direct
// and the refutation algorithm and fails with ErrAlgorithmsDisagree if
// their verdicts differ.
func Entails(premises []Formula, conclusion Formula, opts ...TableOption) (bool, error) {
	direct, _, err := EntailsBoth(premises, conclusion, opts...)
	if err != nil {
		return false, err
	}
	return direct.Entailed, nil
}

// EntailsBoth runs the direct and the refutation algorithm and returns
// both verdicts. Verdicts that differ are reported as
// ErrAlgorithmsDisagree.
func EntailsBoth(premises []Formula, conclusion Formula, opts ...TableOption) (direct, refutation Verdict, err error) {
	direct, err = EntailsDirect(premises, conclusion, opts...)
	if err != nil {
		return Verdict{}, Verdict{}, err
	}
	refutation, err = EntailsRefutation(premises, conclusion, opts...)
	if err != nil {
		return Verdict{}, Verdict{}, err
	}
	if direct.Entailed != refutation.Entailed {
		return Verdict{}, Verdict{}, fmt.Errorf("%w: direct=%t refutation=%t", ErrAlgorithmsDisagree, direct.Entailed, refutation.Entailed)
	}
	return direct, refutation, nil
}

// EntailsDirect scans the joint truth table of premises and conclusion and
// stops at the first row where every premise holds and the conclusion
// does not.
func EntailsDirect(premises []Formula, conclusion Formula, opts ...TableOption) (Verdict, error) {
	vars, _, err := prepareEntailment(premises, conclusion, opts)
	if err != nil {
		return Verdict{}, err
	}

	checked := 0
	for a := range AllAssignments(vars) {
		checked++
		held, err := allHold(premises, a)
		if err != nil {
			return Verdict{}, err
		}
		if !held {
			continue
		}
		c, err := Evaluate(conclusion, a)
		if err != nil {
			return Verdict{}, err
		}
		if !c {
			return Verdict{Entailed: false, Counterexample: a, RowsChecked: checked}, nil
		}
	}
	return Verdict{Entailed: true, RowsChecked: checked}, nil
}

// EntailsRefutation decides entailment by searching for a model of
// premises ∧ ¬conclusion. Any such model is a counterexample.
func EntailsRefutation(premises []Formula, conclusion Formula, opts ...TableOption) (Verdict, error) {
	vars, cfg, err := prepareEntailment(premises, conclusion, opts)
	if err != nil {
		return Verdict{}, err
	}

	refutation := Conjoin(append(append([]Formula{}, premises...), Not{Child: conclusion})...)
	model, checked, err := scanModel(vars, refutation, cfg)
	switch {
	case errors.Is(err, ErrNotSatisfiable):
		return Verdict{Entailed: true, RowsChecked: checked}, nil
	case err != nil:
		return Verdict{}, err
	}
	return Verdict{Entailed: false, Counterexample: model, RowsChecked: checked}, nil
}

func prepareEntailment(premises []Formula, conclusion Formula, opts []TableOption) ([]string, tableConfig, error) {
	cfg := newTableConfig(opts)
	if err := requirePropositional(append(append([]Formula{}, premises...), conclusion)...); err != nil {
		return nil, cfg, err
	}
	vars := Variables(append(append([]Formula{}, premises...), conclusion)...)
	if err := cfg.checkSize(vars); err != nil {
		return nil, cfg, err
	}
	return vars, cfg, nil
}

func allHold(premises []Formula, a Assignment) (bool, error) {
	var evalErr error
	held := lo.EveryBy(premises, func(p Formula) bool {
		if evalErr != nil {
			return false
		}
		ok, err := Evaluate(p, a)
		if err != nil {
			evalErr = err
			return false
		}
		return ok
	})
	return held, evalErr
}
