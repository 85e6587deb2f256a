package app

import "github.com/awmpietro/golang-logic-inference/internal/logic"

const (
	MethodExhaustive = "exhaustive"
	MethodSAT        = "sat"
)

type TruthTableResult struct {
	Formula   string      `json:"formula"`
	Variables []string    `json:"variables"`
	Rows      []logic.Row `json:"rows"`
}

type ModelResult struct {
	Formula     string           `json:"formula"`
	Satisfiable bool             `json:"satisfiable"`
	Model       logic.Assignment `json:"model,omitempty"`
	Method      string           `json:"method"`
}

// EntailmentReport carries the verdict of every algorithm that ran.
// Direct and Refutation are absent when the variable count forced the SAT
// fallback; SAT is absent when no oracle is configured.
type EntailmentReport struct {
	Premises       []string         `json:"premises"`
	Conclusion     string           `json:"conclusion"`
	Variables      []string         `json:"variables"`
	Entailed       bool             `json:"entailed"`
	Method         string           `json:"method"`
	Counterexample logic.Assignment `json:"counterexample,omitempty"`
	Direct         *logic.Verdict   `json:"direct,omitempty"`
	Refutation     *logic.Verdict   `json:"refutation,omitempty"`
	SAT            *logic.Verdict   `json:"sat,omitempty"`
}

// FirstOrderInput is the data form of an interpretation: predicates are
// given by their extensions over the domain.
type FirstOrderInput struct {
	Domain     []any            `json:"domain"`
	Predicates map[string][]any `json:"predicates"`
	Props      logic.Assignment `json:"props,omitempty"`
	Bindings   map[string]any   `json:"bindings,omitempty"`
}
