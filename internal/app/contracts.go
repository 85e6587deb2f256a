package app

import "github.com/awmpietro/golang-logic-inference/internal/logic"

type LogicService interface {
	Evaluate(formula string, assignment logic.Assignment) (bool, error)
	EvaluateFirstOrder(formula string, in FirstOrderInput) (bool, error)
	TruthTable(formula string) (*TruthTableResult, error)
	FindModel(formula string) (*ModelResult, error)
	Entails(premises []string, conclusion string) (*EntailmentReport, error)
	Graph(formula string) (string, error)
}
