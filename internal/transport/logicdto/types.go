package logicdto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/awmpietro/golang-logic-inference/internal/app"
	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// AssignmentInput accepts either a JSON object of booleans or the text
// form "A=true,B=false".
type AssignmentInput logic.Assignment

func (a *AssignmentInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		parsed, err := logic.ParseAssignment(raw)
		if err != nil {
			return fmt.Errorf("assignment: %w", err)
		}
		*a = AssignmentInput(parsed)
		return nil
	}
	var m map[string]bool
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("assignment: %w", err)
	}
	*a = AssignmentInput(m)
	return nil
}

type EvaluateRequest struct {
	Formula    string               `json:"formula"`
	Assignment AssignmentInput      `json:"assignment"`
	FirstOrder *app.FirstOrderInput `json:"first_order,omitempty"`
}

type EvaluateResponse struct {
	Formula string `json:"formula"`
	Value   bool   `json:"value"`
}

type FormulaRequest struct {
	Formula string `json:"formula"`
}

type EntailRequest struct {
	Premises   []string `json:"premises"`
	Conclusion string   `json:"conclusion"`
}

type GraphResponse struct {
	Formula string `json:"formula"`
	DOT     string `json:"dot"`
}
