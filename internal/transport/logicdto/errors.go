package logicdto

import (
	"errors"
	"net/http"

	"github.com/awmpietro/golang-logic-inference/internal/logic"
)

// Status maps a service error onto an HTTP status code.
func Status(err error) int {
	var parseErr *logic.ParseError
	var evalErr *logic.EvaluationError
	switch {
	case errors.As(err, &parseErr), errors.As(err, &evalErr):
		return http.StatusBadRequest
	case errors.Is(err, logic.ErrTooManyVariables):
		return http.StatusUnprocessableEntity
	case errors.Is(err, logic.ErrAlgorithmsDisagree):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func ErrorBody(msg string, err error) map[string]any {
	body := map[string]any{
		"error":   msg,
		"details": err.Error(),
	}
	var parseErr *logic.ParseError
	var evalErr *logic.EvaluationError
	switch {
	case errors.As(err, &parseErr):
		body["kind"] = parseErr.Kind.String()
		body["offset"] = parseErr.Pos
	case errors.As(err, &evalErr):
		body["kind"] = evalErr.Kind.String()
		body["name"] = evalErr.Name
	}
	return body
}
