package logic

import (
	"errors"
	"fmt"
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	UnbalancedParentheses ParseErrorKind = iota + 1
	UnknownToken
	MissingOperand
	MissingOperator
	EmptyExpression
	DanglingQuantifier
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case UnknownToken:
		return "unknown token"
	case MissingOperand:
		return "missing operand"
	case MissingOperator:
		return "missing operator"
	case EmptyExpression:
		return "empty expression"
	case DanglingQuantifier:
		return "dangling quantifier"
	default:
		return fmt.Sprintf("parse error kind %d", int(k))
	}
}

// Error lets a kind be used as an errors.Is target:
//
//	errors.Is(err, logic.MissingOperand)
func (k ParseErrorKind) Error() string { return k.String() }

// ParseError reports malformed input. Pos is the rune offset, after
// whitespace removal, at which the problem was detected.
type ParseError struct {
	Kind  ParseErrorKind
	Pos   int
	Token rune
}

func (e *ParseError) Error() string {
	if e.Kind == UnknownToken {
		return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Token, e.Pos)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
}

func (e *ParseError) Is(target error) bool {
	k, ok := target.(ParseErrorKind)
	return ok && k == e.Kind
}

// EvaluationErrorKind classifies an EvaluationError.
type EvaluationErrorKind int

const (
	UnboundVariable EvaluationErrorKind = iota + 1
	UnknownPredicate
	NotPropositional
	EmptyDomain
)

func (k EvaluationErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "unbound variable"
	case UnknownPredicate:
		return "unknown predicate"
	case NotPropositional:
		return "not a propositional formula"
	case EmptyDomain:
		return "empty domain"
	default:
		return fmt.Sprintf("evaluation error kind %d", int(k))
	}
}

func (k EvaluationErrorKind) Error() string { return k.String() }

// EvaluationError reports a formula that cannot be evaluated under the
// supplied assignment or interpretation.
type EvaluationError struct {
	Kind EvaluationErrorKind
	Name string
}

func (e *EvaluationError) Error() string {
	if e.Name == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Name)
}

func (e *EvaluationError) Is(target error) bool {
	k, ok := target.(EvaluationErrorKind)
	return ok && k == e.Kind
}

var (
	// ErrNotSatisfiable is returned by FindModel when no assignment
	// satisfies the formula. It is a result, not a failure.
	ErrNotSatisfiable = errors.New("formula is not satisfiable")

	// ErrTooManyVariables guards the O(2^n) enumeration.
	ErrTooManyVariables = errors.New("too many variables for exhaustive enumeration")

	// ErrAlgorithmsDisagree means the direct and refutation entailment
	// checks returned different verdicts.
	ErrAlgorithmsDisagree = errors.New("entailment algorithms disagree")
)
