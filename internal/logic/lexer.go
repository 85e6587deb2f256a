package logic

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNot
	tokAnd
	tokOr
	tokImplies
	tokForAll
	tokExists
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// symbols is the fixed operator table of the grammar.
var symbols = map[rune]tokenKind{
	'¬': tokNot,
	'∧': tokAnd,
	'∨': tokOr,
	'→': tokImplies,
	'∀': tokForAll,
	'∃': tokExists,
	'(': tokLParen,
	')': tokRParen,
}

func isBinary(k tokenKind) bool {
	return k == tokAnd || k == tokOr || k == tokImplies
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// tokenize splits whitespace-free input into tokens. An identifier is a
// single letter optionally followed by ASCII digits, which keeps "∀xP(x)"
// unambiguous once spaces are gone.
func tokenize(src string) ([]token, error) {
	runes := []rune(src)
	out := make([]token, 0, len(runes)+1)

	for i := 0; i < len(runes); {
		r := runes[i]
		if k, ok := symbols[r]; ok {
			out = append(out, token{kind: k, text: string(r), pos: i})
			i++
			continue
		}
		if unicode.IsLetter(r) {
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			out = append(out, token{kind: tokIdent, text: string(runes[i:j]), pos: i})
			i = j
			continue
		}
		return nil, &ParseError{Kind: UnknownToken, Pos: i, Token: r}
	}

	out = append(out, token{kind: tokEOF, pos: len(runes)})
	return out, nil
}
