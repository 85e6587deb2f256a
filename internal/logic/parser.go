package logic

// Parse builds a Formula from text.
//
// Grammar, loosest binding first:
//
//	implies := or ( "→" implies )?
//	or      := and ( "∨" and )*
//	and     := unary ( "∧" unary )*
//	unary   := "¬" unary | ("∀"|"∃") ident unary | primary
//	primary := ident "(" ident ")" | ident | "(" implies ")"
//
// Whitespace is insignificant and removed before tokenizing.
func Parse(text string) (Formula, error) {
	tokens, err := tokenize(stripSpace(text))
	if err != nil {
		return nil, err
	}
	if tokens[0].kind == tokEOF {
		return nil, &ParseError{Kind: EmptyExpression, Pos: 0}
	}
	if err := checkBalance(tokens); err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return nil, &ParseError{Kind: MissingOperator, Pos: t.pos}
	}
	return f, nil
}

// checkBalance reports the first ")" without an opener, or else the
// outermost "(" left open.
func checkBalance(tokens []token) error {
	var open []int
	for _, t := range tokens {
		switch t.kind {
		case tokLParen:
			open = append(open, t.pos)
		case tokRParen:
			if len(open) == 0 {
				return &ParseError{Kind: UnbalancedParentheses, Pos: t.pos}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return &ParseError{Kind: UnbalancedParentheses, Pos: open[0]}
	}
	return nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(text string) Formula {
	f, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return f
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseImplies() (Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokImplies {
		return left, nil
	}
	p.next()

	// right-associative: A→B→C is A→(B→C)
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return Implies{Left: left, Right: right}, nil
}

func (p *parser) parseOr() (Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Formula, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Formula, error) {
	t := p.peek()
	switch t.kind {
	case tokNot:
		p.next()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{Child: child}, nil

	case tokForAll, tokExists:
		p.next()
		v := p.peek()
		if v.kind != tokIdent {
			return nil, &ParseError{Kind: DanglingQuantifier, Pos: t.pos}
		}
		p.next()
		if k := p.peek().kind; k == tokEOF || k == tokRParen || isBinary(k) {
			return nil, &ParseError{Kind: DanglingQuantifier, Pos: t.pos}
		}
		body, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if t.kind == tokForAll {
			return ForAll{Variable: v.text, Body: body}, nil
		}
		return Exists{Variable: v.text, Body: body}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Formula, error) {
	t := p.peek()
	switch t.kind {
	case tokIdent:
		p.next()
		if p.peek().kind == tokLParen && p.peekAt(1).kind == tokIdent && p.peekAt(2).kind == tokRParen {
			p.next()
			term := p.next()
			p.next()
			return Predicate{Name: t.text, Term: term.text}, nil
		}
		return Var{Name: t.text}, nil

	case tokLParen:
		p.next()
		if p.peek().kind == tokRParen {
			return nil, &ParseError{Kind: EmptyExpression, Pos: t.pos}
		}
		inner, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, &ParseError{Kind: MissingOperator, Pos: p.peek().pos}
		}
		p.next()
		return inner, nil

	default:
		// ")", EOF or a binary operator where an operand was expected.
		return nil, &ParseError{Kind: MissingOperand, Pos: t.pos}
	}
}
