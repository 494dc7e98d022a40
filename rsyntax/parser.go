// Package rsyntax parses a syntactic regex string into a rast.Expr. The
// core regex compiler and VM depend only on its output, an Expr, never on
// the syntax itself.
//
// Supported syntax: literal characters, '.', '(', ')', '|', '*', '+', '?',
// and the escapes \\ \. \( \) \[ \] \{ \} \* \+ \? \^ \$ \| \n \r \t \s \S
// \d \D \w \W. Adjacent literal characters within a concatenation are
// coalesced into a single Text node.
package rsyntax

import "github.com/coregx/corelex/rast"

// Parse compiles pattern into a rast.Expr, or returns a *ParseError
// describing the first syntax error encountered.
func Parse(pattern string) (*rast.Expr, error) {
	p := &parser{runes: []rune(pattern)}
	expr, err := p.parseAlternate()
	if err != nil {
		return nil, err
	}
	return expr, nil
}

type parser struct {
	runes []rune
	pos   int
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *parser) next() (rune, bool) {
	r, ok := p.peek()
	if ok {
		p.pos++
	}
	return r, ok
}

// parseAlternate parses a '|'-separated sequence of concatenations,
// left-associative: "a|b|c" = Alternate(Alternate(a,b), c).
func (p *parser) parseAlternate() (*rast.Expr, error) {
	expr, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok || c != '|' {
			break
		}
		p.next()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		expr = rast.Alternate(expr, right)
	}
	return expr, nil
}

// parseConcat parses a sequence of repeat-expressions up to ')', '|', or
// end of input, coalescing runs of two or more literal characters into a
// single Text node.
func (p *parser) parseConcat() (*rast.Expr, error) {
	var exprs []*rast.Expr
	var text []rune

	flushText := func() {
		switch len(text) {
		case 0:
		case 1:
			exprs = append(exprs, rast.Char(text[0]))
		default:
			exprs = append(exprs, rast.Text(string(text)))
		}
		text = nil
	}

	for {
		c, ok := p.peek()
		if !ok || c == ')' || c == '|' {
			break
		}
		expr, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		if expr.Kind() == rast.KindChar {
			text = append(text, expr.Rune())
			continue
		}
		flushText()
		exprs = append(exprs, expr)
	}
	flushText()

	switch len(exprs) {
	case 0:
		return rast.Text(""), nil
	case 1:
		return exprs[0], nil
	}

	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = rast.Concat(exprs[i], result)
	}
	return result, nil
}

// parseRepeat parses an atom followed by zero or more postfix quantifiers.
func (p *parser) parseRepeat() (*rast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		c, ok := p.peek()
		if !ok {
			break
		}
		switch c {
		case '*':
			p.next()
			expr = rast.ZeroOrMore(expr)
		case '+':
			p.next()
			expr = rast.OneOrMore(expr)
		case '?':
			p.next()
			expr = rast.ZeroOrOne(expr)
		default:
			return expr, nil
		}
	}
	return expr, nil
}

// parseAtom parses a single atom: a parenthesized group, '.', an escape, or
// a literal character.
func (p *parser) parseAtom() (*rast.Expr, error) {
	c, ok := p.next()
	if !ok {
		return nil, p.errorf("Unexpected end of input")
	}
	switch c {
	case '(':
		expr, err := p.parseAlternate()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing != ')' {
			return nil, p.errorf("Expected closing parenthesis")
		}
		return expr, nil
	case '.':
		return rast.Any(), nil
	case '\\':
		return p.parseEscape()
	default:
		return rast.Char(c), nil
	}
}

// parseEscape parses the character following a backslash.
func (p *parser) parseEscape() (*rast.Expr, error) {
	c, ok := p.next()
	if !ok {
		return nil, p.errorf("Unexpected end of input after escape character")
	}
	switch c {
	case 'n':
		return rast.Char('\n'), nil
	case 'r':
		return rast.Char('\r'), nil
	case 't':
		return rast.Char('\t'), nil
	case 's':
		return rast.AnyWhitespace(), nil
	case 'S':
		return rast.AnyNonWhitespace(), nil
	case 'd':
		return rast.AnyDigit(), nil
	case 'D':
		return rast.AnyNonDigit(), nil
	case 'w':
		return rast.AnyWord(), nil
	case 'W':
		return rast.AnyNonWord(), nil
	case '\\', '.', '(', ')', '[', ']', '{', '}', '*', '+', '?', '^', '$', '|':
		return rast.Char(c), nil
	default:
		return nil, p.errorf("Invalid escape sequence: \\%c", c)
	}
}
