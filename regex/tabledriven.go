package regex

import (
	"fmt"

	"github.com/tidalf/gofa/automaton"
)

// precedence of the two binary operators of the grammar: sum binds
// loosest, concatenation (implicit, no token of its own) binds tighter.
// Star is always applied directly to a factor during tokenizing/factor
// parsing and never competes at this level.
const (
	precSum    = 1
	precConcat = 2
)

// ParseTableDriven parses the same surface grammar as Parse, but via
// precedence climbing over an explicit binding-power table instead of
// grammar-shaped recursive descent: every binary operator seen in the
// token stream is resolved by comparing its precedence against the
// minimum precedence threshold of the current climb, the way a
// generated LL/SLR table-driven parser dispatches on a precedence
// relation rather than on hand-written per-rule functions. Produces
// trees equal (as RegularExpression values) to Parse for the same input.
func ParseTableDriven(alphabet automaton.Alphabet, input string) (*RegularExpression, error) {
	clean := preprocess(alphabet, input)
	toks, err := tokenize(alphabet, clean)
	if err != nil {
		return nil, err
	}
	c := &climber{builder: NewBuilder(alphabet), toks: toks}
	re, err := c.climb(0)
	if err != nil {
		return nil, err
	}
	if c.peek().kind != tokEnd {
		return nil, fmt.Errorf("%w: unexpected trailing %v", ErrSyntax, c.peek())
	}
	return re, nil
}

type climber struct {
	builder *Builder
	toks    []token
	pos     int
}

func (c *climber) peek() token { return c.toks[c.pos] }

func (c *climber) next() token {
	t := c.toks[c.pos]
	if c.pos < len(c.toks)-1 {
		c.pos++
	}
	return t
}

// binOpPrec returns the precedence of the binary operator that the
// current lookahead token stands for, and whether the lookahead stands
// for one at all: '+' is an explicit-token operator, and any token that
// can start a factor stands for the implicit concatenation operator.
func (c *climber) binOpPrec() (int, bool) {
	t := c.peek()
	if t.kind == tokPlus {
		return precSum, true
	}
	if canStartFactor(t) {
		return precConcat, true
	}
	return 0, false
}

// climb implements precedence climbing: parse one primary (a factor,
// with its postfix star already folded in by parseFactor), then repeatedly
// fold in following binary operators whose precedence is >= minPrec.
func (c *climber) climb(minPrec int) (*RegularExpression, error) {
	left, err := c.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := c.binOpPrec()
		if !ok || prec < minPrec {
			return left, nil
		}
		if prec == precSum {
			c.next() // consume '+'
		}
		// Sum is right-associative-by-convention here (matches the
		// recursive-descent parser's re := product ('+' re)? rule):
		// climb again at the same precedence so a+b+c groups as
		// a+(b+c). Concatenation is likewise right-grouped.
		right, err := c.climb(prec)
		if err != nil {
			return nil, err
		}
		if prec == precSum {
			left = c.builder.Sum(left, right)
		} else {
			left = c.builder.Concat(left, right)
		}
	}
}

func (c *climber) parseFactor() (*RegularExpression, error) {
	t := c.next()
	switch t.kind {
	case tokLParen:
		inner, err := c.climb(0)
		if err != nil {
			return nil, err
		}
		closing := c.next()
		switch closing.kind {
		case tokRParen:
			return inner, nil
		case tokRParenStar:
			return c.builder.Star(inner), nil
		default:
			return nil, fmt.Errorf("%w: expected ')' or ')*', got %v", ErrSyntax, closing)
		}
	case tokWord:
		return c.builder.Word(t.word), nil
	case tokCharStar:
		return c.builder.Star(c.builder.Word(string(t.char))), nil
	case tokEps:
		return c.builder.Word(""), nil
	case tokNull:
		return c.builder.Empty(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %v", ErrSyntax, t)
	}
}
