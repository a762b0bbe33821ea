package regex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidalf/gofa/automaton"
)

// ErrSyntax is the sentinel wrapped by every parse error.
var ErrSyntax = errors.New("regex: syntax error")

type tokenKind int

const (
	tokLParen tokenKind = iota
	tokRParen
	tokRParenStar
	tokPlus
	tokWord
	tokCharStar
	tokEps
	tokNull
	tokEnd
)

type token struct {
	kind tokenKind
	word string // tokWord
	char byte   // tokCharStar
}

func (t token) String() string {
	switch t.kind {
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokRParenStar:
		return "')*'"
	case tokPlus:
		return "'+'"
	case tokWord:
		return fmt.Sprintf("word %q", t.word)
	case tokCharStar:
		return fmt.Sprintf("%q*", t.char)
	case tokEps:
		return "'E'"
	case tokNull:
		return "'0'"
	default:
		return "end of input"
	}
}

// preprocess strips whitespace and expands every "." into a parenthesized
// sum over alphabet, ahead of tokenization.
func preprocess(alphabet automaton.Alphabet, input string) string {
	var sb strings.Builder
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '.':
			sb.WriteByte('(')
			for i, s := range alphabet.Symbols() {
				if i > 0 {
					sb.WriteByte('+')
				}
				sb.WriteByte(s)
			}
			sb.WriteByte(')')
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// tokenize scans input (already preprocessed) into a token stream. A
// maximal run of alphabet letters not followed by '*' becomes a single
// tokWord; a letter immediately followed by '*' becomes a tokCharStar and
// breaks the run.
func tokenize(alphabet automaton.Alphabet, input string) ([]token, error) {
	var toks []token
	pos := 0
	for pos < len(input) {
		c := input[pos]
		switch {
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			pos++
		case c == ')':
			if pos+1 < len(input) && input[pos+1] == '*' {
				toks = append(toks, token{kind: tokRParenStar})
				pos += 2
			} else {
				toks = append(toks, token{kind: tokRParen})
				pos++
			}
		case c == '+':
			toks = append(toks, token{kind: tokPlus})
			pos++
		case c == 'E' || c == '1':
			toks = append(toks, token{kind: tokEps})
			pos++
		case c == '0':
			toks = append(toks, token{kind: tokNull})
			pos++
		case alphabet.Contains(c):
			start := pos
			for pos < len(input) && alphabet.Contains(input[pos]) {
				if pos+1 < len(input) && input[pos+1] == '*' {
					break
				}
				pos++
			}
			if pos > start {
				toks = append(toks, token{kind: tokWord, word: input[start:pos]})
			}
			if pos < len(input) && alphabet.Contains(input[pos]) && pos+1 < len(input) && input[pos+1] == '*' {
				toks = append(toks, token{kind: tokCharStar, char: input[pos]})
				pos += 2
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrSyntax, c, pos)
		}
	}
	toks = append(toks, token{kind: tokEnd})
	return toks, nil
}

type parser struct {
	builder *Builder
	toks    []token
	pos     int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func canStartFactor(t token) bool {
	switch t.kind {
	case tokLParen, tokWord, tokCharStar, tokEps, tokNull:
		return true
	default:
		return false
	}
}

// Parse parses input under the grammar "re := product ('+' re)? ; product
// := factor product? ; factor := '(' re (')'|')*') | word | charstar |
// E | 0".
func Parse(alphabet automaton.Alphabet, input string) (*RegularExpression, error) {
	clean := preprocess(alphabet, input)
	toks, err := tokenize(alphabet, clean)
	if err != nil {
		return nil, err
	}
	p := &parser{builder: NewBuilder(alphabet), toks: toks}
	re, err := p.parseRE()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEnd {
		return nil, fmt.Errorf("%w: unexpected trailing %v", ErrSyntax, p.peek())
	}
	return re, nil
}

func (p *parser) parseRE() (*RegularExpression, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokPlus {
		p.next()
		right, err := p.parseRE()
		if err != nil {
			return nil, err
		}
		return p.builder.Sum(left, right), nil
	}
	return left, nil
}

func (p *parser) parseProduct() (*RegularExpression, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if canStartFactor(p.peek()) {
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		return p.builder.Concat(left, right), nil
	}
	return left, nil
}

func (p *parser) parseFactor() (*RegularExpression, error) {
	t := p.next()
	switch t.kind {
	case tokLParen:
		inner, err := p.parseRE()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		switch closing.kind {
		case tokRParen:
			return inner, nil
		case tokRParenStar:
			return p.builder.Star(inner), nil
		default:
			return nil, fmt.Errorf("%w: expected ')' or ')*', got %v", ErrSyntax, closing)
		}
	case tokWord:
		return p.builder.Word(t.word), nil
	case tokCharStar:
		return p.builder.Star(p.builder.Word(string(t.char))), nil
	case tokEps:
		return p.builder.Word(""), nil
	case tokNull:
		return p.builder.Empty(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %v", ErrSyntax, t)
	}
}
