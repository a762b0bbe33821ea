// Package regex implements the regular-expression side of the automata
// library: a sum-of-variants syntax tree whose constructors maintain an
// equivalent-automaton invariant, a recursive-descent parser (plus a
// table-driven alternative) over that grammar, the generalized-automaton
// state-elimination procedure that turns an Automaton back into a
// RegularExpression, and the extended (intersection/complement) regex
// operations built on top of it.
package regex

import "github.com/tidalf/gofa/automaton"

// Kind discriminates the variants of a RegularExpression.
type Kind int

const (
	KindEmpty Kind = iota
	KindWord
	KindStar
	KindSum
	KindConcat
)

// RegularExpression is an immutable regex syntax tree node. Every node
// caches an equivalent automaton at construction time (minimized and
// DFS-renamed for Star, Sum and Concat nodes; the plain empty or
// straight-line automaton for Empty and Word); trees are safely shareable
// once built.
type RegularExpression struct {
	kind  Kind
	word  string // meaningful for KindWord
	left  *RegularExpression
	right *RegularExpression // meaningful for KindSum, KindConcat

	eqAut *automaton.Automaton
}

// Kind returns the node's variant.
func (r *RegularExpression) Kind() Kind { return r.kind }

// Word returns the literal of a KindWord node.
func (r *RegularExpression) Word() string { return r.word }

// Left returns the sole child of a KindStar node, or the left operand of
// KindSum/KindConcat.
func (r *RegularExpression) Left() *RegularExpression { return r.left }

// Right returns the right operand of a KindSum/KindConcat node.
func (r *RegularExpression) Right() *RegularExpression { return r.right }

// EquivalentAutomaton returns the node's cached equivalent automaton.
func (r *RegularExpression) EquivalentAutomaton() *automaton.Automaton { return r.eqAut }

// Accepts delegates to the cached equivalent automaton.
func (r *RegularExpression) Accepts(word string) bool {
	return r.eqAut.Accepts(word)
}

// isEpsilonWord reports whether r is the Word("") leaf: the epsilon
// language, used by Concat's algebraic simplification.
func (r *RegularExpression) isEpsilonWord() bool {
	return r.kind == KindWord && r.word == ""
}

// Builder constructs RegularExpression trees over a fixed alphabet. The
// alphabet is threaded through every cached automaton so that nodes built
// by the same Builder can be combined (Sum, Concat, Star, and the
// extended operations) without an alphabet mismatch.
type Builder struct {
	alphabet automaton.Alphabet
}

// NewBuilder returns a Builder over the given alphabet.
func NewBuilder(alphabet automaton.Alphabet) *Builder {
	return &Builder{alphabet: alphabet}
}

// Alphabet returns the builder's alphabet.
func (b *Builder) Alphabet() automaton.Alphabet { return b.alphabet }

// Empty returns the RegularExpression for the empty language ∅.
func (b *Builder) Empty() *RegularExpression {
	return &RegularExpression{
		kind:  KindEmpty,
		eqAut: automaton.New("empty", b.alphabet),
	}
}

// Word returns the RegularExpression for the single literal w. The empty
// string denotes the epsilon language.
func (b *Builder) Word(w string) *RegularExpression {
	aut := automaton.New("word", b.alphabet)
	cur := aut.AddState("0", true, w == "", nil)
	for i := 0; i < len(w); i++ {
		final := i == len(w)-1
		next := aut.AddState(automaton.ToBase62(i+1), false, final, nil)
		aut.AddEdge(cur, next, w[i])
		cur = next
	}
	return &RegularExpression{kind: KindWord, word: w, eqAut: aut}
}

// Star returns the Kleene closure of r.
func (b *Builder) Star(r *RegularExpression) *RegularExpression {
	eqAut := automaton.MustRenameStatesDFS(r.eqAut.Star().MinimizeHopcroft())
	return &RegularExpression{kind: KindStar, left: r, eqAut: eqAut}
}

// Sum returns r1 + r2 (union).
func (b *Builder) Sum(r1, r2 *RegularExpression) *RegularExpression {
	eqAut := automaton.MustRenameStatesDFS(automaton.Union(r1.eqAut, r2.eqAut).MinimizeHopcroft())
	return &RegularExpression{kind: KindSum, left: r1, right: r2, eqAut: eqAut}
}

// Concat returns r1 · r2 (concatenation). Concatenating with an epsilon
// word node returns the other operand unchanged.
func (b *Builder) Concat(r1, r2 *RegularExpression) *RegularExpression {
	if r1.isEpsilonWord() {
		return r2
	}
	if r2.isEpsilonWord() {
		return r1
	}
	eqAut := automaton.MustRenameStatesDFS(automaton.Concat(r1.eqAut, r2.eqAut).MinimizeHopcroft())
	return &RegularExpression{kind: KindConcat, left: r1, right: r2, eqAut: eqAut}
}

// fromExisting builds a node from the given parts, carrying the
// already-built eqAut verbatim (neither minimized nor renamed) as its
// equivalent automaton.
func (b *Builder) fromExisting(kind Kind, word string, left, right *RegularExpression, eqAut *automaton.Automaton) *RegularExpression {
	return &RegularExpression{kind: kind, word: word, left: left, right: right, eqAut: eqAut}
}
