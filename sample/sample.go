// Package sample provides small, hand-built automata paired with an
// independent oracle predicate, used to exercise the automaton and regex
// packages against known languages.
package sample

import (
	"strings"

	"github.com/tidalf/gofa/automaton"
)

// Oracle is the reference predicate paired with a sample automaton: tests
// assert that automaton.Accepts(w) == oracle(w) for every w up to some
// bound.
type Oracle func(word string) bool

// EndsWith returns an automaton accepting exactly the words ending in
// suffix, built as an NFA with a chain of len(suffix)+1 match states and a
// reset edge back to state 0 from every state on every symbol, letting
// the NFA restart the match attempt at any position.
func EndsWith(alphabet automaton.Alphabet, suffix string) (*automaton.Automaton, Oracle) {
	a := automaton.New("endsWith", alphabet)
	states := chain(a, len(suffix), suffix)
	for _, s := range states {
		for _, c := range alphabet.Symbols() {
			a.AddEdge(s, states[0], c)
		}
	}
	return a, func(word string) bool { return strings.HasSuffix(word, suffix) }
}

// StartsWith returns an automaton accepting exactly the words beginning
// with prefix: a chain matching prefix, then a self-loop accepting any
// continuation.
func StartsWith(alphabet automaton.Alphabet, prefix string) (*automaton.Automaton, Oracle) {
	a := automaton.New("startsWith", alphabet)
	states := chain(a, len(prefix), prefix)
	last := states[len(states)-1]
	for _, c := range alphabet.Symbols() {
		a.AddEdge(last, last, c)
	}
	return a, func(word string) bool { return strings.HasPrefix(word, prefix) }
}

// Subword returns an automaton accepting exactly the words containing w as
// a (possibly empty) contiguous substring: EndsWith(w)'s reset-and-match
// chain, plus a self-loop at the final state so the match need not be at
// the end.
func Subword(alphabet automaton.Alphabet, w string) (*automaton.Automaton, Oracle) {
	a := automaton.New("subword", alphabet)
	states := chain(a, len(w), w)
	for _, s := range states {
		for _, c := range alphabet.Symbols() {
			a.AddEdge(s, states[0], c)
		}
	}
	last := states[len(states)-1]
	for _, c := range alphabet.Symbols() {
		a.AddEdge(last, last, c)
	}
	return a, func(word string) bool { return strings.Contains(word, w) }
}

// chain builds a straight-line path of n+1 fresh states (0 is the start
// state) wired by pattern[i] between state i and i+1, returning the
// states in order. Shared by EndsWith, StartsWith and Subword.
func chain(a *automaton.Automaton, n int, pattern string) []*automaton.State {
	states := make([]*automaton.State, n+1)
	states[0] = a.AddState(automaton.ToBase62(0), true, n == 0, nil)
	for i := 0; i < n; i++ {
		states[i+1] = a.AddState(automaton.ToBase62(i+1), false, i+1 == n, nil)
		a.AddEdge(states[i], states[i+1], pattern[i])
	}
	return states
}

// NumberOfSymbols returns an automaton accepting exactly the words
// containing exactly n occurrences of symbol.
func NumberOfSymbols(alphabet automaton.Alphabet, symbol byte, n int) (*automaton.Automaton, Oracle) {
	a := automaton.New("numberOfSymbols", alphabet)
	counts := make([]*automaton.State, n+1)
	for i := 0; i <= n; i++ {
		counts[i] = a.AddState(automaton.ToBase62(i), i == 0, i == n, nil)
	}
	overflow := a.AddStateForceNew("overflow", false, false, nil)
	for _, c := range alphabet.Symbols() {
		a.AddEdge(overflow, overflow, c)
	}
	for i := 0; i <= n; i++ {
		for _, c := range alphabet.Symbols() {
			switch {
			case c != symbol:
				a.AddEdge(counts[i], counts[i], c)
			case i < n:
				a.AddEdge(counts[i], counts[i+1], c)
			default:
				a.AddEdge(counts[i], overflow, c)
			}
		}
	}
	return a, func(word string) bool {
		count := 0
		for i := 0; i < len(word); i++ {
			if word[i] == symbol {
				count++
			}
		}
		return count == n
	}
}

// ModLength returns an automaton accepting exactly the words whose length
// is congruent to r modulo m (m > 0).
func ModLength(alphabet automaton.Alphabet, m, r int) (*automaton.Automaton, Oracle) {
	r = ((r % m) + m) % m
	a := automaton.New("modLength", alphabet)
	states := make([]*automaton.State, m)
	for i := 0; i < m; i++ {
		states[i] = a.AddState(automaton.ToBase62(i), i == 0, i == r, nil)
	}
	for i := 0; i < m; i++ {
		for _, c := range alphabet.Symbols() {
			a.AddEdge(states[i], states[(i+1)%m], c)
		}
	}
	return a, func(word string) bool { return ((len(word)%m)+m)%m == r }
}

// OnlyWord returns an automaton whose language is the singleton {w}.
func OnlyWord(alphabet automaton.Alphabet, w string) (*automaton.Automaton, Oracle) {
	a := automaton.New("onlyWord", alphabet)
	chain(a, len(w), w)
	return a, func(word string) bool { return word == w }
}

// OnlyEmptyWord returns an automaton whose language is {ε}.
func OnlyEmptyWord(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	return OnlyWord(alphabet, "")
}

// AllWords returns an automaton whose language is Σ*.
func AllWords(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	a := automaton.New("allWords", alphabet)
	s := a.AddState("0", true, true, nil)
	for _, c := range alphabet.Symbols() {
		a.AddEdge(s, s, c)
	}
	return a, func(string) bool { return true }
}

// NoWords returns an automaton whose language is ∅: no states at all, so
// Accepts always reports false.
func NoWords(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	return automaton.New("noWords", alphabet), func(string) bool { return false }
}

// LengthRange returns an automaton accepting exactly the words of length
// in [min, max].
func LengthRange(alphabet automaton.Alphabet, min, max int) (*automaton.Automaton, Oracle) {
	a := automaton.New("lengthRange", alphabet)
	states := make([]*automaton.State, max+1)
	for i := 0; i <= max; i++ {
		states[i] = a.AddState(automaton.ToBase62(i), i == 0, i >= min, nil)
	}
	for i := 0; i < max; i++ {
		for _, c := range alphabet.Symbols() {
			a.AddEdge(states[i], states[i+1], c)
		}
	}
	return a, func(word string) bool { return len(word) >= min && len(word) <= max }
}

// MinLength returns an automaton accepting exactly the words of length at
// least min.
func MinLength(alphabet automaton.Alphabet, min int) (*automaton.Automaton, Oracle) {
	a := automaton.New("minLength", alphabet)
	states := make([]*automaton.State, min+1)
	for i := 0; i <= min; i++ {
		states[i] = a.AddState(automaton.ToBase62(i), i == 0, i == min, nil)
	}
	for i := 0; i < min; i++ {
		for _, c := range alphabet.Symbols() {
			a.AddEdge(states[i], states[i+1], c)
		}
	}
	for _, c := range alphabet.Symbols() {
		a.AddEdge(states[min], states[min], c)
	}
	return a, func(word string) bool { return len(word) >= min }
}

// MaxLength returns an automaton accepting exactly the words of length at
// most max.
func MaxLength(alphabet automaton.Alphabet, max int) (*automaton.Automaton, Oracle) {
	return LengthRange(alphabet, 0, max)
}

// NotReachable returns a small automaton that intentionally carries a
// state unreachable from its start state, for exercising Reduce and
// isomorphism checks. Its exact unreachable-state count is illustrative
// only, not an API guarantee: do not assert on it directly.
func NotReachable(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	a := automaton.New("notReachable", alphabet)
	s := a.AddState("0", true, true, nil)
	for _, c := range alphabet.Symbols() {
		a.AddEdge(s, s, c)
	}
	orphan := a.AddState("orphan", false, false, nil)
	for _, c := range alphabet.Symbols() {
		a.AddEdge(orphan, orphan, c)
	}
	return a, func(string) bool { return true }
}

// TestNormalize returns an automaton with two syntactically distinct but
// language-equivalent branches (both recognizing "an even number of a's"),
// used to exercise minimization/DFS-renaming normalization: the minimized
// result must collapse the duplicated branch away.
func TestNormalize(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	a := automaton.New("testNormalize", alphabet)

	// branch 1
	e1 := a.AddState("e1", true, true, nil)
	o1 := a.AddState("o1", false, false, nil)
	// branch 2, a redundant copy of branch 1, also a start state
	e2 := a.AddState("e2", true, true, nil)
	o2 := a.AddState("o2", false, false, nil)

	wireEvenOdd(a, alphabet, e1, o1)
	wireEvenOdd(a, alphabet, e2, o2)

	return a, func(word string) bool {
		count := 0
		for i := 0; i < len(word); i++ {
			if word[i] == 'a' {
				count++
			}
		}
		return count%2 == 0
	}
}

func wireEvenOdd(a *automaton.Automaton, alphabet automaton.Alphabet, even, odd *automaton.State) {
	for _, c := range alphabet.Symbols() {
		if c == 'a' {
			a.AddEdge(even, odd, c)
			a.AddEdge(odd, even, c)
		} else {
			a.AddEdge(even, even, c)
			a.AddEdge(odd, odd, c)
		}
	}
}

// Minimize1 returns the textbook six-state DFA over {0,1} whose minimal
// form has three states (Hopcroft-Ullman's running example), recognizing
// the language 0*1: zero or more 0's followed by exactly one 1. Symbols
// '0' and '1' must both be in alphabet.
func Minimize1(alphabet automaton.Alphabet) (*automaton.Automaton, Oracle) {
	a := automaton.New("minimize1", alphabet)
	names := []string{"A", "B", "C", "D", "E", "F"}
	st := make(map[string]*automaton.State, len(names))
	for _, n := range names {
		st[n] = a.AddState(n, n == "A", n == "C" || n == "D", nil)
	}
	trans := map[string][2]string{
		"A": {"B", "C"},
		"B": {"A", "D"},
		"C": {"E", "F"},
		"D": {"E", "F"},
		"E": {"E", "F"},
		"F": {"F", "F"},
	}
	for from, pair := range trans {
		a.AddEdge(st[from], st[pair[0]], '0')
		a.AddEdge(st[from], st[pair[1]], '1')
	}
	return a, func(word string) bool {
		if len(word) == 0 || word[len(word)-1] != '1' {
			return false
		}
		for i := 0; i < len(word)-1; i++ {
			if word[i] != '0' {
				return false
			}
		}
		return true
	}
}
