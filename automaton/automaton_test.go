package automaton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeABStar() *Automaton {
	a := New("abstar", DefaultAlphabet())
	s0 := a.AddState("0", true, true, nil)
	s1 := a.AddState("1", false, false, nil)
	a.AddEdge(s0, s1, 'a')
	a.AddEdge(s1, s0, 'b')
	return a
}

func makeEvenAs() *Automaton {
	a := New("evenAs", DefaultAlphabet())
	even := a.AddState("even", true, true, nil)
	odd := a.AddState("odd", false, false, nil)
	a.AddEdge(even, odd, 'a')
	a.AddEdge(odd, even, 'a')
	a.AddEdge(even, even, 'b')
	a.AddEdge(odd, odd, 'b')
	return a
}

func TestAcceptsAlternatingABStar(t *testing.T) {
	a := makeABStar()
	tests := []struct {
		word     string
		expected bool
	}{
		{"", true},
		{"a", false},
		{"ab", true},
		{"abab", true},
		{"aba", false},
		{"b", false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s:%t", tc.word, tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, a.Accepts(tc.word))
		})
	}
}

func TestUnionAcceptsEither(t *testing.T) {
	u := Union(makeABStar(), makeEvenAs())
	assert.True(t, u.Accepts("ab"))
	assert.True(t, u.Accepts("aa"))
	assert.True(t, u.Accepts(""))
	assert.False(t, u.Accepts("a"))
}

func TestConcatBasic(t *testing.T) {
	a := New("a", DefaultAlphabet())
	s0 := a.AddState("0", true, false, nil)
	s1 := a.AddState("1", false, true, nil)
	a.AddEdge(s0, s1, 'a')

	b := New("b", DefaultAlphabet())
	t0 := b.AddState("0", true, false, nil)
	t1 := b.AddState("1", false, true, nil)
	b.AddEdge(t0, t1, 'b')

	c := Concat(a, b)
	assert.True(t, c.Accepts("ab"))
	assert.False(t, c.Accepts("a"))
	assert.False(t, c.Accepts("b"))
	assert.False(t, c.Accepts(""))
}

func TestConcatNullableOperands(t *testing.T) {
	epsOrA := New("epsOrA", DefaultAlphabet())
	s0 := epsOrA.AddState("0", true, true, nil)
	s1 := epsOrA.AddState("1", false, true, nil)
	epsOrA.AddEdge(s0, s1, 'a')

	b := New("b", DefaultAlphabet())
	t0 := b.AddState("0", true, false, nil)
	t1 := b.AddState("1", false, true, nil)
	b.AddEdge(t0, t1, 'b')

	c := Concat(epsOrA, b)
	assert.True(t, c.Accepts("b"))
	assert.True(t, c.Accepts("ab"))
	assert.False(t, c.Accepts("a"))
}

func TestStarAcceptsEmptyAndRepetitions(t *testing.T) {
	a := New("a", DefaultAlphabet())
	s0 := a.AddState("0", true, false, nil)
	s1 := a.AddState("1", false, true, nil)
	a.AddEdge(s0, s1, 'a')

	star := a.Star()
	assert.True(t, star.Accepts(""))
	assert.True(t, star.Accepts("a"))
	assert.True(t, star.Accepts("aa"))
	assert.False(t, star.Accepts("b"))
}

func TestReverseReversesAcceptedWords(t *testing.T) {
	a := New("ab", DefaultAlphabet())
	s0 := a.AddState("0", true, false, nil)
	s1 := a.AddState("1", false, false, nil)
	s2 := a.AddState("2", false, true, nil)
	a.AddEdge(s0, s1, 'a')
	a.AddEdge(s1, s2, 'b')

	r := a.Reverse()
	assert.True(t, r.Accepts("ba"))
	assert.False(t, r.Accepts("ab"))
}

func TestIntersectAndDifference(t *testing.T) {
	evenAs := makeEvenAs()
	abstar := makeABStar()

	inter := Intersect(evenAs, abstar)
	assert.True(t, inter.Accepts(""))
	assert.False(t, inter.Accepts("ab"))

	diff := Difference(abstar, evenAs)
	assert.True(t, diff.Accepts("ab"))
	assert.False(t, diff.Accepts(""))
}

func TestComplement(t *testing.T) {
	a := makeABStar()
	comp := a.Complement()
	for _, w := range []string{"", "a", "ab", "aba", "b"} {
		assert.Equal(t, !a.Accepts(w), comp.Accepts(w), "word %q", w)
	}
}

func TestMakeDeterministicPreservesLanguage(t *testing.T) {
	a := New("nfa", DefaultAlphabet())
	s0 := a.AddState("0", true, false, nil)
	s1 := a.AddState("1", false, false, nil)
	s2 := a.AddState("2", false, true, nil)
	a.AddEdge(s0, s1, 'a')
	a.AddEdge(s0, s2, 'a')
	a.AddEdge(s1, s1, 'b')
	a.AddEdge(s2, s2, 'a')

	det := a.MakeDeterministic()
	assert.True(t, det.IsDeterministic())
	for _, w := range []string{"", "a", "ab", "aa", "aaa", "abb"} {
		assert.Equal(t, a.Accepts(w), det.Accepts(w), "word %q", w)
	}
}

func TestMinimizeHopcroftAndBrzozowskiAgree(t *testing.T) {
	a := makeEvenAs()
	hopcroft := a.MinimizeHopcroft()
	brzozowski := a.MinimizeBrzozowski()
	assert.True(t, Equivalent(hopcroft, brzozowski))
	for _, w := range []string{"", "a", "aa", "aaa", "b", "ab", "aab"} {
		assert.Equal(t, a.Accepts(w), hopcroft.Accepts(w), "word %q", w)
	}
}

func TestIsomorphicDetectsRenaming(t *testing.T) {
	a := makeEvenAs()
	b := New("renamed", DefaultAlphabet())
	x := b.AddState("x", true, true, nil)
	y := b.AddState("y", false, false, nil)
	b.AddEdge(x, y, 'a')
	b.AddEdge(y, x, 'a')
	b.AddEdge(x, x, 'b')
	b.AddEdge(y, y, 'b')

	assert.True(t, a.Isomorphic(b))
	assert.False(t, a.Isomorphic(makeABStar()))
}

func ExampleAutomaton_accepts() {
	a := makeABStar()
	fmt.Println(a.Accepts("abab"))
	// Output: true
}
