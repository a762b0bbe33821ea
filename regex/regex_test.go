package regex

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidalf/gofa/automaton"
)

func TestBuilderTreeAccepts(t *testing.T) {
	b := NewBuilder(automaton.DefaultAlphabet())
	r := b.Concat(b.Word("a"), b.Star(b.Sum(b.Word("a"), b.Word("b"))))

	tests := []struct {
		word     string
		expected bool
	}{
		{"a", true},
		{"ab", true},
		{"aab", true},
		{"abab", true},
		{"", false},
		{"b", false},
		{"ba", false},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s:%t", tc.word, tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Accepts(tc.word))
		})
	}
}

func TestConcatEpsilonSimplification(t *testing.T) {
	b := NewBuilder(automaton.DefaultAlphabet())
	eps := b.Word("")
	word := b.Word("ab")
	assert.Same(t, word, b.Concat(eps, word))
	assert.Same(t, word, b.Concat(word, eps))
}

func TestStringRoundTripsThroughParse(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)
	trees := []*RegularExpression{
		b.Empty(),
		b.Word(""),
		b.Word("ab"),
		b.Star(b.Word("a")),
		b.Star(b.Sum(b.Word("a"), b.Word("b"))),
		b.Sum(b.Word("a"), b.Concat(b.Word("b"), b.Word("a"))),
	}
	for _, tree := range trees {
		s := tree.String()
		t.Run(s, func(t *testing.T) {
			reparsed, err := Parse(alphabet, s)
			assert.NoError(t, err)
			assert.True(t, automaton.Equivalent(tree.EquivalentAutomaton(), reparsed.EquivalentAutomaton()))
		})
	}
}

func TestParseExamples(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	tests := []struct {
		input   string
		accepts []string
		rejects []string
	}{
		{"a*b", []string{"b", "ab", "aab"}, []string{"a", "ba"}},
		{"(a+b)*", []string{"", "a", "b", "aabba"}, []string{}},
		{"ab+ba", []string{"ab", "ba"}, []string{"aa", "bb", ""}},
		{"0", []string{}, []string{"", "a"}},
		{"E", []string{""}, []string{"a"}},
		{".", []string{"a", "b"}, []string{"ab", ""}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			re, err := Parse(alphabet, tc.input)
			assert.NoError(t, err)
			for _, w := range tc.accepts {
				assert.True(t, re.Accepts(w), "%q should accept %q", tc.input, w)
			}
			for _, w := range tc.rejects {
				assert.False(t, re.Accepts(w), "%q should reject %q", tc.input, w)
			}
		})
	}
}

func TestParseAndTableDrivenAgree(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	inputs := []string{"a*b", "(a+b)*a", "ab+ba", "a(b+E)a", ".*ab"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			re1, err := Parse(alphabet, input)
			assert.NoError(t, err)
			re2, err := ParseTableDriven(alphabet, input)
			assert.NoError(t, err)
			assert.True(t, automaton.Equivalent(re1.EquivalentAutomaton(), re2.EquivalentAutomaton()))
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	tests := []string{"(a", "a)", "+a", "a++b", "c"}
	for _, input := range tests {
		_, err := Parse(alphabet, input)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}

func TestToRegexRoundTripsAutomaton(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)
	original, err := Parse(alphabet, "a(a+b)*b")
	assert.NoError(t, err)

	rebuilt, err := ToRegex(original.EquivalentAutomaton(), b)
	assert.NoError(t, err)
	assert.True(t, automaton.Equivalent(original.EquivalentAutomaton(), rebuilt.EquivalentAutomaton()))
}

func TestToRegexDisconnectedYieldsEmpty(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)
	a := automaton.New("disconnected", alphabet)
	a.AddState("0", true, false, nil)
	a.AddState("1", false, true, nil)
	re, err := ToRegex(a, b)
	assert.NoError(t, err)
	assert.Equal(t, KindEmpty, re.Kind())
}

func TestToRegexNoPath(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)
	a := automaton.New("noFinalStates", alphabet)
	a.AddState("0", true, false, nil)
	_, err := ToRegex(a, b)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestExtIntersectAndComplement(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)

	aStar := b.Ext(b.Star(b.Word("a")))
	bStar := b.Ext(b.Star(b.Word("b")))

	inter, err := aStar.Intersect(bStar)
	assert.NoError(t, err)
	assert.True(t, inter.Accepts(""))
	assert.False(t, inter.Accepts("a"))
	assert.False(t, inter.Accepts("b"))

	comp, err := aStar.Complement()
	assert.NoError(t, err)
	assert.False(t, comp.Accepts(""))
	assert.False(t, comp.Accepts("aaa"))
	assert.True(t, comp.Accepts("ab"))
}

func ExampleRegularExpression_string() {
	b := NewBuilder(automaton.DefaultAlphabet())
	r := b.Sum(b.Word("a"), b.Concat(b.Star(b.Word("b")), b.Word("a")))
	fmt.Println(r.String())
	// Output: a+b*a
}

func TestToDotContainsEveryEdgeLabel(t *testing.T) {
	alphabet := automaton.DefaultAlphabet()
	b := NewBuilder(alphabet)
	re, err := Parse(alphabet, "a*b")
	assert.NoError(t, err)

	var snapshots []string
	_, err = ToRegexWithConfig(re.EquivalentAutomaton(), b, func(g *GeneralizedAutomaton, step string) error {
		snapshots = append(snapshots, ToDot(g))
		return nil
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, snapshots)
	for _, dot := range snapshots {
		assert.Contains(t, dot, "digraph g {")
	}
}
