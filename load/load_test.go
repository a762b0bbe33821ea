package load

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidalf/gofa/automaton"
)

func TestParseBasicEdges(t *testing.T) {
	text := "1-a-2\n2-b-3\nfinal:3\n"
	a, err := Parse(automaton.DefaultAlphabet(), strings.NewReader(text))
	assert.NoError(t, err)

	assert.True(t, a.Accepts("ab"))
	assert.False(t, a.Accepts("a"))
	assert.False(t, a.Accepts(""))

	starts := a.StartStates()
	assert.Len(t, starts, 1)
	assert.Equal(t, "1", starts[0].Name())
}

func TestParseMultiSymbolEdge(t *testing.T) {
	text := "1-a,b-1\nfinal:1\n"
	a, err := Parse(automaton.DefaultAlphabet(), strings.NewReader(text))
	assert.NoError(t, err)

	assert.True(t, a.Accepts(""))
	assert.True(t, a.Accepts("ab"))
	assert.True(t, a.Accepts("bbaa"))
}

func TestParseTolerantOfCRLF(t *testing.T) {
	text := "1-a-2\r\nfinal:2\r\n"
	a, err := Parse(automaton.DefaultAlphabet(), strings.NewReader(text))
	assert.NoError(t, err)
	assert.True(t, a.Accepts("a"))
}

func TestParseIgnoresLayoutRowsAndPositions(t *testing.T) {
	text := "-row1\n1(0,0)-a-2(1,0)\nfinal:2(1,0)\n"
	a, err := Parse(automaton.DefaultAlphabet(), strings.NewReader(text))
	assert.NoError(t, err)
	assert.True(t, a.Accepts("a"))
	_, ok := a.StateByName("2(1,0)")
	assert.False(t, ok)
	_, ok = a.StateByName("2")
	assert.True(t, ok)
}

func TestParseMalformedLine(t *testing.T) {
	_, err := Parse(automaton.DefaultAlphabet(), strings.NewReader("not a valid line"))
	assert.ErrorIs(t, err, ErrMalformed)
}
