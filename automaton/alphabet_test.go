package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenAllWordsLengthLexOrder(t *testing.T) {
	it := DefaultAlphabet().GenAllWords()
	var got []string
	for i := 0; i < 15; i++ {
		w, ok := it.Next()
		assert.True(t, ok)
		got = append(got, w)
	}
	expected := []string{
		"", "a", "b", "aa", "ab", "ba", "bb",
		"aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb",
	}
	assert.Equal(t, expected, got)
}

func TestAlphabetContainsAndIndex(t *testing.T) {
	al := NewAlphabet('x', 'y', 'z')
	assert.True(t, al.Contains('y'))
	assert.False(t, al.Contains('q'))
	idx, ok := al.Index('z')
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestNewAlphabetDropsDuplicates(t *testing.T) {
	al := NewAlphabet('a', 'b', 'a', 'c', 'b')
	assert.Equal(t, "abc", al.String())
}

func TestRandomWordRespectsBounds(t *testing.T) {
	al := DefaultAlphabet()
	for i := 0; i < 20; i++ {
		w, err := al.RandomWord(2, 5)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(w), 2)
		assert.LessOrEqual(t, len(w), 5)
		for _, c := range []byte(w) {
			assert.True(t, al.Contains(c))
		}
	}
}

func TestRandomWordRejectsNegativeLength(t *testing.T) {
	al := DefaultAlphabet()
	_, err := al.RandomWord(-1, 3)
	assert.ErrorIs(t, err, ErrBadLength)
}
