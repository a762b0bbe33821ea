package automaton

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrBadLength is returned by operations taking a word length when the
// requested length is negative.
var ErrBadLength = errors.New("automaton: negative length")

// Alphabet is a finite, ordered set of distinct single-character symbols.
// It is immutable once constructed.
type Alphabet struct {
	symbols []byte
}

// DefaultAlphabet is the {a, b} alphabet used when none is supplied.
func DefaultAlphabet() Alphabet {
	return NewAlphabet('a', 'b')
}

// NewAlphabet builds an Alphabet from a sequence of symbols, preserving the
// given order and dropping duplicates (keeping the first occurrence).
func NewAlphabet(symbols ...byte) Alphabet {
	seen := make(map[byte]struct{}, len(symbols))
	out := make([]byte, 0, len(symbols))
	for _, s := range symbols {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return Alphabet{symbols: out}
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the i-th symbol in declared order.
func (a Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Symbols returns the declared order of symbols as a slice. Callers must not
// mutate it.
func (a Alphabet) Symbols() []byte {
	return a.symbols
}

// Contains reports whether b is a symbol of the alphabet.
func (a Alphabet) Contains(b byte) bool {
	_, ok := a.Index(b)
	return ok
}

// Index returns the declared-order position of b, if present.
func (a Alphabet) Index(b byte) (int, bool) {
	for i, s := range a.symbols {
		if s == b {
			return i, true
		}
	}
	return 0, false
}

// String renders the alphabet as its symbols concatenated in declared
// order, e.g. "ab".
func (a Alphabet) String() string {
	return string(a.symbols)
}

// WordIterator yields words over an alphabet in length-lex order: shortest
// words first, then lexicographic (by declared symbol order) within a
// length. It is restartable by constructing a new iterator and is
// single-direction, per the "generator function" design note: consumers
// depend only on the sequential, order-preserving contract.
type WordIterator struct {
	alphabet Alphabet
	word     []int // indices into alphabet.symbols
	started  bool
}

// GenAllWords returns a WordIterator over every word of the alphabet, in
// length-lex order starting with the empty word.
func (a Alphabet) GenAllWords() *WordIterator {
	return &WordIterator{alphabet: a}
}

// Next advances the iterator and returns the next word. The second return
// value is false once the alphabet is empty (in which case only the empty
// word exists and iteration stops after it).
func (it *WordIterator) Next() (string, bool) {
	if !it.started {
		it.started = true
		return it.current(), true
	}
	if it.alphabet.Len() == 0 {
		return "", false
	}
	it.increment()
	return it.current(), true
}

func (it *WordIterator) current() string {
	var sb strings.Builder
	for _, idx := range it.word {
		sb.WriteByte(it.alphabet.Symbol(idx))
	}
	return sb.String()
}

// increment implements length-lex successor: odometer-increment the current
// word; on overflow (all positions were the last symbol), grow by one
// position reset to the first symbol.
func (it *WordIterator) increment() {
	n := it.alphabet.Len()
	for i := len(it.word) - 1; i >= 0; i-- {
		if it.word[i] < n-1 {
			it.word[i]++
			return
		}
		it.word[i] = 0
	}
	it.word = append(it.word, 0)
}

// RandomWord returns a word of uniformly random length in [minLen, maxLen]
// drawn from the alphabet, with each symbol chosen uniformly at random.
// Used only by tests.
func (a Alphabet) RandomWord(minLen, maxLen int) (string, error) {
	if minLen < 0 || maxLen < 0 {
		return "", fmt.Errorf("%w: RandomWord(%d, %d)", ErrBadLength, minLen, maxLen)
	}
	if maxLen < minLen {
		minLen, maxLen = maxLen, minLen
	}
	n := a.Len()
	length := minLen
	if maxLen > minLen {
		length += rand.Intn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		if n == 0 {
			return "", errors.New("automaton: RandomWord over an empty alphabet")
		}
		buf[i] = a.Symbol(rand.Intn(n))
	}
	return string(buf), nil
}
