package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBase62RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 61, 62, 63, 3843, 3844, 123456} {
		s := ToBase62(n)
		got, err := FromBase62(s)
		assert.NoError(t, err)
		assert.Equal(t, n, got, "round trip of %d via %q", n, s)
	}
}

func TestBase62Width(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{1, 1},
		{62, 2},
		{63, 3},
		{3844, 3},
		{3845, 4},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, base62Width(tc.n), "base62Width(%d)", tc.n)
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	a := makeEvenAs().MinimizeHopcroft()
	sig, err := a.SignatureDFS()
	assert.NoError(t, err)

	reconstructed, err := ConstructFromSignature(sig)
	assert.NoError(t, err)

	sig2, err := reconstructed.SignatureDFS()
	assert.NoError(t, err)
	assert.Equal(t, sig, sig2)
}

func TestConstructFromSignatureErrors(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"0|1|ab|extra",
		"00|1|",
		"0|1|ab",
	}
	for _, sig := range tests {
		_, err := ConstructFromSignature(sig)
		assert.Error(t, err, "signature %q", sig)
	}
}

func TestRenameStatesDFSRequiresUniqueStart(t *testing.T) {
	a := New("noStart", DefaultAlphabet())
	a.AddState("0", false, false, nil)
	_, err := a.RenameStatesDFS()
	assert.ErrorIs(t, err, ErrNoStartStates)
}

func TestEquivalentAcrossMinimizers(t *testing.T) {
	a := makeABStar()
	assert.True(t, Equivalent(a.MinimizeHopcroft(), a.MinimizeBrzozowski()))
	assert.False(t, Equivalent(a.MinimizeHopcroft(), makeEvenAs().MinimizeHopcroft()))
}
