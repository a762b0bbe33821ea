package automaton

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// base62Digits are the Base62 digits used for canonical state naming:
// 0-9A-Za-z interpreted as 0..61.
const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrSignature is the sentinel for malformed signature strings.
var ErrSignature = errors.New("automaton: malformed signature")

// ToBase62 renders k (k >= 0) as an unpadded Base62 digit string.
func ToBase62(k int) string {
	if k < 0 {
		panic("automaton: ToBase62 of a negative number")
	}
	if k == 0 {
		return "0"
	}
	var digits []byte
	for k > 0 {
		digits = append(digits, base62Digits[k%62])
		k /= 62
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

// FromBase62 parses a Base62 digit string back into an int.
func FromBase62(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty Base62 digit string", ErrSignature)
	}
	val := 0
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(base62Digits, s[i])
		if idx < 0 {
			return 0, fmt.Errorf("%w: invalid Base62 digit %q", ErrSignature, s[i])
		}
		val = val*62 + idx
	}
	return val, nil
}

func base62Width(n int) int {
	if n <= 1 {
		return 1
	}
	w, cap := 0, 1
	for cap < n {
		cap *= 62
		w++
	}
	return w + 1
}

func base62Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// RenameStatesDFS renumbers every state to a fixed-width Base62 name in
// the order a DFS from the unique start state visits it (out-edges
// visited in ascending symbol order). Requires exactly one start state.
func (a *Automaton) RenameStatesDFS() (*Automaton, error) {
	starts := a.StartStates()
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: automaton has %d start states, need exactly 1 for DFS renaming", ErrNoStartStates, len(starts))
	}

	width := base62Width(len(a.states))

	visited := map[*State]bool{}
	var order []*State
	var dfs func(s *State)
	dfs = func(s *State) {
		if visited[s] {
			return
		}
		visited[s] = true
		order = append(order, s)
		outs := s.EdgesOut()
		sort.Slice(outs, func(i, j int) bool { return outs[i].symbol < outs[j].symbol })
		for _, e := range outs {
			dfs(e.sink)
		}
	}
	dfs(starts[0])
	for s := range a.states {
		if !visited[s] {
			order = append(order, s)
			visited[s] = true
		}
	}

	out := New("renamed("+a.Name+")", a.alphabet)
	mapping := make(map[*State]*State, len(order))
	for i, s := range order {
		name := base62Pad(ToBase62(i), width)
		mapping[s] = out.AddStateForceNew(name, s.start, s.final, nil)
	}
	for e := range a.edges {
		out.AddEdge(mapping[e.source], mapping[e.sink], e.symbol)
	}
	return out, nil
}

// MustRenameStatesDFS panics instead of erroring; used by pipelines
// (Hopcroft minimization, the regex tree constructors) whose input is
// guaranteed to have a unique start state.
func MustRenameStatesDFS(a *Automaton) *Automaton {
	out, err := a.RenameStatesDFS()
	if err != nil {
		panic(err)
	}
	return out
}

// SignatureDFS encodes a (which must be deterministic) as "T|F|Σ": after
// DFS renaming, T concatenates, per state in DFS order, per alphabet
// symbol, the successor's Base62 name (or a literal "-" if absent); F is
// a finality bitstring in DFS order; Σ is the alphabet string.
func (a *Automaton) SignatureDFS() (string, error) {
	if !a.IsDeterministic() {
		return "", errors.New("automaton: SignatureDFS requires a deterministic automaton")
	}
	renamed, err := a.RenameStatesDFS()
	if err != nil {
		return "", err
	}
	return renamed.signatureOfRenamed(), nil
}

func (a *Automaton) signatureOfRenamed() string {
	n := len(a.states)
	ordered := make([]*State, n)
	for s := range a.states {
		idx, err := FromBase62(s.name)
		if err != nil {
			panic(err)
		}
		ordered[idx] = s
	}

	var t, f strings.Builder
	for _, s := range ordered {
		for _, c := range a.alphabet.Symbols() {
			targets := a.deltaMap[c][s]
			if len(targets) == 0 {
				t.WriteByte('-')
				continue
			}
			for target := range targets {
				t.WriteString(target.name)
				break
			}
		}
		if s.final {
			f.WriteByte('1')
		} else {
			f.WriteByte('0')
		}
	}
	return t.String() + "|" + f.String() + "|" + a.alphabet.String()
}

// ConstructFromSignature rebuilds a deterministic automaton from a string
// produced by SignatureDFS.
func ConstructFromSignature(sig string) (*Automaton, error) {
	parts := strings.Split(sig, "|")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 '|'-separated parts, got %d", ErrSignature, len(parts))
	}
	t, f, sigma := parts[0], parts[1], parts[2]
	if f == "" || sigma == "" {
		return nil, fmt.Errorf("%w: empty part", ErrSignature)
	}

	n := len(f)
	width := base62Width(n)
	symbols := []byte(sigma)

	out := New("fromSignature", NewAlphabet(symbols...))
	states := make([]*State, n)
	for i := 0; i < n; i++ {
		final := f[i] == '1'
		if f[i] != '0' && f[i] != '1' {
			return nil, fmt.Errorf("%w: invalid finality digit %q", ErrSignature, f[i])
		}
		states[i] = out.AddState(base62Pad(ToBase62(i), width), i == 0, final, nil)
	}

	pos := 0
	for i := 0; i < n; i++ {
		for _, c := range symbols {
			if pos >= len(t) {
				return nil, fmt.Errorf("%w: transition table too short", ErrSignature)
			}
			if t[pos] == '-' {
				pos++
				continue
			}
			if pos+width > len(t) {
				return nil, fmt.Errorf("%w: transition table too short", ErrSignature)
			}
			chunk := t[pos : pos+width]
			pos += width
			idx, err := FromBase62(chunk)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed transition digits %q: %v", ErrSignature, chunk, err)
			}
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: transition target %d out of range", ErrSignature, idx)
			}
			out.AddEdge(states[i], states[idx], c)
		}
	}
	if pos != len(t) {
		return nil, fmt.Errorf("%w: transition table length %d does not match expected content (consumed %d)", ErrSignature, len(t), pos)
	}
	return out, nil
}

// Equivalent reports whether a and b accept the same language, by
// minimizing both (Hopcroft) and comparing signatures.
func Equivalent(a, b *Automaton) bool {
	sigA, errA := a.MinimizeHopcroft().SignatureDFS()
	sigB, errB := b.MinimizeHopcroft().SignatureDFS()
	if errA != nil || errB != nil {
		return false
	}
	return sigA == sigB
}
