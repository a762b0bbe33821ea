// Package automaton implements non-deterministic and deterministic finite
// automata over small, single-character alphabets: construction, the
// regular operations (union, concatenation, star, reversal, complement,
// intersection, difference), determinization, and minimization by both
// Hopcroft's and Brzozowski's algorithms.
//
// Every operation that appears to combine automata in fact copies states
// and edges into a freshly owned automaton; no state or edge is ever
// shared between two automata.
package automaton

import (
	"errors"
	"fmt"
)

// ErrNoStartStates is returned by operations that require a unique or
// non-empty set of start states, such as RenameStatesDFS.
var ErrNoStartStates = errors.New("automaton: no start states")

// Automaton is a (possibly non-deterministic) finite automaton: a set of
// states and edges over a fixed Alphabet, indexed by a transition map for
// O(1)-ish delta lookups.
type Automaton struct {
	Name     string
	alphabet Alphabet

	states       map[*State]struct{}
	stateNameMap map[string]*State
	edges        map[*Edge]struct{}

	// deltaMap[symbol][source] is the set of sink states reachable from
	// source on symbol.
	deltaMap map[byte]map[*State]map[*State]struct{}
}

// New returns a new, empty automaton over alphabet.
func New(name string, alphabet Alphabet) *Automaton {
	return &Automaton{
		Name:         name,
		alphabet:     alphabet,
		states:       map[*State]struct{}{},
		stateNameMap: map[string]*State{},
		edges:        map[*Edge]struct{}{},
		deltaMap:     map[byte]map[*State]map[*State]struct{}{},
	}
}

// Alphabet returns the automaton's alphabet.
func (a *Automaton) Alphabet() Alphabet { return a.alphabet }

// States returns all states, in no particular order.
func (a *Automaton) States() []*State {
	out := make([]*State, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	return out
}

// StateByName returns the state with the given name, if any.
func (a *Automaton) StateByName(name string) (*State, bool) {
	s, ok := a.stateNameMap[name]
	return s, ok
}

// Edges returns all edges, in no particular order.
func (a *Automaton) Edges() []*Edge {
	out := make([]*Edge, 0, len(a.edges))
	for e := range a.edges {
		out = append(out, e)
	}
	return out
}

// StartStates returns every start state.
func (a *Automaton) StartStates() []*State {
	var out []*State
	for s := range a.states {
		if s.start {
			out = append(out, s)
		}
	}
	return out
}

// FinalStates returns every final state.
func (a *Automaton) FinalStates() []*State {
	var out []*State
	for s := range a.states {
		if s.final {
			out = append(out, s)
		}
	}
	return out
}

// AddState returns the existing state named name, or creates one. Empty
// names are rewritten to "empty". Use AddStateForceNew to always create a
// new state.
func (a *Automaton) AddState(name string, start, final bool, tag any) *State {
	return a.addStateImpl(name, start, final, tag, false)
}

// AddStateForceNew behaves like AddState but always creates a new state,
// uniquifying name (by appending 'x') if it collides with an existing one.
func (a *Automaton) AddStateForceNew(name string, start, final bool, tag any) *State {
	return a.addStateImpl(name, start, final, tag, true)
}

func (a *Automaton) addStateImpl(name string, start, final bool, tag any, forceNew bool) *State {
	if name == "" {
		name = "empty"
	}
	if !forceNew {
		if s, ok := a.stateNameMap[name]; ok {
			return s
		}
	} else {
		for {
			if _, ok := a.stateNameMap[name]; !ok {
				break
			}
			name += "x"
		}
	}
	s := &State{
		name:     name,
		start:    start,
		final:    final,
		Tag:      tag,
		edgesOut: map[*Edge]struct{}{},
		edgesIn:  map[*Edge]struct{}{},
	}
	a.states[s] = struct{}{}
	a.stateNameMap[name] = s
	return s
}

// DeleteState removes s and every edge incident to it.
func (a *Automaton) DeleteState(s *State) {
	if _, ok := a.states[s]; !ok {
		return
	}
	for e := range s.edgesOut {
		a.deleteEdge(e)
	}
	for e := range s.edgesIn {
		a.deleteEdge(e)
	}
	delete(a.states, s)
	delete(a.stateNameMap, s.name)
}

// AddEdge adds (or returns the existing) edge from --symbol--> to.
func (a *Automaton) AddEdge(from, to *State, symbol byte) *Edge {
	if e := a.GetEdge(from, to, symbol); e != nil {
		return e
	}
	e := &Edge{source: from, sink: to, symbol: symbol}
	a.edges[e] = struct{}{}
	from.edgesOut[e] = struct{}{}
	to.edgesIn[e] = struct{}{}
	bySrc, ok := a.deltaMap[symbol]
	if !ok {
		bySrc = map[*State]map[*State]struct{}{}
		a.deltaMap[symbol] = bySrc
	}
	sinks, ok := bySrc[from]
	if !ok {
		sinks = map[*State]struct{}{}
		bySrc[from] = sinks
	}
	sinks[to] = struct{}{}
	return e
}

func (a *Automaton) deleteEdge(e *Edge) {
	if _, ok := a.edges[e]; !ok {
		return
	}
	delete(a.edges, e)
	delete(e.source.edgesOut, e)
	delete(e.sink.edgesIn, e)
	if bySrc, ok := a.deltaMap[e.symbol]; ok {
		if sinks, ok := bySrc[e.source]; ok {
			delete(sinks, e.sink)
			if len(sinks) == 0 {
				delete(bySrc, e.source)
			}
		}
	}
}

// GetEdge scans from's out-edges for one labeled symbol and landing on to.
func (a *Automaton) GetEdge(from, to *State, symbol byte) *Edge {
	for e := range from.edgesOut {
		if e.symbol == symbol && e.sink == to {
			return e
		}
	}
	return nil
}

// Delta returns the states reachable from state on symbol. With no symbol
// argument it returns the union over every alphabet symbol.
func (a *Automaton) Delta(state *State, symbol ...byte) StateSet {
	if len(symbol) == 0 {
		out := map[*State]struct{}{}
		for _, c := range a.alphabet.Symbols() {
			for s := range a.deltaMap[c][state] {
				out[s] = struct{}{}
			}
		}
		return StateSet{members: out}
	}
	out := map[*State]struct{}{}
	for s := range a.deltaMap[symbol[0]][state] {
		out[s] = struct{}{}
	}
	return StateSet{members: out}
}

// DeltaStar extends Delta over a word, starting from the states in
// current. It short-circuits to the empty set as soon as the frontier
// empties.
func (a *Automaton) DeltaStar(current StateSet, word string) StateSet {
	frontier := current
	for i := 0; i < len(word); i++ {
		if frontier.Len() == 0 {
			return StateSet{}
		}
		next := map[*State]struct{}{}
		for s := range frontier.members {
			for t := range a.deltaMap[word[i]][s] {
				next[t] = struct{}{}
			}
		}
		frontier = StateSet{members: next}
	}
	return frontier
}

// Accepts reports whether word is in the language of a.
func (a *Automaton) Accepts(word string) bool {
	if len(a.states) == 0 {
		return false
	}
	start := NewStateSet(a.StartStates()...)
	return a.DeltaStar(start, word).AnyFinal()
}

// FirstAcceptedWord returns the shortest accepted word up to maxLength
// (length-lex order), and whether one was found.
func (a *Automaton) FirstAcceptedWord(maxLength int) (string, bool) {
	it := a.alphabet.GenAllWords()
	for {
		w, ok := it.Next()
		if !ok || len(w) > maxLength {
			return "", false
		}
		if a.Accepts(w) {
			return w, true
		}
	}
}

// AcceptedWords returns an iterator-free slice of every accepted word of
// length at most maxLength, in length-lex order.
func (a *Automaton) AcceptedWords(maxLength int) []string {
	var out []string
	it := a.alphabet.GenAllWords()
	for {
		w, ok := it.Next()
		if !ok || len(w) > maxLength {
			return out
		}
		if a.Accepts(w) {
			out = append(out, w)
		}
	}
}

// copyInto copies every state and edge of src into dst, prefixing state
// names with prefix+":" to keep them unique, and returns the mapping from
// src states to their dst counterparts.
func copyInto(dst *Automaton, src *Automaton, prefix string) map[*State]*State {
	mapping := make(map[*State]*State, len(src.states))
	for s := range src.states {
		ns := dst.AddStateForceNew(prefix+":"+s.name, s.start, s.final, nil)
		mapping[s] = ns
	}
	for e := range src.edges {
		dst.AddEdge(mapping[e.source], mapping[e.sink], e.symbol)
	}
	return mapping
}

// Union returns an automaton accepting exactly the words accepted by a or
// b, built by disjoint union of prefixed copies of both.
func Union(a, b *Automaton) *Automaton {
	out := New(fmt.Sprintf("union(%s,%s)", a.Name, b.Name), a.alphabet)
	copyInto(out, a, "a")
	copyInto(out, b, "b")
	return out
}

// Concat returns an automaton accepting the concatenation language of a
// then b, including the nullable-operand union rule.
func Concat(a, b *Automaton) *Automaton {
	out := New(fmt.Sprintf("concat(%s,%s)", a.Name, b.Name), a.alphabet)
	aMap := copyInto(out, a, "a")
	bMap := copyInto(out, b, "b")

	var aFinals, bStarts []*State
	for s := range a.states {
		if s.final {
			aFinals = append(aFinals, aMap[s])
			aMap[s].final = false
		}
	}
	for s := range b.states {
		if s.start {
			bStarts = append(bStarts, bMap[s])
			bMap[s].start = false
		}
	}

	for _, af := range aFinals {
		for _, bs := range bStarts {
			for e := range bs.edgesOut {
				out.AddEdge(af, e.sink, e.symbol)
			}
			if bs.final {
				af.final = true
			}
		}
	}

	result := out
	if a.Accepts("") {
		result = Union(result, copyAutomaton(b))
	}
	if b.Accepts("") {
		result = Union(result, copyAutomaton(a))
	}
	if a.Accepts("") && b.Accepts("") {
		eps := New("epsilon", a.alphabet)
		eps.AddState("s", true, true, nil)
		result = Union(result, eps)
	}
	return result
}

// copyAutomaton returns a freshly owned, independent copy of a.
func copyAutomaton(a *Automaton) *Automaton {
	out := New(a.Name, a.alphabet)
	copyInto(out, a, "c")
	return out
}

// Reverse returns the automaton for the reverse language of a: every edge
// is reversed and every state's start/final flags are swapped.
func (a *Automaton) Reverse() *Automaton {
	out := New("reverse("+a.Name+")", a.alphabet)
	mapping := make(map[*State]*State, len(a.states))
	for s := range a.states {
		mapping[s] = out.AddStateForceNew(s.name, s.final, s.start, nil)
	}
	for e := range a.edges {
		out.AddEdge(mapping[e.sink], mapping[e.source], e.symbol)
	}
	return out
}

// Reduce returns the sub-automaton of states reachable from some start
// state AND co-reachable (reachable in reverse) from some final state,
// with only the edges whose endpoints both survive.
func (a *Automaton) Reduce() *Automaton {
	forward := reachableFrom(a, a.StartStates(), false)
	backward := reachableFrom(a, a.FinalStates(), true)

	out := New("reduce("+a.Name+")", a.alphabet)
	mapping := map[*State]*State{}
	for s := range a.states {
		if forward[s] && backward[s] {
			mapping[s] = out.AddStateForceNew(s.name, s.start, s.final, nil)
		}
	}
	for e := range a.edges {
		ns, okS := mapping[e.source]
		nt, okT := mapping[e.sink]
		if okS && okT {
			out.AddEdge(ns, nt, e.symbol)
		}
	}
	return out
}

func reachableFrom(a *Automaton, seeds []*State, reverse bool) map[*State]bool {
	visited := map[*State]bool{}
	stack := append([]*State{}, seeds...)
	for _, s := range seeds {
		visited[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var neighbors map[*Edge]struct{}
		if reverse {
			neighbors = s.edgesIn
		} else {
			neighbors = s.edgesOut
		}
		for e := range neighbors {
			var next *State
			if reverse {
				next = e.source
			} else {
				next = e.sink
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return visited
}

// Star returns the Kleene closure of a: a fresh start/final state wired
// around a's old start and final states, then reduced.
func (a *Automaton) Star() *Automaton {
	out := New("star("+a.Name+")", a.alphabet)
	mapping := make(map[*State]*State, len(a.states))
	for s := range a.states {
		mapping[s] = out.AddStateForceNew(s.name, false, false, nil)
	}
	for e := range a.edges {
		out.AddEdge(mapping[e.source], mapping[e.sink], e.symbol)
	}

	startfinal := out.AddStateForceNew("startfinal", true, true, nil)
	for s := range a.states {
		ns := mapping[s]
		if s.start {
			for e := range ns.edgesOut {
				out.AddEdge(startfinal, e.sink, e.symbol)
			}
		}
	}
	for s := range a.states {
		ns := mapping[s]
		if s.final {
			for e := range ns.edgesIn {
				out.AddEdge(e.source, startfinal, e.symbol)
			}
		}
	}
	for s := range a.states {
		ns := mapping[s]
		ns.start = false
		ns.final = false
	}
	return out.Reduce()
}

// Complete ensures every (state, symbol) pair has at least one successor,
// adding a single fresh error state with self-loops on every symbol if
// needed. An automaton with no states becomes a single self-looping start
// state (a completed empty-language automaton).
func (a *Automaton) Complete() *Automaton {
	out := a.Reduce()
	if len(out.states) == 0 {
		s := out.AddState("empty", true, false, nil)
		for _, c := range out.alphabet.Symbols() {
			out.AddEdge(s, s, c)
		}
		return out
	}

	var missing bool
	for s := range out.states {
		for _, c := range out.alphabet.Symbols() {
			if out.Delta(s, c).Len() == 0 {
				missing = true
				break
			}
		}
		if missing {
			break
		}
	}
	if !missing {
		return out
	}

	errState := out.AddStateForceNew("error", false, false, nil)
	for s := range out.states {
		if s == errState {
			continue
		}
		for _, c := range out.alphabet.Symbols() {
			if out.Delta(s, c).Len() == 0 {
				out.AddEdge(s, errState, c)
			}
		}
	}
	for _, c := range out.alphabet.Symbols() {
		out.AddEdge(errState, errState, c)
	}
	return out
}

// Complement returns the automaton for the complement language: minimize,
// complete, then flip every state's final flag.
func (a *Automaton) Complement() *Automaton {
	out := a.MinimizeHopcroft().Complete()
	for s := range out.states {
		s.final = !s.final
	}
	return out
}

// Intersect returns the product automaton of a and b: pair states,
// start/final iff both components are, transition on c iff both
// components do. No reduction is performed; follow with
// Reduce or a minimize call if needed.
func Intersect(a, b *Automaton) *Automaton {
	out := New(fmt.Sprintf("intersect(%s,%s)", a.Name, b.Name), a.alphabet)
	pairState := map[[2]*State]*State{}
	var get func(sa, sb *State) *State
	get = func(sa, sb *State) *State {
		key := [2]*State{sa, sb}
		if s, ok := pairState[key]; ok {
			return s
		}
		name := fmt.Sprintf("(%s,%s)", sa.name, sb.name)
		s := out.AddStateForceNew(name, sa.start && sb.start, sa.final && sb.final, nil)
		pairState[key] = s
		return s
	}

	queue := [][2]*State{}
	for sa := range a.states {
		for sb := range b.states {
			queue = append(queue, [2]*State{sa, sb})
		}
	}
	for _, pair := range queue {
		sa, sb := pair[0], pair[1]
		src := get(sa, sb)
		for _, c := range a.alphabet.Symbols() {
			for ta := range a.deltaMap[c][sa] {
				for tb := range b.deltaMap[c][sb] {
					dst := get(ta, tb)
					out.AddEdge(src, dst, c)
				}
			}
		}
	}
	return out
}

// Difference returns a's language minus b's: a ∩ complement(b).
func Difference(a, b *Automaton) *Automaton {
	return Intersect(a, b.Complement())
}
