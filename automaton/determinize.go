package automaton

// IsDeterministic reports whether a has exactly one start state and at
// most one successor for every (state, symbol) pair.
func (a *Automaton) IsDeterministic() bool {
	if len(a.StartStates()) != 1 {
		return false
	}
	for s := range a.states {
		for _, c := range a.alphabet.Symbols() {
			if a.Delta(s, c).Len() > 1 {
				return false
			}
		}
	}
	return true
}

// MakeDeterministic converts a to an equivalent deterministic automaton via
// subset construction. a is first reduced; if the result is
// already deterministic it is returned unchanged.
func (a *Automaton) MakeDeterministic() *Automaton {
	reduced := a.Reduce()
	if reduced.IsDeterministic() {
		return reduced
	}

	out := New("det("+a.Name+")", a.alphabet)
	dfaStateOf := map[string]*State{}

	startSet := NewStateSet(reduced.StartStates()...)
	startName := startSet.Name()
	startState := out.AddState(startName, true, startSet.AnyFinal(), startSet)
	dfaStateOf[startName] = startState

	frontier := []StateSet{startSet}
	for len(frontier) > 0 {
		set := frontier[0]
		frontier = frontier[1:]
		src := dfaStateOf[set.Name()]

		for _, c := range reduced.alphabet.Symbols() {
			var next map[*State]struct{}
			next = map[*State]struct{}{}
			for s := range set.members {
				for t := range reduced.deltaMap[c][s] {
					next[t] = struct{}{}
				}
			}
			targetSet := StateSet{members: next}
			if targetSet.Len() == 0 {
				continue
			}
			name := targetSet.Name()
			dst, ok := dfaStateOf[name]
			if !ok {
				dst = out.AddState(name, false, targetSet.AnyFinal(), targetSet)
				dfaStateOf[name] = dst
				frontier = append(frontier, targetSet)
			}
			out.AddEdge(src, dst, c)
		}
	}
	return out
}
