package automaton

// MinimizeBrzozowski minimizes a via Brzozowski's algorithm: reverse,
// determinize, reverse, determinize, complete. Simpler than Hopcroft and
// slower in the worst case; used as a cross-check in tests.
func (a *Automaton) MinimizeBrzozowski() *Automaton {
	return a.Reverse().MakeDeterministic().Reverse().MakeDeterministic().Complete()
}

// pClass is a Hopcroft partition class: a set of states that are, so far,
// indistinguishable.
type pClass struct {
	members map[*State]struct{}
}

type splitter struct {
	sym   byte
	class *pClass
}

// MinimizeHopcroft minimizes a via Hopcroft's partition-refinement
// algorithm.
func (a *Automaton) MinimizeHopcroft() *Automaton {
	base := MustRenameStatesDFS(a.Reduce().MakeDeterministic()).Complete()

	if len(base.states) < 2 {
		return base
	}

	symbols := base.alphabet.Symbols()

	// predBySymbol[sym][s] = set of states with a sym-edge into s.
	predBySymbol := map[byte]map[*State]map[*State]struct{}{}
	for _, c := range symbols {
		pred := map[*State]map[*State]struct{}{}
		for src, sinks := range base.deltaMap[c] {
			for sink := range sinks {
				if pred[sink] == nil {
					pred[sink] = map[*State]struct{}{}
				}
				pred[sink][src] = struct{}{}
			}
		}
		predBySymbol[c] = pred
	}

	finalMembers := map[*State]struct{}{}
	nonFinalMembers := map[*State]struct{}{}
	for s := range base.states {
		if s.final {
			finalMembers[s] = struct{}{}
		} else {
			nonFinalMembers[s] = struct{}{}
		}
	}

	var partitions []*pClass
	var finalClass, nonFinalClass *pClass
	if len(finalMembers) > 0 {
		finalClass = &pClass{members: finalMembers}
		partitions = append(partitions, finalClass)
	}
	if len(nonFinalMembers) > 0 {
		nonFinalClass = &pClass{members: nonFinalMembers}
		partitions = append(partitions, nonFinalClass)
	}

	var queue []splitter
	inQueue := map[splitter]bool{}
	push := func(sp splitter) {
		if !inQueue[sp] {
			inQueue[sp] = true
			queue = append(queue, sp)
		}
	}
	removeSplittersOf := func(class *pClass) []byte {
		var syms []byte
		var kept []splitter
		for _, sp := range queue {
			if sp.class == class {
				syms = append(syms, sp.sym)
				delete(inQueue, sp)
			} else {
				kept = append(kept, sp)
			}
		}
		queue = kept
		return syms
	}

	if finalClass != nil && nonFinalClass != nil {
		smaller := finalClass
		if len(nonFinalMembers) < len(finalMembers) {
			smaller = nonFinalClass
		}
		for _, c := range symbols {
			push(splitter{sym: c, class: smaller})
		}
	}

	replace := func(old *pClass, a1, a2 *pClass) {
		out := make([]*pClass, 0, len(partitions)+1)
		for _, p := range partitions {
			if p == old {
				out = append(out, a1, a2)
			} else {
				out = append(out, p)
			}
		}
		partitions = out
	}

	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]
		delete(inQueue, sp)

		predSet := map[*State]struct{}{}
		for s := range sp.class.members {
			for p := range predBySymbol[sp.sym][s] {
				predSet[p] = struct{}{}
			}
		}
		if len(predSet) == 0 {
			continue
		}

		snapshot := append([]*pClass{}, partitions...)
		for _, B := range snapshot {
			b1 := map[*State]struct{}{}
			b2 := map[*State]struct{}{}
			for st := range B.members {
				if _, ok := predSet[st]; ok {
					b1[st] = struct{}{}
				} else {
					b2[st] = struct{}{}
				}
			}
			if len(b1) == 0 || len(b2) == 0 {
				continue
			}
			newB1 := &pClass{members: b1}
			newB2 := &pClass{members: b2}
			replace(B, newB1, newB2)

			alreadySplitterSyms := removeSplittersOf(B)
			alreadySplitterSet := map[byte]bool{}
			for _, s := range alreadySplitterSyms {
				alreadySplitterSet[s] = true
			}
			for _, c2 := range symbols {
				if alreadySplitterSet[c2] {
					push(splitter{sym: c2, class: newB1})
					push(splitter{sym: c2, class: newB2})
				} else if len(b1) <= len(b2) {
					push(splitter{sym: c2, class: newB1})
				} else {
					push(splitter{sym: c2, class: newB2})
				}
			}
		}
	}

	out := New("hopcroft("+a.Name+")", base.alphabet)
	classOf := map[*State]*pClass{}
	stateOfClass := map[*pClass]*State{}
	for _, B := range partitions {
		anyStart, anyFinal := false, false
		for st := range B.members {
			classOf[st] = B
			if st.start {
				anyStart = true
			}
			if st.final {
				anyFinal = true
			}
		}
		set := NewStateSet()
		for st := range B.members {
			set = set.Union(NewStateSet(st))
		}
		stateOfClass[B] = out.AddState(set.Name(), anyStart, anyFinal, nil)
	}
	for _, B := range partitions {
		var rep *State
		for st := range B.members {
			rep = st
			break
		}
		for _, c := range symbols {
			for t := range base.deltaMap[c][rep] {
				out.AddEdge(stateOfClass[B], stateOfClass[classOf[t]], c)
				break
			}
		}
	}
	return out.Complete()
}
