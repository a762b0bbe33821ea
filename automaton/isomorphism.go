package automaton

// Isomorphic reports whether a and b are isomorphic as labeled graphs:
// some renaming of a's states onto b's states preserves start/final flags
// and every edge. This is an exact, exponential check:
// cheap precondition checks first, then an exhaustive permutation search
// whose generator yields lazily so the first matching permutation
// short-circuits the search. Intended for small automata.
func (a *Automaton) Isomorphic(b *Automaton) bool {
	if len(a.states) != len(b.states) {
		return false
	}
	if len(a.edges) != len(b.edges) {
		return false
	}
	if len(a.StartStates()) != len(b.StartStates()) {
		return false
	}
	if len(a.FinalStates()) != len(b.FinalStates()) {
		return false
	}
	if a.alphabet.String() != b.alphabet.String() {
		return false
	}

	aStates := a.States()
	bStates := b.States()
	n := len(aStates)

	indexOfA := make(map[*State]int, n)
	for i, s := range aStates {
		indexOfA[s] = i
	}

	matches := func(perm []int) bool {
		for i, as := range aStates {
			bs := bStates[perm[i]]
			if as.start != bs.start || as.final != bs.final {
				return false
			}
		}
		for e := range a.edges {
			bSrc := bStates[perm[indexOfA[e.source]]]
			bSink := bStates[perm[indexOfA[e.sink]]]
			if b.GetEdge(bSrc, bSink, e.symbol) == nil {
				return false
			}
		}
		return true
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return permutationsHeap(perm, n, matches)
}

// permutationsHeap generates permutations of arr in place using Heap's
// algorithm, calling visit on each. It stops and returns true as soon as
// visit does.
func permutationsHeap(arr []int, k int, visit func([]int) bool) bool {
	if k <= 1 {
		return visit(arr)
	}
	for i := 0; i < k; i++ {
		if permutationsHeap(arr, k-1, visit) {
			return true
		}
		if k%2 == 0 {
			arr[i], arr[k-1] = arr[k-1], arr[i]
		} else {
			arr[0], arr[k-1] = arr[k-1], arr[0]
		}
	}
	return false
}
