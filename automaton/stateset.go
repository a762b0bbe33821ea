package automaton

import "sort"

// nameSeparator joins member names when building a StateSet's canonical
// name. Member names are joined without escaping, so canonical names tell
// sets apart only while no member name contains the separator. addState
// neither rejects nor rewrites such names, and the subset names built by
// MakeDeterministic and the class names built by MinimizeHopcroft do
// contain it.
const nameSeparator = "\x1f"

// StateSet is a set of states identified by a canonical name: the sorted
// concatenation of its members' names. Two StateSets with the same Name()
// represent the same subset, which is how subset-construction and
// Hopcroft reduce "is this the same DFA state" to string equality.
type StateSet struct {
	members map[*State]struct{}
}

// NewStateSet builds a StateSet from the given states.
func NewStateSet(states ...*State) StateSet {
	m := make(map[*State]struct{}, len(states))
	for _, s := range states {
		m[s] = struct{}{}
	}
	return StateSet{members: m}
}

// Len returns the number of members.
func (s StateSet) Len() int { return len(s.members) }

// Contains reports whether st is a member.
func (s StateSet) Contains(st *State) bool {
	_, ok := s.members[st]
	return ok
}

// List returns the members in no particular order.
func (s StateSet) List() []*State {
	out := make([]*State, 0, len(s.members))
	for st := range s.members {
		out = append(out, st)
	}
	return out
}

// Name returns the canonical name of the set: its members' names, sorted,
// joined by nameSeparator. The empty set's name is the empty string.
func (s StateSet) Name() string {
	names := make([]string, 0, len(s.members))
	for st := range s.members {
		names = append(names, st.name)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += nameSeparator
		}
		out += n
	}
	return out
}

// Union returns the union of s and other, sharing no state with either.
func (s StateSet) Union(other StateSet) StateSet {
	m := make(map[*State]struct{}, len(s.members)+len(other.members))
	for st := range s.members {
		m[st] = struct{}{}
	}
	for st := range other.members {
		m[st] = struct{}{}
	}
	return StateSet{members: m}
}

// Intersect returns the states present in both s and other.
func (s StateSet) Intersect(other StateSet) StateSet {
	m := map[*State]struct{}{}
	for st := range s.members {
		if other.Contains(st) {
			m[st] = struct{}{}
		}
	}
	return StateSet{members: m}
}

// Difference returns the states of s not present in other.
func (s StateSet) Difference(other StateSet) StateSet {
	m := map[*State]struct{}{}
	for st := range s.members {
		if !other.Contains(st) {
			m[st] = struct{}{}
		}
	}
	return StateSet{members: m}
}

// Equals reports whether s and other have the same canonical name.
func (s StateSet) Equals(other StateSet) bool {
	return s.Name() == other.Name()
}

// AnyFinal reports whether any member is a final state.
func (s StateSet) AnyFinal() bool {
	for st := range s.members {
		if st.final {
			return true
		}
	}
	return false
}
