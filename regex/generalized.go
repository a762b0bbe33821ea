package regex

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tidalf/gofa/automaton"
)

// genState is a node of a GeneralizedAutomaton.
type genState struct {
	name              string
	isInitial         bool
	isTerminal        bool
	edgesOut, edgesIn []*genEdge
}

// genEdge is an edge whose label is a RegularExpression rather than a
// single alphabet symbol.
type genEdge struct {
	source, sink *genState
	label        *RegularExpression
}

// GeneralizedAutomaton is an automaton whose edges carry RegularExpression
// labels instead of single symbols, the intermediate structure used by
// state elimination to convert an Automaton into a RegularExpression.
type GeneralizedAutomaton struct {
	builder *Builder
	states  map[*genState]struct{}
	nameMap map[string]*genState
}

func newGeneralizedAutomaton(b *Builder) *GeneralizedAutomaton {
	return &GeneralizedAutomaton{
		builder: b,
		states:  map[*genState]struct{}{},
		nameMap: map[string]*genState{},
	}
}

func (g *GeneralizedAutomaton) getOrCreate(name string) *genState {
	if s, ok := g.nameMap[name]; ok {
		return s
	}
	s := &genState{name: name}
	g.states[s] = struct{}{}
	g.nameMap[name] = s
	return s
}

// addEdge adds an edge src → dst labeled label. If src already has an edge
// to dst, label is summed into that edge's label instead, so there is at
// most one edge per ordered pair of states.
func (g *GeneralizedAutomaton) addEdge(src, dst *genState, label *RegularExpression) {
	for _, e := range src.edgesOut {
		if e.sink == dst {
			e.label = g.builder.Sum(e.label, label)
			return
		}
	}
	e := &genEdge{source: src, sink: dst, label: label}
	src.edgesOut = append(src.edgesOut, e)
	dst.edgesIn = append(dst.edgesIn, e)
}

func (g *GeneralizedAutomaton) removeState(s *genState) {
	for _, e := range s.edgesOut {
		removeEdgeFrom(&e.sink.edgesIn, e)
	}
	for _, e := range s.edgesIn {
		removeEdgeFrom(&e.source.edgesOut, e)
	}
	delete(g.states, s)
	delete(g.nameMap, s.name)
}

func removeEdgeFrom(edges *[]*genEdge, target *genEdge) {
	out := (*edges)[:0]
	for _, e := range *edges {
		if e != target {
			out = append(out, e)
		}
	}
	*edges = out
}

// CopyOf builds a GeneralizedAutomaton from a, labeling every edge with
// the single-symbol Word built from its symbol.
func CopyOf(a *automaton.Automaton, b *Builder) *GeneralizedAutomaton {
	g := newGeneralizedAutomaton(b)
	stateOf := map[*automaton.State]*genState{}
	for _, s := range a.States() {
		gs := g.getOrCreate(s.Name())
		gs.isInitial = s.Start()
		gs.isTerminal = s.Final()
		stateOf[s] = gs
	}
	for _, e := range a.Edges() {
		g.addEdge(stateOf[e.Source()], stateOf[e.Sink()], b.Word(string(e.Symbol())))
	}
	return g
}

// ElimCallback is invoked after each state-elimination step: stepName is
// "start", "create-initial-terminal", or "remove-node-<name>". A non-nil
// error aborts the conversion.
type ElimCallback func(g *GeneralizedAutomaton, stepName string) error

// ErrNoPath is returned by ToRegex/ToRegexWithConfig when the automaton
// has no start states or no final states at all. When start and final
// states exist but no path connects them, the language is simply empty
// and the Empty regex is returned instead.
var ErrNoPath = errors.New("regex: no path between start and final states")

// ToRegex converts a into an equivalent RegularExpression by state
// elimination, using b as the tree builder.
func ToRegex(a *automaton.Automaton, b *Builder) (*RegularExpression, error) {
	return ToRegexWithConfig(a, b, nil)
}

// ToRegexWithConfig is ToRegex with an optional step-by-step callback
// hook, useful for tracing or rendering each elimination step.
func ToRegexWithConfig(a *automaton.Automaton, b *Builder, cb ElimCallback) (*RegularExpression, error) {
	if cb == nil {
		cb = func(*GeneralizedAutomaton, string) error { return nil }
	}

	g := CopyOf(a, b)
	if err := cb(g, "start"); err != nil {
		return nil, fmt.Errorf("regex: elimination callback for %q: %w", "start", err)
	}

	initial := g.getOrCreate("__initial__")
	terminal := g.getOrCreate("__terminal__")
	eps := b.Word("")

	var hadInitial, hadTerminal bool
	for s := range g.states {
		if s == initial || s == terminal {
			continue
		}
		if s.isInitial {
			hadInitial = true
			g.addEdge(initial, s, eps)
			s.isInitial = false
		}
		if s.isTerminal {
			hadTerminal = true
			g.addEdge(s, terminal, eps)
			s.isTerminal = false
		}
	}
	initial.isInitial = true
	terminal.isTerminal = true

	if !hadInitial || !hadTerminal {
		return nil, ErrNoPath
	}

	if err := cb(g, "create-initial-terminal"); err != nil {
		return nil, fmt.Errorf("regex: elimination callback for %q: %w", "create-initial-terminal", err)
	}

	for len(g.states) > 2 {
		var order []*genState
		for s := range g.states {
			if s != initial && s != terminal {
				order = append(order, s)
			}
		}
		sort.Slice(order, func(i, j int) bool { return order[i].name < order[j].name })

		for _, node := range order {
			if _, ok := g.states[node]; !ok {
				continue // already removed by an earlier iteration
			}

			var loop *RegularExpression
			var inEdges, outEdges []*genEdge
			for _, e := range node.edgesIn {
				if e.source == node {
					if loop == nil {
						loop = e.label
					} else {
						loop = b.Sum(loop, e.label)
					}
					continue
				}
				inEdges = append(inEdges, e)
			}
			for _, e := range node.edgesOut {
				if e.sink == node {
					continue
				}
				outEdges = append(outEdges, e)
			}

			middle := eps
			if loop != nil {
				middle = b.Star(loop)
			}
			for _, in := range inEdges {
				for _, out := range outEdges {
					label := b.Concat(b.Concat(in.label, middle), out.label)
					g.addEdge(in.source, out.sink, label)
				}
			}

			g.removeState(node)

			stepName := fmt.Sprintf("remove-node-%s", node.name)
			if err := cb(g, stepName); err != nil {
				return nil, fmt.Errorf("regex: elimination callback for %q: %w", stepName, err)
			}
		}
	}

	var result *RegularExpression
	for _, e := range initial.edgesOut {
		if e.sink != terminal {
			continue
		}
		if result == nil {
			result = e.label
		} else {
			result = b.Sum(result, e.label)
		}
	}
	if result == nil {
		return b.Empty(), nil
	}
	return result, nil
}
