// Package load reads a simple newline-separated automaton text
// description: edges as "from-symbols-to", an optional "final:name" line
// per final state, and optional "name(x,y)" layout-position suffixes that
// are accepted and discarded. It is a thin adapter over the automaton
// package, kept in its own small package since file I/O and layout are
// not concerns of the core graph algebra.
package load

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/tidalf/gofa/automaton"
)

// ErrMalformed wraps every parse error from this package.
var ErrMalformed = errors.New("load: malformed automaton description")

var (
	finalLineRe = regexp.MustCompile(`^final:(.+)$`)
	edgeLineRe  = regexp.MustCompile(`^(\w+)(?:\([0-9]+,[0-9]+\))?-([^-]+)-(\w+)(?:\([0-9]+,[0-9]+\))?$`)
)

type edgeSpec struct {
	from, to string
	syms     []byte
}

// Parse reads the automaton text format from r: newline-separated, with
// "\r\n" line endings tolerated, a "from-sym[,sym…]-to" line per edge (or
// edge group), "final:s1,s2,…" marking final states, a leading "-" line
// starting a new layout row (ignored, layout is out of scope), and an
// optional "name(x,y)" position suffix on any state name (also ignored).
// The first state name encountered becomes the unique start state.
func Parse(alphabet automaton.Alphabet, r io.Reader) (*automaton.Automaton, error) {
	scanner := bufio.NewScanner(r)

	var order []string
	seen := map[string]bool{}
	remember := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	finalSet := map[string]bool{}
	var edges []edgeSpec
	var startName string

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			continue // layout row marker
		}
		if m := finalLineRe.FindStringSubmatch(line); m != nil {
			for _, raw := range strings.Split(m[1], ",") {
				name := stripPosition(strings.TrimSpace(raw))
				remember(name)
				if startName == "" {
					startName = name
				}
				finalSet[name] = true
			}
			continue
		}
		m := edgeLineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		from, symsField, to := m[1], m[2], m[3]
		syms := strings.Split(symsField, ",")
		symBytes := make([]byte, 0, len(syms))
		for _, s := range syms {
			s = strings.TrimSpace(s)
			if len(s) != 1 {
				return nil, fmt.Errorf("%w: multi-character symbol %q in %q", ErrMalformed, s, line)
			}
			symBytes = append(symBytes, s[0])
		}
		remember(from)
		remember(to)
		if startName == "" {
			startName = from
		}
		edges = append(edges, edgeSpec{from: from, to: to, syms: symBytes})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	a := automaton.New("loaded", alphabet)
	states := make(map[string]*automaton.State, len(order))
	for _, name := range order {
		states[name] = a.AddState(name, name == startName, finalSet[name], nil)
	}
	for _, e := range edges {
		for _, c := range e.syms {
			a.AddEdge(states[e.from], states[e.to], c)
		}
	}
	return a, nil
}

// stripPosition removes a trailing "(x,y)" position suffix from a state
// name, if present.
func stripPosition(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		return name[:i]
	}
	return name
}
