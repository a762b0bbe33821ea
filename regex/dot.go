package regex

import (
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strings"
)

// ToDot renders a GeneralizedAutomaton snapshot (as seen mid-elimination
// by an ElimCallback) as Graphviz dot source, with regex-valued edge
// labels.
func ToDot(g *GeneralizedAutomaton) string {
	var names []string
	for s := range g.states {
		names = append(names, s.name)
	}
	sort.Strings(names)

	var lines []string
	lines = append(lines, "\trankdir = LR;")
	for _, name := range names {
		s := g.nameMap[name]
		for _, e := range s.edgesOut {
			label := e.label.String()
			lines = append(lines, fmt.Sprintf("\t%q -> %q [label=%q];", e.source.name, e.sink.name, label))
		}
	}
	for _, name := range names {
		s := g.nameMap[name]
		if s.isInitial {
			lines = append(lines, fmt.Sprintf("\t%q [shape=point];", s.name+"__initial"))
			lines = append(lines, fmt.Sprintf("\t%q -> %q;", s.name+"__initial", s.name))
		}
		if s.isTerminal {
			lines = append(lines, fmt.Sprintf("\t%q [peripheries=2];", s.name))
		}
	}
	return "digraph g {\n" + strings.Join(lines, "\n") + "\n}\n"
}

// ToSVG shells out to Graphviz's `dot` to render g as an SVG, writing the
// result to output.
func ToSVG(g *GeneralizedAutomaton, output io.Writer) error {
	proc := exec.Command("dot", "-Tsvg")
	proc.Stdin = strings.NewReader(ToDot(g))
	proc.Stdout = output
	return proc.Run()
}

// ToASCII shells out to `graph-easy` to render g as ASCII art, writing the
// result to output.
func ToASCII(g *GeneralizedAutomaton, output io.Writer) error {
	proc := exec.Command("graph-easy")
	proc.Stdin = strings.NewReader(ToDot(g))
	proc.Stdout = output
	return proc.Run()
}
