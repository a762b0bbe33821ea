package regex

import "github.com/tidalf/gofa/automaton"

// ExtRegularExpression extends RegularExpression with the operations that
// have no finite closed form over the plain regex grammar (intersection,
// complement): both are defined via an automaton round-trip and then
// converted back to a tree by state elimination.
type ExtRegularExpression struct {
	*RegularExpression
	builder *Builder
}

// Ext wraps r for use with the extended operations.
func (b *Builder) Ext(r *RegularExpression) *ExtRegularExpression {
	return &ExtRegularExpression{RegularExpression: r, builder: b}
}

// FromAutomaton builds an ExtRegularExpression equivalent to a by running
// state elimination over b's builder.
func FromAutomaton(a *automaton.Automaton, b *Builder) (*ExtRegularExpression, error) {
	re, err := ToRegex(a, b)
	if err != nil {
		return nil, err
	}
	return &ExtRegularExpression{RegularExpression: re, builder: b}, nil
}

// Intersect returns the regular expression for the intersection of r's and
// other's languages, via automaton.Intersect followed by state
// elimination back to a tree.
func (r *ExtRegularExpression) Intersect(other *ExtRegularExpression) (*ExtRegularExpression, error) {
	return FromAutomaton(automaton.Intersect(r.eqAut, other.eqAut).Reduce(), r.builder)
}

// Complement returns the regular expression for the complement of r's
// language over its alphabet, via automaton.Complement followed by state
// elimination back to a tree.
func (r *ExtRegularExpression) Complement() (*ExtRegularExpression, error) {
	return FromAutomaton(r.eqAut.Complement(), r.builder)
}

// Difference returns the regular expression for r's language minus
// other's, via Intersect(r, Complement(other)).
func (r *ExtRegularExpression) Difference(other *ExtRegularExpression) (*ExtRegularExpression, error) {
	comp, err := other.Complement()
	if err != nil {
		return nil, err
	}
	return r.Intersect(comp)
}
