package parser

import (
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/source"
)

// Clause is a located tree node produced by successfully matching one option
// of a rule. Immutable once built. Its span covers every matched part
// including ignored tokens, while Children exposes only non-ignored parts.
type Clause struct {
	rule     *grammar.Rule
	parts    []grammar.Node
	children []grammar.Node
	span     source.Span
}

func newClause(rule *grammar.Rule, parts []grammar.Node, span source.Span) *Clause {
	children := make([]grammar.Node, 0, len(parts))
	for _, p := range parts {
		if !p.Ignored() {
			children = append(children, p)
		}
	}
	return &Clause{rule, parts, children, span}
}

// Rule returns the rule this clause was matched by.
func (c *Clause) Rule() *grammar.Rule {
	return c.rule
}

func (c *Clause) TypeName() string {
	return c.rule.Name
}

func (c *Clause) Span() source.Span {
	return c.span
}

// Text reads the covered span from the document, ignored tokens included.
func (c *Clause) Text() string {
	return c.span.Read()
}

func (c *Clause) Ignored() bool {
	return false
}

// Children returns the visible child parts: matched tokens and nested
// clauses, in source order, with ignored tokens filtered out.
func (c *Clause) Children() []grammar.Node {
	return c.children
}

// Value applies the originating rule's evaluation function,
// grammar.ChildValues if none is set.
func (c *Clause) Value() (any, error) {
	if c.rule.Eval != nil {
		return c.rule.Eval(c)
	}

	return grammar.ChildValues(c)
}

func (c *Clause) SourceName() string {
	return c.span.Start().SourceName()
}

func (c *Clause) Line() int {
	return c.span.Start().Line()
}

func (c *Clause) Col() int {
	return c.span.Start().Col()
}
