// Package grammar defines declarative grammar descriptions: lexical rules
// (lexemes), syntax rules, and construction-time consistency validation.
package grammar

import (
	"regexp"

	"github.com/ava12/gdl/source"
)

// Node is a located, typed element of a parse result: either a token produced
// by the lexer or a clause produced by the parser. It is the uniform view used
// for generic tree walking and value extraction.
type Node interface {
	// TypeName returns the name of the lexeme or rule this node was matched by.
	TypeName() string
	// Span returns the source region covered by the node, including any ignored tokens.
	Span() source.Span
	// Text returns the covered source text.
	Text() string
	// Ignored reports whether the node is excluded from its parent's visible children.
	Ignored() bool
	// Children returns visible child nodes, nil for tokens.
	Children() []Node
	// Value applies the originating lexeme's or rule's evaluation function.
	Value() (any, error)
}

// Evaluate maps a matched node to a semantic value.
// Lexemes and rules without an explicit function use TextValue and ChildValues.
type Evaluate = func(Node) (any, error)

// TextValue is the default lexeme evaluation: the matched text verbatim.
func TextValue(n Node) (any, error) {
	return n.Text(), nil
}

// ChildValues is the default rule evaluation: the ordered list of the
// visible children's values.
func ChildValues(n Node) (any, error) {
	children := n.Children()
	res := make([]any, len(children))
	for i, c := range children {
		v, e := c.Value()
		if e != nil {
			return nil, e
		}

		res[i] = v
	}
	return res, nil
}

// Lexeme describes a lexical rule: a pattern matched anchored at the current
// read position. Declaration order is a semantic part of the grammar: the
// first lexeme matching at the cursor wins, not the longest one, so e.g.
// keyword lexemes must be declared before a generic identifier lexeme.
type Lexeme struct {
	Name string

	// Pattern is a regular expression; it is compiled with the s flag set,
	// so multi-line lexemes (block comments, strings) may use ".".
	Pattern string

	// Ignore marks tokens that contribute to span coverage but are excluded
	// from clause children (whitespace, comments).
	Ignore bool

	// Eval maps a matched token to a semantic value, TextValue if nil.
	Eval Evaluate

	re *regexp.Regexp
}

// Re returns the compiled pattern; nil until the lexeme is part of a Grammar.
func (l *Lexeme) Re() *regexp.Regexp {
	return l.re
}

// Rule describes a syntax rule: one or more ordered options, each an ordered
// list of part names referencing either a lexeme or another rule. Options are
// tried in declaration order; the first fully matching option wins.
type Rule struct {
	Name string

	Options [][]string

	// Eval maps a matched clause to a semantic value, ChildValues if nil.
	Eval Evaluate
}

// Definition is a single grammar element passed to New: a Lexeme or a Rule.
type Definition interface {
	defName() string
}

func (l Lexeme) defName() string {
	return l.Name
}

func (r Rule) defName() string {
	return r.Name
}

// Grammar is an immutable set of lexemes and rules. It may be shared and
// reused across concurrent tokenize/parse calls: all per-parse bookkeeping
// lives in the calls themselves.
type Grammar struct {
	lexemes  []*Lexeme
	lexIndex map[string]*Lexeme
	rules    map[string]*Rule
}

// New builds a grammar from an ordered mix of lexeme and rule definitions.
// Lexeme declaration order is preserved and significant. Construction fails
// if a name is empty or declared twice, a pattern does not compile, or any
// rule option references a name that is neither a lexeme nor a rule.
func New(defs ...Definition) (*Grammar, error) {
	g := &Grammar{
		lexemes:  make([]*Lexeme, 0, len(defs)),
		lexIndex: make(map[string]*Lexeme),
		rules:    make(map[string]*Rule),
	}
	names := make(map[string]bool, len(defs))
	ruleOrder := make([]*Rule, 0, len(defs))

	for _, def := range defs {
		name := def.defName()
		if name == "" {
			return nil, emptyNameError()
		}
		if names[name] {
			return nil, duplicateNameError(name)
		}

		names[name] = true
		switch d := def.(type) {
		case Lexeme:
			re, e := regexp.Compile("(?s:" + d.Pattern + ")")
			if e != nil {
				return nil, patternError(name, d.Pattern, e)
			}

			d.re = re
			g.lexemes = append(g.lexemes, &d)
			g.lexIndex[name] = &d

		case Rule:
			g.rules[name] = &d
			ruleOrder = append(ruleOrder, &d)
		}
	}

	for _, r := range ruleOrder {
		for _, option := range r.Options {
			for _, part := range option {
				if !names[part] {
					return nil, unknownPartError(r.Name, part)
				}
			}
		}
	}

	return g, nil
}

// Lexemes returns all lexemes in declaration order. The result must not be modified.
func (g *Grammar) Lexemes() []*Lexeme {
	return g.lexemes
}

// Lexeme returns the named lexeme, if declared.
func (g *Grammar) Lexeme(name string) (*Lexeme, bool) {
	l, f := g.lexIndex[name]
	return l, f
}

// Rule returns the named rule, if declared.
func (g *Grammar) Rule(name string) (*Rule, bool) {
	r, f := g.rules[name]
	return r, f
}
