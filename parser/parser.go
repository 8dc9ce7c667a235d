// Package parser defines a backtracking recursive descent parser interpreting
// a grammar definition directly, with no intermediate table compilation.
package parser

import (
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/lexer"
	"github.com/ava12/gdl/source"
)

// MaxDepth bounds rule recursion. Pathological self-referential rules over
// long inputs recurse once per matched element, so the bound also limits the
// number of elements a purely self-referential list rule can match.
// Exceeding the bound is a syntax error, not a stack overflow.
const MaxDepth = 4096

// Parser builds clause trees from source documents. Parser itself is
// immutable and safe for concurrent use: every Parse call keeps its own
// bookkeeping, so one Parser may serve many documents and goroutines.
type Parser struct {
	grammar   *grammar.Grammar
	tokenizer *lexer.Tokenizer
}

// New creates new Parser for the given grammar.
func New(g *grammar.Grammar) *Parser {
	return &Parser{grammar: g, tokenizer: lexer.New(g)}
}

// Parse tokenizes the whole document and matches the token sequence against
// the entry rule. The entire input must reduce to exactly one match of the
// entry rule: a failed match is a syntax error at the first token (or at 1:1
// for empty input), unconsumed tokens are a syntax error at the first
// leftover token. An entry name absent from the grammar is reported before
// any tokenization occurs. A parse is atomic: it either returns a complete
// tree or an error, never a partial result.
func (p *Parser) Parse(src *source.Source, entry string) (*Clause, error) {
	if _, found := p.grammar.Rule(entry); !found {
		return nil, grammar.UnknownRuleError(entry)
	}

	tokens, e := p.tokenizer.Tokenize(src)
	if e != nil {
		return nil, e
	}

	r := &run{grammar: p.grammar, src: src}
	node, rest, ok := r.attempt(tokens, entry, 0)
	if r.err != nil {
		return nil, r.err
	}
	if !ok {
		return nil, noMatchError(src, tokens, entry)
	}

	for len(rest) > 0 && rest[0].Ignored() {
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return nil, unexpectedTokenError(rest[0])
	}

	return node.(*Clause), nil
}

// run holds the bookkeeping of a single Parse call. Nothing here is shared
// between calls: the association between a clause and its leftover tokens is
// carried in attempt return values only.
type run struct {
	grammar *grammar.Grammar
	src     *source.Source
	err     error
}

// attempt tries to match a prefix of toks against the named rule, returning
// the built node and the leftover token slice. A failed attempt is a normal
// negative result, not an error: the caller tries its next option or fails
// upward. The caller is responsible for trying a direct token match for a
// part name before recursing, so a name that is not a rule simply yields no
// match here.
func (r *run) attempt(toks []*lexer.Token, typeName string, depth int) (grammar.Node, []*lexer.Token, bool) {
	if depth > MaxDepth {
		if r.err == nil {
			r.err = tooDeepError(r.src, toks)
		}
		return nil, nil, false
	}

	rule, found := r.grammar.Rule(typeName)
	if !found {
		return nil, nil, false
	}

options:
	for _, option := range rule.Options {
		rem := toks
		parts := make([]grammar.Node, 0, len(option))
		for _, part := range option {
			for len(rem) > 0 && rem[0].Ignored() {
				parts = append(parts, rem[0])
				rem = rem[1:]
			}

			if len(rem) > 0 && rem[0].TypeName() == part {
				parts = append(parts, rem[0])
				rem = rem[1:]
				continue
			}

			sub, rest, ok := r.attempt(rem, part, depth+1)
			if !ok {
				// partial progress within a failed option is discarded
				continue options
			}

			if cl, isClause := sub.(*Clause); isClause && cl.rule == rule {
				// the rule matched itself: splice the sub-clause's full part
				// list (ignored tokens included) instead of nesting it, so
				// self-referential repetition yields a flat child list
				parts = append(parts, cl.parts...)
			} else {
				parts = append(parts, sub)
			}
			rem = rest
		}

		return newClause(rule, parts, r.spanOf(parts, rem)), rem, true
	}

	return nil, nil, false
}

// spanOf computes the minimal span covering all matched parts. An option that
// matched no parts gets a zero-length span at the next unconsumed position.
func (r *run) spanOf(parts []grammar.Node, rem []*lexer.Token) source.Span {
	if len(parts) == 0 {
		var line, col int
		if len(rem) > 0 {
			start := rem[0].Span().Start()
			line, col = start.Line(), start.Col()
		} else {
			line, col = r.src.LineCol(r.src.Len())
		}
		return source.Between(r.src, line, col, line, col)
	}

	start := parts[0].Span().Start()
	end := parts[0].Span().End()
	for _, p := range parts[1:] {
		sp := p.Span()
		if sp.Start().Before(start) {
			start = sp.Start()
		}
		if end.Before(sp.End()) {
			end = sp.End()
		}
	}
	return source.Between(r.src, start.Line(), start.Col(), end.Line(), end.Col())
}
