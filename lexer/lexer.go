// Package lexer defines lexical analyzer.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/source"
)

// Tokenizer performs lexical analysis of a source document using the lexemes
// of a grammar. Tokenizer itself is immutable, stateless, and safe for
// concurrent use (i.e. the same Tokenizer instance may be used with different
// documents by different goroutines).
// At every position lexemes are tried in declaration order and the first one
// whose pattern matches exactly at the cursor wins, regardless of match
// length. Every byte of the document must belong to some lexeme.
type Tokenizer struct {
	grammar *grammar.Grammar
}

// New creates new Tokenizer.
func New(g *grammar.Grammar) *Tokenizer {
	return &Tokenizer{grammar: g}
}

// Tokenize produces the ordered token sequence covering the entire document.
// Returns nil and an error if some position matches no lexeme; the error
// carries the location and the offending character.
func (t *Tokenizer) Tokenize(src *source.Source) ([]*Token, error) {
	content := src.Content()
	tokens := make([]*Token, 0, 16)
	pos := 0
	line, col := 1, 1

	for pos < len(content) {
		tok := t.match(src, content, pos, line, col)
		if tok == nil {
			return nil, wrongCharError(src, content[pos:], line, col)
		}

		tokens = append(tokens, tok)
		pos += len(tok.text)
		end := tok.span.End()
		line, col = end.Line(), end.Col()
	}

	return tokens, nil
}

// match tries every lexeme in declaration order at the exact cursor position.
// Empty matches are treated as non-matches, otherwise a lexeme matching ""
// would stall the cursor forever.
func (t *Tokenizer) match(src *source.Source, content []byte, pos, line, col int) *Token {
	rest := content[pos:]
	for _, lx := range t.grammar.Lexemes() {
		loc := lx.Re().FindIndex(rest)
		if loc == nil || loc[0] != 0 || loc[1] <= 0 {
			continue
		}

		text := string(rest[:loc[1]])
		endLine, endCol := advance(text, line, col)
		return NewToken(lx, text, source.Between(src, line, col, endLine, endCol))
	}

	return nil
}

// advance computes the line and column just past the matched text. Embedded
// line breaks reset the column to the length of the tail after the last break.
func advance(text string, line, col int) (int, int) {
	i := strings.LastIndexByte(text, '\n')
	if i < 0 {
		return line, col + utf8.RuneCountInString(text)
	}

	return line + strings.Count(text, "\n"), utf8.RuneCountInString(text[i+1:]) + 1
}
