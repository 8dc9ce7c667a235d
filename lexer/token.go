package lexer

import (
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/source"
)

// Token is a located, typed unit of matched input text.
// Tokens are immutable and live as long as the token sequence they belong to.
type Token struct {
	lexeme *grammar.Lexeme
	text   string
	span   source.Span
}

func NewToken(lexeme *grammar.Lexeme, text string, span source.Span) *Token {
	return &Token{lexeme, text, span}
}

// Lexeme returns the lexeme this token was matched by.
func (t *Token) Lexeme() *grammar.Lexeme {
	return t.lexeme
}

func (t *Token) TypeName() string {
	return t.lexeme.Name
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Span() source.Span {
	return t.span
}

// Ignored mirrors the originating lexeme's Ignore flag.
func (t *Token) Ignored() bool {
	return t.lexeme.Ignore
}

// Children always returns nil: tokens are leaves.
func (t *Token) Children() []grammar.Node {
	return nil
}

// Value applies the originating lexeme's evaluation function,
// grammar.TextValue if none is set.
func (t *Token) Value() (any, error) {
	if t.lexeme.Eval != nil {
		return t.lexeme.Eval(t)
	}

	return grammar.TextValue(t)
}

func (t *Token) SourceName() string {
	return t.span.Start().SourceName()
}

func (t *Token) Line() int {
	return t.span.Start().Line()
}

func (t *Token) Col() int {
	return t.span.Start().Col()
}
