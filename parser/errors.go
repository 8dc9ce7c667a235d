package parser

import (
	"fmt"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/lexer"
	"github.com/ava12/gdl/source"
)

// Error codes used by parser:
const (
	// ErrNoMatch indicates that the entry rule cannot be matched at all.
	ErrNoMatch = gdl.SyntaxErrors + iota

	// ErrUnexpectedToken indicates tokens left unconsumed after a successful entry match.
	ErrUnexpectedToken

	// ErrTooDeep indicates that rule recursion exceeded MaxDepth.
	ErrTooDeep
)

func noMatchError(src *source.Source, tokens []*lexer.Token, entry string) *gdl.Error {
	msg := fmt.Sprintf("cannot match rule %q", entry)
	if len(tokens) > 0 {
		return gdl.FormatErrorPos(tokens[0], ErrNoMatch, "%s", msg)
	}

	return gdl.NewError(ErrNoMatch, msg, src.Name(), 1, 1)
}

func unexpectedTokenError(t *lexer.Token) *gdl.Error {
	return gdl.FormatErrorPos(t, ErrUnexpectedToken, "unexpected %s token", t.TypeName())
}

func tooDeepError(src *source.Source, tokens []*lexer.Token) *gdl.Error {
	msg := fmt.Sprintf("rule nesting deeper than %d", MaxDepth)
	if len(tokens) > 0 {
		return gdl.FormatErrorPos(tokens[0], ErrTooDeep, "%s", msg)
	}

	return gdl.NewError(ErrTooDeep, msg, src.Name(), 1, 1)
}
