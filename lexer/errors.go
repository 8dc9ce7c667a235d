package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/source"
)

// Error codes used by lexer:
const (
	// ErrWrongChar indicates that no lexeme matches at current position.
	// Error message contains the rune at that position.
	ErrWrongChar = gdl.LexicalErrors + iota
)

func wrongCharError(src *source.Source, rest []byte, line, col int) *gdl.Error {
	r, _ := utf8.DecodeRune(rest)
	msg := fmt.Sprintf("wrong char \"%c\" (u+%x)", r, r)
	return gdl.NewError(ErrWrongChar, msg, src.Name(), line, col)
}
