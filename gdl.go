/*
Package gdl is a small grammar-definition toolkit: a declarative grammar
(lexemes plus syntax rules) is interpreted directly to tokenize source text
and build an annotated parse tree via backtracking recursive descent.
Every token and tree node carries precise source locations, so downstream
tooling can report errors with file:line:column precision.

Consists of subpackages:
  - cmd/gdlparse: console utility applying a grammar file to a source file;
  - grammar: declarative grammar definition (lexemes and rules) with
    construction-time validation;
  - langdef: converts grammar description files (YAML) to grammar definitions;
  - lexer: lexical analyzer driven by a grammar's lexemes;
  - parser: backtracking recursive descent parser building clause trees;
  - report: renders location-annotated error messages;
  - source: defines source documents, positions, and spans used everywhere.

Typical usage is:

1. Define a grammar, either in Go with grammar.New or in a YAML file parsed
by the langdef subpackage. The same grammar can be reused for many documents.

2. Optionally attach evaluation functions to lexemes and rules to map matched
text and clauses to semantic values.

3. Call parser.Parse with a source document and an entry rule name; walk the
resulting clause tree or render the returned error with the report subpackage.
*/
package gdl

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar and langdef
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser
	SourceErrors  = 301 // used by source
)

// Error is the error type used by gdl subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message without position information.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos, lexer.Token, and parser.Clause implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
func NewError(code int, msg, name string, line, col int) *Error {
	return &Error{code, msg, name, line, col}
}

// Error returns Error.Message with source name and position appended if provided (non-zero).
func (e *Error) Error() string {
	if e.SourceName != "" && e.Line != 0 && e.Col != 0 {
		return fmt.Sprintf("%s in %s at line %d col %d", e.Message, e.SourceName, e.Line, e.Col)
	}
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
