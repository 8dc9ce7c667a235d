package grammar

import (
	"github.com/ava12/gdl"
)

// Error codes used by grammar:
const (
	ErrEmptyName = gdl.GrammarErrors + iota
	ErrDuplicateName
	ErrBadPattern
	ErrUnknownPart
	ErrUnknownRule
)

func emptyNameError() *gdl.Error {
	return gdl.FormatError(ErrEmptyName, "grammar definition with an empty name")
}

func duplicateNameError(name string) *gdl.Error {
	return gdl.FormatError(ErrDuplicateName, "name %q already defined", name)
}

func patternError(name, pattern string, e error) *gdl.Error {
	return gdl.FormatError(ErrBadPattern, "incorrect pattern %q for lexeme %q (%s)", pattern, name, e.Error())
}

func unknownPartError(rule, part string) *gdl.Error {
	return gdl.FormatError(ErrUnknownPart, "rule %q references undeclared name %q", rule, part)
}

// UnknownRuleError reports a reference to a rule absent from the grammar,
// e.g. an unknown entry rule name passed to the parser.
func UnknownRuleError(name string) *gdl.Error {
	return gdl.FormatError(ErrUnknownRule, "unknown rule %q", name)
}
