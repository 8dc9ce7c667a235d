package langdef

import (
	"github.com/ava12/gdl"
)

// Error codes used by langdef; offset past the codes of package grammar,
// which shares the class.
const (
	ErrDescription = gdl.GrammarErrors + 50 + iota
)

func descriptionError(e error) *gdl.Error {
	return gdl.FormatError(ErrDescription, "malformed grammar description: %s", e.Error())
}
