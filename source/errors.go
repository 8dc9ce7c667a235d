package source

import (
	"github.com/ava12/gdl"
)

// Error codes used by source:
const (
	// ErrSpanSources indicates an attempt to build or join spans belonging to different documents.
	ErrSpanSources = gdl.SourceErrors + iota

	// ErrJoinEmpty indicates a span join over an empty span list.
	ErrJoinEmpty
)

func spanSourcesError () *gdl.Error {
	return gdl.FormatError(ErrSpanSources, "cannot combine spans of different sources")
}

func joinEmptyError () *gdl.Error {
	return gdl.FormatError(ErrJoinEmpty, "cannot join an empty span list")
}
