// Package source defines source documents, positions, and spans used by lexer and parser.
package source

import (
	"bytes"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// Source represents a loaded document: its name (usually a file path),
// its raw content, and an indexable sequence of lines split on line feeds.
// Immutable once created.
type Source struct {
	name string
	content []byte
	lineStarts []int
}

func New (name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt, lineCnt)
	s.lineStarts[0] = 0
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// Load reads a file into a Source. I/O failures are returned as-is.
func Load (name string) (*Source, error) {
	content, e := os.ReadFile(name)
	if e != nil {
		return nil, e
	}

	return New(name, content), nil
}

func (s *Source) Name () string {
	return s.name
}

func (s *Source) Content () []byte {
	return s.content
}

func (s *Source) Len () int {
	return len(s.content)
}

func (s *Source) LineCount () int {
	return len(s.lineStarts)
}

// Line returns the text of the given 1-indexed line without the trailing line feed.
// Returns "" for line numbers out of range.
func (s *Source) Line (line int) string {
	if line < 1 || line > len(s.lineStarts) {
		return ""
	}

	start := s.lineStarts[line - 1]
	end := len(s.content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}
	return string(s.content[start : end])
}

// LineCol converts a byte offset to a 1-indexed line and column.
// Columns count runes, not bytes.
func (s *Source) LineCol (pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func (i int) bool {
		return s.lineStarts[i] > pos
	}) - 1

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart : pos]) + 1
}

// Pos represents a location in a source document: 1-indexed line and column.
// It is an immutable value sharing a non-owning reference to its document.
type Pos struct {
	src *Source
	line, col int
}

func NewPos (src *Source, line, col int) Pos {
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	return Pos{src, line, col}
}

func (p Pos) Source () *Source {
	return p.src
}

func (p Pos) SourceName () string {
	if p.src == nil {
		return ""
	} else {
		return p.src.Name()
	}
}

func (p Pos) Line () int {
	return p.line
}

func (p Pos) Col () int {
	return p.col
}

// Before reports whether p precedes q in the document.
func (p Pos) Before (q Pos) bool {
	return p.line < q.line || (p.line == q.line && p.col < q.col)
}

// After reports whether p follows q in the document.
func (p Pos) After (q Pos) bool {
	return q.Before(p)
}

// Span represents a contiguous region of one document, from start (inclusive)
// to end (exclusive). Both endpoints must belong to the same document.
type Span struct {
	start, end Pos
}

// NewSpan builds a span between two positions.
// Returns an error if the positions belong to different documents.
func NewSpan (start, end Pos) (Span, error) {
	if start.src != end.src {
		return Span{}, spanSourcesError()
	}

	return Span{start, end}, nil
}

func (s Span) Source () *Source {
	return s.start.src
}

func (s Span) Start () Pos {
	return s.start
}

func (s Span) End () Pos {
	return s.end
}

// Read extracts the text covered by the span, reading the document's lines
// between start and end: a partial first and last line, full interior lines.
// Reading a zero-length span yields "".
func (s Span) Read () string {
	src := s.start.src
	if src == nil || !s.start.Before(s.end) {
		return ""
	}

	if s.start.line == s.end.line {
		return cutLine(src.Line(s.start.line), s.start.col, s.end.col)
	}

	var b strings.Builder
	b.WriteString(cutLine(src.Line(s.start.line), s.start.col, -1))
	for line := s.start.line + 1; line < s.end.line; line++ {
		b.WriteByte('\n')
		b.WriteString(src.Line(line))
	}
	b.WriteByte('\n')
	b.WriteString(cutLine(src.Line(s.end.line), 1, s.end.col))
	return b.String()
}

// cutLine returns the part of a line between two 1-indexed rune columns,
// from (inclusive) to upto (exclusive); upto < 0 means the end of the line.
func cutLine (line string, from, upto int) string {
	runes := []rune(line)
	if from < 1 {
		from = 1
	}
	if from > len(runes) + 1 {
		from = len(runes) + 1
	}
	if upto < 1 || upto > len(runes) + 1 {
		upto = len(runes) + 1
	}
	if upto < from {
		upto = from
	}
	return string(runes[from - 1 : upto - 1])
}

// Between builds a span between two line/column positions of one document.
func Between (src *Source, startLine, startCol, endLine, endCol int) Span {
	return Span{NewPos(src, startLine, startCol), NewPos(src, endLine, endCol)}
}

// Join computes the minimal span covering all given spans: the earliest
// (line, col) becomes the new start and the latest (line, col) the new end,
// regardless of list order. All spans must belong to the same document;
// joining spans of two distinct documents is an error, as is an empty list.
func Join (spans ...Span) (Span, error) {
	if len(spans) == 0 {
		return Span{}, joinEmptyError()
	}

	res := spans[0]
	for _, sp := range spans[1 :] {
		if sp.start.src != res.start.src {
			return Span{}, spanSourcesError()
		}

		if sp.start.Before(res.start) {
			res.start = sp.start
		}
		if res.end.Before(sp.end) {
			res.end = sp.end
		}
	}
	return res, nil
}
