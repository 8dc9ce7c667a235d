// Package report renders location-annotated parse failures: a header with
// file:line:column precision, the offending source line, and a caret pointing
// at the failing column. Lexical and syntactic failures share the rendering;
// only message and location differ.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/source"
)

var (
	locationStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	messageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))
)

// Format renders the fixed three-line message:
//
//	Parsing failed at <path>:<line>:<col>: <message>
//	<offending source line>
//	<col-1 spaces>^
//
// The last two lines are dropped when the error carries no line reachable in src.
func Format(e *gdl.Error, src *source.Source) string {
	header := fmt.Sprintf("Parsing failed at %s:%d:%d: %s\n", e.SourceName, e.Line, e.Col, e.Message)
	line, found := contextLine(e, src)
	if !found {
		return header
	}

	return header + line + "\n" + strings.Repeat(" ", e.Col-1) + "^\n"
}

func contextLine(e *gdl.Error, src *source.Source) (string, bool) {
	if src == nil || e.Line < 1 || e.Line > src.LineCount() || e.Col < 1 {
		return "", false
	}

	return src.Line(e.Line), true
}

// Reporter writes formatted failures to a sink, styling them when the sink is
// a terminal. Styling never changes the rendered text itself.
type Reporter struct {
	w     io.Writer
	color bool
}

// New creates a Reporter; colors are enabled only when w is a terminal.
func New(w io.Writer) *Reporter {
	color := false
	if f, isFile := w.(*os.File); isFile {
		color = isatty.IsTerminal(f.Fd())
	}
	return &Reporter{w, color}
}

// WithColor overrides terminal detection.
func (r *Reporter) WithColor(color bool) *Reporter {
	return &Reporter{r.w, color}
}

// Report renders the failure to the sink.
func (r *Reporter) Report(e *gdl.Error, src *source.Source) {
	if !r.color {
		io.WriteString(r.w, Format(e, src))
		return
	}

	loc := fmt.Sprintf("%s:%d:%d", e.SourceName, e.Line, e.Col)
	io.WriteString(r.w, "Parsing failed at "+locationStyle.Render(loc)+": "+messageStyle.Render(e.Message)+"\n")
	line, found := contextLine(e, src)
	if found {
		io.WriteString(r.w, line+"\n"+strings.Repeat(" ", e.Col-1)+caretStyle.Render("^")+"\n")
	}
}
