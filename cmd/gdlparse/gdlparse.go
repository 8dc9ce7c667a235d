/*
gdlparse is a console utility applying a grammar description file to source
files. Usage is

	gdlparse -g <grammar.yaml> parse [-e <rule>] <file>
	gdlparse -g <grammar.yaml> tokens <file>

parse builds the parse tree of a file and dumps it, one node per line with its
covered source region; tokens lists the token sequence instead. Failures are
rendered with the offending line and a caret pointer.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/langdef"
	"github.com/ava12/gdl/lexer"
	"github.com/ava12/gdl/parser"
	"github.com/ava12/gdl/report"
	"github.com/ava12/gdl/source"
)

var (
	grammarFile string
	entryRule   string
)

func main() {
	root := &cobra.Command{
		Use:           "gdlparse",
		Short:         "apply a grammar description to source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&grammarFile, "grammar", "g", "", "grammar description file (YAML)")
	_ = root.MarkPersistentFlagRequired("grammar")
	root.AddCommand(parseCmd(), tokensCmd())

	if root.Execute() != nil {
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "build and dump the parse tree of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, entry, e := langdef.ParseFile(grammarFile)
			if e != nil {
				return render(e, nil)
			}

			if entryRule != "" {
				entry = entryRule
			}
			if entry == "" {
				return render(errors.New("no entry rule: pass -e or declare entry in the grammar file"), nil)
			}

			src, e := source.Load(args[0])
			if e != nil {
				return render(e, nil)
			}

			tree, e := parser.New(g).Parse(src, entry)
			if e != nil {
				return render(e, src)
			}

			dump(cmd.OutOrStdout(), tree, 0)
			return nil
		},
	}
	cmd.Flags().StringVarP(&entryRule, "entry", "e", "", "entry rule name, overrides the grammar file")
	return cmd
}

func tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "list the token sequence of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, e := langdef.ParseFile(grammarFile)
			if e != nil {
				return render(e, nil)
			}

			src, e := source.Load(args[0])
			if e != nil {
				return render(e, nil)
			}

			tokens, e := lexer.New(g).Tokenize(src)
			if e != nil {
				return render(e, src)
			}

			w := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintf(w, "%d:%d %s %q\n", t.Line(), t.Col(), t.TypeName(), t.Text())
			}
			return nil
		},
	}
}

// render reports an error to stderr, using the caret rendering for located
// failures, and passes the error on for the exit code.
func render(e error, src *source.Source) error {
	var ge *gdl.Error
	if errors.As(e, &ge) {
		report.New(os.Stderr).Report(ge, src)
	} else {
		fmt.Fprintln(os.Stderr, e.Error())
	}
	return e
}

func dump(w io.Writer, n grammar.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	sp := n.Span()
	loc := fmt.Sprintf("%d:%d-%d:%d", sp.Start().Line(), sp.Start().Col(), sp.End().Line(), sp.End().Col())

	if t, isToken := n.(*lexer.Token); isToken {
		fmt.Fprintf(w, "%s%s %s %q\n", indent, t.TypeName(), loc, t.Text())
		return
	}

	fmt.Fprintf(w, "%s%s %s\n", indent, n.TypeName(), loc)
	for _, c := range n.Children() {
		dump(w, c, depth+1)
	}
}
