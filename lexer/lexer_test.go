package lexer

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/internal/test"
	"github.com/ava12/gdl/source"
)

func simpleGrammar (t *testing.T) *grammar.Grammar {
	g, e := grammar.New(
		grammar.Lexeme{Name: "number", Pattern: `\d+`},
		grammar.Lexeme{Name: "name", Pattern: `[a-z_][a-z0-9_]*`},
		grammar.Lexeme{Name: "string", Pattern: `'.*?'`},
		grammar.Lexeme{Name: "space", Pattern: `\s+`, Ignore: true},
	)
	if e != nil {
		t.Fatalf("unexpected grammar error: %v", e)
	}
	return g
}

func TestEmpty (t *testing.T) {
	l := New(simpleGrammar(t))
	tokens, e := l.Tokenize(source.New("", []byte("")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 0, len(tokens))
}

func TestTokenSamples (t *testing.T) {
	l := New(simpleGrammar(t))
	tokens, e := l.Tokenize(source.New("", []byte("123 foo 'bar'")))
	test.Assert(t, e == nil, "unexpected error %v", e)

	expected := []struct {
		typeName, text string
		col int
		ignored bool
	}{
		{"number", "123", 1, false},
		{"space", " ", 4, true},
		{"name", "foo", 5, false},
		{"space", " ", 8, true},
		{"string", "'bar'", 9, false},
	}
	test.ExpectInt(t, len(expected), len(tokens))
	for i, exp := range expected {
		tok := tokens[i]
		test.ExpectString(t, exp.typeName, tok.TypeName())
		test.ExpectString(t, exp.text, tok.Text())
		test.ExpectInt(t, 1, tok.Line())
		test.ExpectInt(t, exp.col, tok.Col())
		test.ExpectBool(t, exp.ignored, tok.Ignored())
	}
}

func TestFullCoverage (t *testing.T) {
	l := New(simpleGrammar(t))
	content := "123 foo\n'multi\nline'  bar\n"
	src := source.New("", []byte(content))
	tokens, e := l.Tokenize(src)
	test.Assert(t, e == nil, "unexpected error %v", e)

	var joined strings.Builder
	for _, tok := range tokens {
		joined.WriteString(tok.Text())
		test.ExpectString(t, tok.Text(), tok.Span().Read())
	}
	test.ExpectString(t, content, joined.String())
}

func TestDeclarationOrderWins (t *testing.T) {
	g, e := grammar.New(
		grammar.Lexeme{Name: "short", Pattern: `ab`},
		grammar.Lexeme{Name: "long", Pattern: `abc`},
		grammar.Lexeme{Name: "rest", Pattern: `c`},
	)
	test.Assert(t, e == nil, "unexpected grammar error: %v", e)

	tokens, e := New(g).Tokenize(source.New("", []byte("ababc")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 3, len(tokens))
	test.ExpectString(t, "short", tokens[0].TypeName())
	test.ExpectString(t, "short", tokens[1].TypeName())
	test.ExpectString(t, "rest", tokens[2].TypeName())

	g, e = grammar.New(
		grammar.Lexeme{Name: "long", Pattern: `abc`},
		grammar.Lexeme{Name: "short", Pattern: `ab`},
	)
	test.Assert(t, e == nil, "unexpected grammar error: %v", e)

	tokens, e = New(g).Tokenize(source.New("", []byte("abcab")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 2, len(tokens))
	test.ExpectString(t, "long", tokens[0].TypeName())
	test.ExpectString(t, "short", tokens[1].TypeName())
}

func TestMultiLineToken (t *testing.T) {
	l := New(simpleGrammar(t))
	tokens, e := l.Tokenize(source.New("", []byte("'one\ntwo\nthree' foo")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 3, len(tokens))

	str := tokens[0]
	test.ExpectString(t, "string", str.TypeName())
	test.ExpectInt(t, 1, str.Span().Start().Line())
	test.ExpectInt(t, 1, str.Span().Start().Col())
	test.ExpectInt(t, 3, str.Span().End().Line())
	test.ExpectInt(t, 7, str.Span().End().Col())

	name := tokens[2]
	test.ExpectString(t, "name", name.TypeName())
	test.ExpectInt(t, 3, name.Line())
	test.ExpectInt(t, 8, name.Col())
}

func TestWrongChar (t *testing.T) {
	l := New(simpleGrammar(t))
	_, e := l.Tokenize(source.New("sample", []byte("foo\n  ?bar")))
	test.ExpectErrorCode(t, ErrWrongChar, e)
	test.ExpectPos(t, 2, 3, e)
	test.Assert(t, strings.Contains(e.Error(), "?"), "expected offending char in message, got %q", e.Error())
}

func TestRuneColumns (t *testing.T) {
	g, e := grammar.New(
		grammar.Lexeme{Name: "word", Pattern: `[^\s]+`},
		grammar.Lexeme{Name: "space", Pattern: `\s+`, Ignore: true},
	)
	test.Assert(t, e == nil, "unexpected grammar error: %v", e)

	tokens, e := New(g).Tokenize(source.New("", []byte("мир foo")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 3, len(tokens))
	test.ExpectInt(t, 5, tokens[2].Col())
}

func TestTokenValue (t *testing.T) {
	g, e := grammar.New(
		grammar.Lexeme{Name: "number", Pattern: `\d+`, Eval: func (n grammar.Node) (any, error) {
			return strconv.Atoi(n.Text())
		}},
		grammar.Lexeme{Name: "name", Pattern: `[a-z]+`},
	)
	test.Assert(t, e == nil, "unexpected grammar error: %v", e)

	tokens, e := New(g).Tokenize(source.New("", []byte("42abc")))
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.ExpectInt(t, 2, len(tokens))

	v, e := tokens[0].Value()
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.Expect(t, v == 42, 42, v)

	v, e = tokens[1].Value()
	test.Assert(t, e == nil, "unexpected error %v", e)
	test.Expect(t, v == "abc", "abc", v)
}
