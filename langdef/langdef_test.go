package langdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/parser"
	"github.com/ava12/gdl/source"
)

const sumDescription = `
entry: SUM
lexemes:
  - name: NUM
    pattern: '[0-9]+'
  - name: PLUS
    pattern: '\+'
  - name: WS
    pattern: '\s+'
    ignore: true
rules:
  - name: SUM
    options:
      - [NUM, PLUS, NUM]
`

func TestParse(t *testing.T) {
	g, entry, err := Parse([]byte(sumDescription))
	require.NoError(t, err)
	assert.Equal(t, "SUM", entry)

	lexemes := g.Lexemes()
	require.Len(t, lexemes, 3)
	assert.Equal(t, "NUM", lexemes[0].Name)
	assert.True(t, lexemes[2].Ignore)

	tree, err := parser.New(g).Parse(source.New("", []byte("12 + 7")), entry)
	require.NoError(t, err)
	v, err := tree.Value()
	require.NoError(t, err)
	assert.Equal(t, []any{"12", "+", "7"}, v)
}

func TestParseWithoutEntry(t *testing.T) {
	g, entry, err := Parse([]byte(`
lexemes:
  - name: ID
    pattern: '[a-z]+'
rules:
  - name: S
    options:
      - [ID]
`))
	require.NoError(t, err)
	assert.Equal(t, "", entry)
	_, found := g.Rule("S")
	assert.True(t, found)
}

func TestParseErrors(t *testing.T) {
	var ge *gdl.Error

	_, _, err := Parse([]byte("lexemes: ["))
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrDescription, ge.Code)

	_, _, err = Parse([]byte(`
lexemes:
  - name: ID
    pattern: '[a-z]+'
rules:
  - name: S
    options:
      - [ID, FOO]
`))
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, grammar.ErrUnknownPart, ge.Code)

	_, _, err = Parse([]byte(`
entry: NOPE
lexemes:
  - name: ID
    pattern: '[a-z]+'
rules:
  - name: S
    options:
      - [ID]
`))
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, grammar.ErrUnknownRule, ge.Code)
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sum.yaml")
	require.NoError(t, os.WriteFile(name, []byte(sumDescription), 0644))

	_, entry, err := ParseFile(name)
	require.NoError(t, err)
	assert.Equal(t, "SUM", entry)

	_, _, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
