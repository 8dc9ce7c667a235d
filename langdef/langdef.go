/*
Package langdef converts grammar description files to grammar definitions.

A description is a YAML document listing lexemes and rules. Lexeme order is
preserved: it decides which lexeme wins when several match at one position.
The same description can be used for different purposes (translators,
linters, formatters, etc.). Self-description of the format:

	entry: SUM          # optional: rule to start parsing at
	lexemes:
	  - name: NUM       # unique lexeme name
	    pattern: '\d+'  # regular expression, matched at the cursor
	    ignore: false   # optional: exclude tokens from clause children
	rules:
	  - name: SUM       # unique rule name
	    options:        # ordered alternatives, each a list of part names
	      - [NUM, PLUS, NUM]

Descriptions cannot carry evaluation functions; lexemes and rules built here
use the default text and child-value evaluation.
*/
package langdef

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ava12/gdl/grammar"
)

type lexemeDef struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Ignore  bool   `yaml:"ignore"`
}

type ruleDef struct {
	Name    string     `yaml:"name"`
	Options [][]string `yaml:"options"`
}

type fileDef struct {
	Entry   string      `yaml:"entry"`
	Lexemes []lexemeDef `yaml:"lexemes"`
	Rules   []ruleDef   `yaml:"rules"`
}

// Parse converts a grammar description to a grammar definition and the
// declared entry rule name, "" if the description declares none.
func Parse(content []byte) (*grammar.Grammar, string, error) {
	var def fileDef
	e := yaml.Unmarshal(content, &def)
	if e != nil {
		return nil, "", descriptionError(e)
	}

	defs := make([]grammar.Definition, 0, len(def.Lexemes)+len(def.Rules))
	for _, l := range def.Lexemes {
		defs = append(defs, grammar.Lexeme{Name: l.Name, Pattern: l.Pattern, Ignore: l.Ignore})
	}
	for _, r := range def.Rules {
		defs = append(defs, grammar.Rule{Name: r.Name, Options: r.Options})
	}

	g, e := grammar.New(defs...)
	if e != nil {
		return nil, "", e
	}

	if def.Entry != "" {
		if _, found := g.Rule(def.Entry); !found {
			return nil, "", grammar.UnknownRuleError(def.Entry)
		}
	}

	return g, def.Entry, nil
}

// ParseFile reads and parses a grammar description file.
func ParseFile(name string) (*grammar.Grammar, string, error) {
	content, e := os.ReadFile(name)
	if e != nil {
		return nil, "", e
	}

	return Parse(content)
}
