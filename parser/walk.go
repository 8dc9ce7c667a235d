package parser

import (
	"github.com/ava12/gdl/grammar"
	"github.com/ava12/gdl/lexer"
)

// Walk traverses a node and its visible descendants depth-first in source
// order, calling fn for every node. fn returning false prunes the subtree.
func Walk(n grammar.Node, fn func(grammar.Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.Children() {
		Walk(c, fn)
	}
}

// Tokens collects the visible leaf tokens of a subtree in source order.
func Tokens(n grammar.Node) []*lexer.Token {
	var res []*lexer.Token
	Walk(n, func(nd grammar.Node) bool {
		if t, isToken := nd.(*lexer.Token); isToken {
			res = append(res, t)
		}
		return true
	})
	return res
}

// Find returns the first descendant (or n itself) with the given type name, nil if none.
func Find(n grammar.Node, typeName string) grammar.Node {
	var res grammar.Node
	Walk(n, func(nd grammar.Node) bool {
		if res == nil && nd.TypeName() == typeName {
			res = nd
		}
		return res == nil
	})
	return res
}
