// Package rsml is the public entry point for the RSML front-end: Lex and
// Parse, plus a reference Sheet walker that implements the tree-to-instance
// translator contract. Shipping the walker next to the parser saves every
// caller from re-deriving the arena-walking rules themselves.
package rsml

import (
	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/lexer"
	"github.com/rsmlang/rojo-rsml/internal/rtree"
	"github.com/rsmlang/rojo-rsml/internal/token"
)

// Token re-exports the lexer's token type so callers never need to import
// internal/token directly.
type Token = token.Token

// Lex tokenizes source. It is a pure function: the same source always
// produces the same token stream, and it never fails — unrecognised bytes
// are silently skipped.
func Lex(source string) []Token {
	return lexer.Tokenize(source)
}

// Tables is the resolved color-name lookup used while parsing. Callers
// that don't need project-specific named colors can use DefaultTables.
type Tables = colors.Tables

// DefaultTables loads the bundled CSS and Tailwind color tables with no
// project overlay.
func DefaultTables() *Tables {
	return colors.Load()
}

// Arena is the parsed rule tree. Node 0 is always the root sheet.
type Arena = rtree.Arena[rtree.RuleNode]

// Node is one scope in the rule tree.
type Node = rtree.RuleNode

// Parse builds a rule-tree arena from a token stream. It is a pure
// function over tokens and tables; node 0 is the root sheet.
func Parse(toks []Token, tables *Tables) *Arena {
	return rtree.Build(toks, tables)
}

// Compile is a convenience wrapper over Lex followed by Parse.
func Compile(source string, tables *Tables) *Arena {
	return Parse(Lex(source), tables)
}
