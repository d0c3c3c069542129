package rtree

import (
	"strings"

	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/evaluator"
	"github.com/rsmlang/rojo-rsml/internal/token"
)

// Build runs a single forward pass over the token stream, turning it into
// an arena of rule nodes. Node 0 is the root sheet.
func Build(toks []token.Token, tables *colors.Tables) *Arena[RuleNode] {
	arena := &Arena[RuleNode]{}
	root := arena.Push(newRuleNode(0))
	current := root

	pos := 0
	for pos < len(toks) {
		pos = step(toks, pos, arena, &current, tables)
	}
	return arena
}

func step(toks []token.Token, pos int, arena *Arena[RuleNode], current *int, tables *colors.Tables) int {
	t := toks[pos]

	switch {
	case t.Kind == token.Text:
		return dispatchText(toks, pos, arena, current, tables)

	case isSelectorStart(t):
		return openSelector(toks, pos, arena, current)

	case t.Kind == token.PriorityDeclaration:
		return dispatchPriority(toks, pos, arena, *current)

	case t.Kind == token.ScopeClose:
		*current = arena.Get(*current).ParentIdx
		return pos + 1

	case t.Kind == token.CommentMultiStart:
		return skipMultiComment(toks, pos)

	default:
		return pos + 1
	}
}

func dispatchText(toks []token.Token, pos int, arena *Arena[RuleNode], current *int, tables *colors.Tables) int {
	key := toks[pos].Str
	kind := toks[pos].TextKind
	next := pos + 1

	if next < len(toks) && toks[next].Kind == token.Equals {
		valuePos := next + 1
		v, after := evaluator.Eval(toks, valuePos, key, tables)
		if !v.Ok() {
			return after
		}
		node := arena.Get(*current)
		switch kind {
		case token.Variable:
			node.Variables[key] = v
		case token.PseudoProperty:
			node.PseudoProperties[key] = v
		default:
			node.Properties[key] = v
		}
		return after
	}

	return openSelector(toks, pos, arena, current)
}

// isSelectorStart covers selector runs that begin with ">" or ">>" rather
// than an identifier — Text-kind leading sigils (#x, .x, :x, ::x) are
// already routed through dispatchText since they share token.Text's Kind.
func isSelectorStart(t token.Token) bool {
	return t.Kind == token.ScopeToChildren || t.Kind == token.ScopeToDescendants
}

// openSelector collects the variable-length token run starting at pos (a
// selector, "Selector string formation") up to and
// including the ScopeOpen, creates a child node, and moves current to it.
func openSelector(toks []token.Token, pos int, arena *Arena[RuleNode], current *int) int {
	var parts []string
	i := pos
	for i < len(toks) && toks[i].Kind != token.ScopeOpen {
		parts = append(parts, selectorPart(toks[i]))
		i++
	}
	if i >= len(toks) {
		// Unterminated selector run: nothing left to do, stop advancing
		// past end of input.
		return i
	}
	selector := strings.Join(filterEmpty(parts), " ")

	node := newRuleNode(*current)
	childIdx := arena.Push(node)
	parent := arena.Get(*current)
	parent.Rules[selector] = append(parent.Rules[selector], childIdx)
	parent.Children = append(parent.Children, ChildRef{Selector: selector, Idx: childIdx})
	*current = childIdx

	return i + 1 // past ScopeOpen
}

func filterEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func selectorPart(t token.Token) string {
	switch t.Kind {
	case token.Text:
		switch t.TextKind {
		case token.Plain:
			return t.Str
		case token.SelectorName:
			return "#" + t.Str
		case token.TagOrEnum:
			return "." + t.Str
		case token.StateOrEnum:
			return ":" + t.Str
		case token.Pseudo:
			return "::" + t.Str
		}
		return ""
	case token.ScopeToChildren:
		return ">"
	case token.ScopeToDescendants:
		return ">>"
	case token.ListDelimiter:
		return ","
	default:
		return ""
	}
}

func dispatchPriority(toks []token.Token, pos int, arena *Arena[RuleNode], current int) int {
	next := pos + 1
	if next >= len(toks) || toks[next].Kind != token.Number {
		return next
	}
	var n int32
	if toks[next].Num >= 0 {
		n = int32(toks[next].Num + 0.5)
	} else {
		n = -int32(-toks[next].Num + 0.5)
	}
	arena.Get(current).Priority = &n
	return next + 1
}

func skipMultiComment(toks []token.Token, pos int) int {
	i := pos + 1
	for i < len(toks) && toks[i].Kind != token.CommentMultiEnd {
		i++
	}
	if i < len(toks) {
		i++
	}
	return i
}
