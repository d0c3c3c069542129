// Package evaluator implements the RSML value evaluator: a
// recursive-descent pass over a token run that produces a typed value.Value,
// trying each subroutine in priority order and falling through to the next
// on no match, exactly as the tree builder's own top-level dispatcher does
// for token kinds.
package evaluator

import (
	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/token"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

// Eval evaluates the token run starting at pos, returning the produced
// value and the position immediately after the tokens it consumed. key is
// the assignment key used only to disambiguate a bare enum member
// reference (subroutine 4). A returned Value with Ok() false means no value
// was produced. The returned position is then pos itself when nothing
// matched or a tuple was left unterminated, or the position past a tuple
// constructor that yielded no value (an unknown name, or an unnamed tuple
// not holding exactly one Number, UDim or UDim2).
func Eval(toks []token.Token, pos int, key string, tables *colors.Tables) (value.Value, int) {
	if pos >= len(toks) {
		return value.Value{}, pos
	}
	t := toks[pos]

	// 1. Variable reference.
	if t.Kind == token.Text && t.TextKind == token.Variable {
		return value.Value{Data: value.OwnedString{Text: "$" + t.Str}}, pos + 1
	}

	// 2. Dimensional expression (also covers a bare numeric literal and a
	// bare udim(...) call, which contributes at most two operands).
	if v, next, ok := parseExpr(toks, pos, key, tables); ok {
		return v, next
	}

	// 3. Named or unnamed tuple constructor.
	if t.Kind == token.Text && t.TextKind == token.Plain && pos+1 < len(toks) && toks[pos+1].Kind == token.TupleOpen {
		name := t.Str
		args, next, ok := evalTupleArgs(toks, pos+1, key, tables)
		if !ok {
			return value.Value{}, pos
		}
		if reducer, known := reducers[name]; known {
			return reducer(args, tables), next
		}
		return value.Value{}, next
	}
	if t.Kind == token.TupleOpen {
		args, next, ok := evalTupleArgs(toks, pos, key, tables)
		if !ok {
			return value.Value{}, pos
		}
		if len(args) == 1 {
			switch args[0].Data.(type) {
			case value.Number, value.UDim, value.UDim2:
				return args[0], next
			}
		}
		return value.Value{}, next
	}

	// 4. Enum reference.
	if v, next, ok := evalEnumPath(toks, pos, key); ok {
		return v, next
	}

	// 5. Literal color.
	switch t.Kind {
	case token.ColorHex:
		return value.Value{Data: tables.ResolveHex(t.Str)}, pos + 1
	case token.ColorTw:
		palette, shade := splitTailwind(t.Str)
		return value.Value{Data: tables.ResolveTailwind(palette, shade)}, pos + 1
	case token.ColorCss:
		return value.Value{Data: tables.ResolveCss(cssName(t.Str))}, pos + 1
	}

	// 6. Plain DataType literal.
	switch t.Kind {
	case token.StringSingle:
		return value.Value{Data: value.String{Text: t.Str}}, pos + 1
	case token.NumberOffset:
		return value.Value{Data: value.NumberOffset{N: float32(t.Num)}}, pos + 1
	case token.NumberScale:
		return value.Value{Data: value.NumberScale{N: float32(t.Num)}}, pos + 1
	case token.Number:
		return value.Value{Data: value.Number{N: float32(t.Num)}}, pos + 1
	}

	return value.Value{}, pos
}

// splitTailwind splits a "tw:palette" or "tw:palette:shade" token payload.
func splitTailwind(s string) (palette, shade string) {
	s = s[len("tw:"):]
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}

func cssName(s string) string {
	return s[len("css:"):]
}
