package evaluator

import (
	"strings"

	"github.com/rsmlang/rojo-rsml/internal/token"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

// isEnumPathToken reports whether t can continue (or start) an enum path:
// the bare EnumKeyword, or a Text token carrying a tag-or-enum / state-or-
// enum sigil (".x" or ":x").
func isEnumPathToken(t token.Token) bool {
	if t.Kind == token.EnumKeyword {
		return true
	}
	return t.Kind == token.Text && (t.TextKind == token.TagOrEnum || t.TextKind == token.StateOrEnum)
}

// evalEnumPath walks forward over the contiguous run of
// EnumKeyword/tag-or-enum/state-or-enum tokens starting at pos and rebuilds
// the dotted "Enum.Category.Member" string.
func evalEnumPath(toks []token.Token, pos int, key string) (value.Value, int, bool) {
	if pos >= len(toks) || !isEnumPathToken(toks[pos]) {
		return value.Value{}, pos, false
	}

	var segments []string
	start := pos
	for pos < len(toks) && isEnumPathToken(toks[pos]) {
		if toks[pos].Kind == token.EnumKeyword {
			segments = append(segments, "Enum")
		} else {
			segments = append(segments, toks[pos].Str)
		}
		pos++
	}
	if pos == start {
		return value.Value{}, pos, false
	}

	if len(segments) == 0 || segments[0] != "Enum" {
		segments = append([]string{"Enum"}, segments...)
	}
	if len(segments) == 2 && key != "" {
		segments = []string{segments[0], key, segments[1]}
	}

	return value.Value{Data: value.OwnedString{Text: "Enum." + strings.Join(segments[1:], ".")}}, pos, true
}
