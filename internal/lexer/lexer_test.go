package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsmlang/rojo-rsml/internal/token"
)

// kinds is a small helper for asserting on a flattened list of token
// kinds rather than full Token structs.
func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeStructural(t *testing.T) {
	toks := Tokenize("A { B = 1; }")
	require.Equal(t, []token.Kind{
		token.Text, token.ScopeOpen,
		token.Text, token.Equals, token.Number, token.SectionClose,
		token.ScopeClose,
	}, kinds(toks))
}

func TestTokenizeSignVsOperator(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"subtraction", "10px - 5px", []token.Kind{token.NumberOffset, token.Operator, token.NumberOffset}},
		{"leading negative", "-5px", []token.Kind{token.NumberOffset}},
		{"negative after operator", "10px - -5px", []token.Kind{token.NumberOffset, token.Operator, token.NumberOffset}},
		{"spaced leading minus", "- 5px", []token.Kind{token.Operator, token.NumberOffset}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, kinds(Tokenize(c.src)))
		})
	}
}

func TestTokenizeHexVsSelectorName(t *testing.T) {
	toks := Tokenize("#ff8800 #Big")
	require.Len(t, toks, 2)
	require.Equal(t, token.ColorHex, toks[0].Kind)
	require.Equal(t, "ff8800", toks[0].Str)
	require.Equal(t, token.Text, toks[1].Kind)
	require.Equal(t, token.SelectorName, toks[1].TextKind)
	require.Equal(t, "Big", toks[1].Str)
}

func TestTokenizeHexLiteralLengthIsNotALexerConcern(t *testing.T) {
	toks := Tokenize("#ff")
	require.Len(t, toks, 1)
	require.Equal(t, token.ColorHex, toks[0].Kind)
	require.Equal(t, "ff", toks[0].Str)
}

func TestTokenizeTailwindAndCssColors(t *testing.T) {
	toks := Tokenize("tw:blue:500 tw:blue css:tomato")
	require.Len(t, toks, 3)
	require.Equal(t, token.ColorTw, toks[0].Kind)
	require.Equal(t, "tw:blue:500", toks[0].Str)
	require.Equal(t, token.ColorTw, toks[1].Kind)
	require.Equal(t, "tw:blue", toks[1].Str)
	require.Equal(t, token.ColorCss, toks[2].Kind)
	require.Equal(t, "css:tomato", toks[2].Str)
}

func TestTokenizeSigils(t *testing.T) {
	toks := Tokenize(".Big :Hover ::before $!arg $var !pseudo Enum")
	require.Len(t, toks, 7)
	want := []struct {
		kind token.TextKind
		str  string
	}{
		{token.TagOrEnum, "Big"},
		{token.StateOrEnum, "Hover"},
		{token.Pseudo, "before"},
		{token.Argument, "arg"},
		{token.Variable, "var"},
		{token.PseudoProperty, "pseudo"},
	}
	for i, w := range want {
		require.Equal(t, token.Text, toks[i].Kind, i)
		require.Equal(t, w.kind, toks[i].TextKind, i)
		require.Equal(t, w.str, toks[i].Str, i)
	}
	require.Equal(t, token.EnumKeyword, toks[6].Kind)
}

func TestTokenizeComments(t *testing.T) {
	toks := Tokenize("-- line comment\nA{}")
	require.Equal(t, []token.Kind{
		token.CommentSingle, token.Text, token.ScopeOpen, token.ScopeClose,
	}, kinds(toks))

	toks = Tokenize("--[[ multi\nline ]]A{}")
	require.Equal(t, []token.Kind{
		token.CommentMultiStart, token.CommentMultiEnd, token.Text, token.ScopeOpen, token.ScopeClose,
	}, kinds(toks))
}

func TestTokenizeNumberSuffixes(t *testing.T) {
	toks := Tokenize("10px 50% 3")
	require.Len(t, toks, 3)
	require.Equal(t, token.NumberOffset, toks[0].Kind)
	require.Equal(t, float64(10), toks[0].Num)
	require.Equal(t, token.NumberScale, toks[1].Kind)
	require.Equal(t, 0.5, toks[1].Num)
	require.Equal(t, token.Number, toks[2].Kind)
	require.Equal(t, float64(3), toks[2].Num)
}

func TestTokenizeStrings(t *testing.T) {
	toks := Tokenize(`'single' "double"`)
	require.Len(t, toks, 2)
	require.Equal(t, token.StringSingle, toks[0].Kind)
	require.Equal(t, "single", toks[0].Str)
	require.Equal(t, token.StringSingle, toks[1].Kind)
	require.Equal(t, "double", toks[1].Str)
}

func TestTokenizeAtKeywords(t *testing.T) {
	toks := Tokenize("@macro @priority @derive @unknown")
	require.Equal(t, []token.Kind{
		token.MacroDeclaration, token.PriorityDeclaration, token.DeriveDeclaration,
	}, kinds(toks))
}

func TestTokenizeSkipsUnrecognisedBytes(t *testing.T) {
	toks := Tokenize("A \x01\x02 B")
	require.Equal(t, []token.Kind{token.Text, token.Text}, kinds(toks))
}
