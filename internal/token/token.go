// Package token defines the RSML token stream produced by internal/lexer
// and consumed by internal/evaluator and internal/rtree: a single flat
// Kind tag plus a Range borrowing into the source, with payload fields
// populated only for the kinds that need them so the struct stays small.
package token

import "github.com/rsmlang/rojo-rsml/internal/rloc"

// Kind is the token's primary tag.
type Kind uint8

const (
	EOF Kind = iota

	// Text carries an identifier-shaped run; TextKind further disambiguates
	// the leading sigil that was stripped off to produce Str.
	Text

	// DataType literals.
	ColorHex
	ColorTw
	ColorCss
	StringSingle
	NumberOffset
	NumberScale
	Number

	// Operator carries Op.
	Operator

	// Structural punctuation.
	ScopeOpen          // {
	ScopeClose         // }
	SectionClose       // ;
	ListDelimiter      // ,
	Equals             // =
	Colon              // :
	ScopeToChildren    // >
	ScopeToDescendants // >>
	TupleOpen          // (
	TupleClose         // )
	EnumKeyword        // Enum

	// Declarations.
	MacroDeclaration    // @macro
	PriorityDeclaration // @priority
	DeriveDeclaration   // @derive

	// Comments, consumed and discarded by the tree builder.
	CommentSingle
	CommentMultiStart
	CommentMultiEnd
)

var kindNames = [...]string{
	EOF:                 "end of file",
	Text:                "identifier",
	ColorHex:            "hex color",
	ColorTw:             "tailwind color",
	ColorCss:            "css color",
	StringSingle:        "string",
	NumberOffset:        "offset number",
	NumberScale:         "scale number",
	Number:              "number",
	Operator:            "operator",
	ScopeOpen:           "\"{\"",
	ScopeClose:          "\"}\"",
	SectionClose:        "\";\"",
	ListDelimiter:       "\",\"",
	Equals:              "\"=\"",
	Colon:               "\":\"",
	ScopeToChildren:     "\">\"",
	ScopeToDescendants:  "\">>\"",
	TupleOpen:           "\"(\"",
	TupleClose:          "\")\"",
	EnumKeyword:         "\"Enum\"",
	MacroDeclaration:    "\"@macro\"",
	PriorityDeclaration: "\"@priority\"",
	DeriveDeclaration:   "\"@derive\"",
	CommentSingle:       "comment",
	CommentMultiStart:   "comment",
	CommentMultiEnd:     "comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown token"
}

// TextKind disambiguates the sigil that introduced a Text token. Only
// meaningful when the token's Kind is Text.
type TextKind uint8

const (
	Plain           TextKind = iota // x
	SelectorName                    // #x
	TagOrEnum                       // .x
	StateOrEnum                     // :x
	Pseudo                          // ::x
	Argument                        // $!x
	Variable                        // $x
	PseudoProperty                  // !x
)

// Operator is the set of dimensional-arithmetic operators.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
	Mod
)

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Mod:
		return "%"
	default:
		return "?"
	}
}

// Token is one lexical unit. Str holds the identifier body (sigil
// stripped), the decoded string-literal contents, or the raw payload of a
// color literal (e.g. "ff8800", "tw:blue:500", "css:tomato"). Num holds the
// decoded numeric value for Number/NumberOffset/NumberScale tokens
// (NumberScale is already divided by 100).
type Token struct {
	Range    rloc.Range
	Str      string
	Num      float64
	Kind     Kind
	TextKind TextKind
	Op       Operator
}
