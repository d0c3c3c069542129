// Package lexer implements the RSML tokenizer: a priority-ordered regular
// token recognizer that turns UTF-8 source text into a flat token stream
// with positions borrowed from the source buffer. The
// control structure is a rune-stepping cursor with one big switch in
// next(), each case either emitting a token or consuming a longer literal.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/rsmlang/rojo-rsml/internal/rloc"
	"github.com/rsmlang/rojo-rsml/internal/token"
)

const eof = -1

var tailwindPalettes = map[string]bool{
	"slate": true, "gray": true, "zinc": true, "neutral": true, "stone": true,
	"red": true, "orange": true, "amber": true, "yellow": true, "lime": true,
	"green": true, "emerald": true, "teal": true, "cyan": true, "sky": true,
	"blue": true, "indigo": true, "violet": true, "purple": true, "fuchsia": true,
	"pink": true, "rose": true,
}

var tailwindShades = map[string]bool{
	"50": true, "100": true, "200": true, "300": true, "400": true, "500": true,
	"600": true, "700": true, "800": true, "900": true, "950": true,
}

type lexer struct {
	source    rloc.Source
	current   int
	codePoint rune
	start     int32
	tokens    []token.Token
}

// Tokenize lexes source into a flat token stream. Whitespace is elided and
// unrecognised bytes are silently skipped, matching lex-skip
// failure mode — the lexer never reports an error.
func Tokenize(source string) []token.Token {
	lx := &lexer{source: rloc.Source{Contents: source}}
	lx.step()
	for lx.codePoint != eof {
		lx.start = int32(lx.current) - int32(runeWidth(lx.codePoint))
		lx.next()
	}
	return lx.tokens
}

func runeWidth(r rune) int {
	if r == eof {
		return 0
	}
	return utf8.RuneLen(r)
}

func (lx *lexer) step() {
	codePoint, width := utf8.DecodeRuneInString(lx.source.Contents[lx.current:])
	if width == 0 {
		codePoint = eof
	}
	lx.codePoint = codePoint
	lx.current += width
}

// byteAt returns the byte at absolute offset i, or 0 if out of range.
func (lx *lexer) byteAt(i int) byte {
	if i < 0 || i >= len(lx.source.Contents) {
		return 0
	}
	return lx.source.Contents[i]
}

// startOfCurrent is the byte offset of the rune currently in lx.codePoint.
func (lx *lexer) startOfCurrent() int {
	return lx.current - runeWidth(lx.codePoint)
}

func (lx *lexer) emit(kind token.Kind, text string) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:  kind,
		Range: rloc.Range{Loc: rloc.Loc{Start: lx.start}, Len: int32(lx.startOfCurrent()) - lx.start},
		Str:   text,
	})
}

func (lx *lexer) emitTextKind(tk token.TextKind, text string) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:     token.Text,
		TextKind: tk,
		Range:    rloc.Range{Loc: rloc.Loc{Start: lx.start}, Len: int32(lx.startOfCurrent()) - lx.start},
		Str:      text,
	})
}

func (lx *lexer) emitOp(op token.Operator) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:  token.Operator,
		Op:    op,
		Range: rloc.Range{Loc: rloc.Loc{Start: lx.start}, Len: int32(lx.startOfCurrent()) - lx.start},
	})
}

func (lx *lexer) emitNum(kind token.Kind, n float64) {
	lx.tokens = append(lx.tokens, token.Token{
		Kind:  kind,
		Num:   n,
		Range: rloc.Range{Loc: rloc.Loc{Start: lx.start}, Len: int32(lx.startOfCurrent()) - lx.start},
	})
}

// next consumes and emits (at most) one token, or advances past whitespace
// and comments without emitting anything.
func (lx *lexer) next() {
	switch lx.codePoint {
	case eof:
		return

	case ' ', '\t', '\n', '\r', '\f':
		lx.step()
		return

	case '-':
		if lx.byteAt(lx.current) == '-' && lx.byteAt(lx.current+1) == '[' && lx.byteAt(lx.current+2) == '[' {
			lx.consumeMultiLineComment()
			return
		}
		if lx.byteAt(lx.current) == '-' {
			lx.consumeSingleLineComment()
			return
		}
		if lx.wouldStartNumber() {
			lx.consumeNumber()
			return
		}
		lx.step()
		lx.emitOp(token.Sub)

	case '+':
		if lx.wouldStartNumber() {
			lx.consumeNumber()
			return
		}
		lx.step()
		lx.emitOp(token.Add)

	case '*':
		lx.step()
		lx.emitOp(token.Mul)

	case '/':
		lx.step()
		lx.emitOp(token.Div)

	case '^':
		lx.step()
		lx.emitOp(token.Pow)

	case '%':
		lx.step()
		lx.emitOp(token.Mod)

	case '{':
		lx.step()
		lx.emit(token.ScopeOpen, "")

	case '}':
		lx.step()
		lx.emit(token.ScopeClose, "")

	case ';':
		lx.step()
		lx.emit(token.SectionClose, "")

	case ',':
		lx.step()
		lx.emit(token.ListDelimiter, "")

	case '=':
		lx.step()
		lx.emit(token.Equals, "")

	case '(':
		lx.step()
		lx.emit(token.TupleOpen, "")

	case ')':
		lx.step()
		lx.emit(token.TupleClose, "")

	case '>':
		lx.step()
		if lx.codePoint == '>' {
			lx.step()
			lx.emit(token.ScopeToDescendants, "")
		} else {
			lx.emit(token.ScopeToChildren, "")
		}

	case '#':
		lx.step()
		lx.consumeHashOrSelectorName()

	case '.':
		if lx.wouldStartNumber() {
			lx.consumeNumber()
			return
		}
		lx.step()
		if isNameStart(lx.codePoint) {
			name := lx.consumeName()
			lx.emitTextKind(token.TagOrEnum, name)
		}
		// A lone "." that starts neither a number nor an identifier is an
		// unrecognised byte: skip it silently.

	case ':':
		lx.step()
		if lx.codePoint == ':' {
			lx.step()
			if isNameStart(lx.codePoint) {
				name := lx.consumeName()
				lx.emitTextKind(token.Pseudo, name)
			}
			return
		}
		if isNameStart(lx.codePoint) {
			name := lx.consumeName()
			lx.emitTextKind(token.StateOrEnum, name)
			return
		}
		lx.emit(token.Colon, "")

	case '$':
		lx.step()
		if lx.codePoint == '!' {
			lx.step()
			if isNameStart(lx.codePoint) {
				name := lx.consumeName()
				lx.emitTextKind(token.Argument, name)
			}
			return
		}
		if isNameStart(lx.codePoint) {
			name := lx.consumeName()
			lx.emitTextKind(token.Variable, name)
		}

	case '!':
		lx.step()
		if isNameStart(lx.codePoint) {
			name := lx.consumeName()
			lx.emitTextKind(token.PseudoProperty, name)
		}

	case '\'', '"':
		lx.consumeString()

	case '@':
		lx.step()
		if isNameStart(lx.codePoint) {
			name := lx.consumeName()
			switch name {
			case "macro":
				lx.emit(token.MacroDeclaration, "")
			case "priority":
				lx.emit(token.PriorityDeclaration, "")
			case "derive":
				lx.emit(token.DeriveDeclaration, "")
			}
		}

	default:
		if lx.codePoint >= '0' && lx.codePoint <= '9' {
			lx.consumeNumber()
			return
		}
		if isNameStart(lx.codePoint) {
			lx.consumeBareIdent()
			return
		}
		// Unrecognised byte: skip.
		lx.step()
	}
}

func isNameStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isNameContinue(c rune) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-'
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// consumeName consumes an identifier body ([A-Za-z0-9_-]+) starting at the
// current code point, which must already satisfy isNameStart.
func (lx *lexer) consumeName() string {
	startByte := lx.startOfCurrent()
	for isNameContinue(lx.codePoint) {
		lx.step()
	}
	return lx.source.Contents[startByte:lx.startOfCurrent()]
}

func (lx *lexer) consumeHashOrSelectorName() {
	startByte := lx.startOfCurrent()
	for isNameContinue(lx.codePoint) || (lx.codePoint >= '0' && lx.codePoint <= '9') {
		lx.step()
	}
	run := lx.source.Contents[startByte:lx.startOfCurrent()]
	if isHexLiteral(run) {
		lx.emit(token.ColorHex, run)
		return
	}
	if run != "" {
		lx.emitTextKind(token.SelectorName, run)
	}
}

// isHexLiteral reports whether run is a non-empty run of hex digits of any
// length. Whether that length is one colors.parseHex can actually resolve
// (3/4/6/8) is a value-parsing concern, not a lexical one.
func isHexLiteral(run string) bool {
	if run == "" {
		return false
	}
	for i := 0; i < len(run); i++ {
		if !isHexDigit(run[i]) {
			return false
		}
	}
	return true
}

// consumeBareIdent handles a name-start code point with no sigil: it may be
// the start of "tw:..."/"css:..." color literal, the Enum keyword, or a
// plain identifier used as a selector/key.
func (lx *lexer) consumeBareIdent() {
	startByte := lx.startOfCurrent()
	if lx.tryConsumeTwColor(startByte) {
		return
	}
	if lx.tryConsumeCssColor(startByte) {
		return
	}
	name := lx.consumeName()
	if name == "Enum" {
		lx.emit(token.EnumKeyword, "")
		return
	}
	lx.emitTextKind(token.Plain, name)
}

func (lx *lexer) tryConsumeTwColor(startByte int) bool {
	rest := lx.source.Contents[startByte:]
	if len(rest) < 3 || rest[:3] != "tw:" {
		return false
	}
	after := rest[3:]
	end := len(after)
	for i := 0; i < len(after); i++ {
		if !isNameContinue(rune(after[i])) {
			end = i
			break
		}
	}
	palette := after[:end]
	if !tailwindPalettes[palette] {
		return false
	}
	consumed := 3 + end
	payload := "tw:" + palette
	if end < len(after) && after[end] == ':' {
		shadeRest := after[end+1:]
		shadeEnd := len(shadeRest)
		for i := 0; i < len(shadeRest); i++ {
			if shadeRest[i] < '0' || shadeRest[i] > '9' {
				shadeEnd = i
				break
			}
		}
		shade := shadeRest[:shadeEnd]
		if tailwindShades[shade] {
			consumed += 1 + shadeEnd
			payload += ":" + shade
		}
	}
	lx.advanceBytes(consumed)
	lx.emit(token.ColorTw, payload)
	return true
}

func (lx *lexer) tryConsumeCssColor(startByte int) bool {
	rest := lx.source.Contents[startByte:]
	if len(rest) < 4 || rest[:4] != "css:" {
		return false
	}
	after := rest[4:]
	end := len(after)
	for i := 0; i < len(after); i++ {
		if !isNameContinue(rune(after[i])) {
			end = i
			break
		}
	}
	name := after[:end]
	if name == "" {
		return false
	}
	lx.advanceBytes(4 + end)
	lx.emit(token.ColorCss, "css:"+name)
	return true
}

// advanceBytes moves the cursor forward by n bytes from the start of the
// current rune, re-synchronising codePoint/current afterwards.
func (lx *lexer) advanceBytes(n int) {
	target := lx.startOfCurrent() + n
	lx.current = target
	lx.step()
}

func (lx *lexer) consumeString() {
	quote := lx.codePoint
	lx.step()
	startByte := lx.startOfCurrent()
	for lx.codePoint != quote && lx.codePoint != eof && lx.codePoint != '\n' {
		lx.step()
	}
	text := lx.source.Contents[startByte:lx.startOfCurrent()]
	if lx.codePoint == quote {
		lx.step()
	}
	lx.emit(token.StringSingle, text)
}

func (lx *lexer) wouldStartNumber() bool {
	switch lx.codePoint {
	case '+', '-':
		n := lx.current
		if n < len(lx.source.Contents) {
			c := lx.source.Contents[n]
			if c >= '0' && c <= '9' {
				return true
			}
			if c == '.' && n+1 < len(lx.source.Contents) {
				c2 := lx.source.Contents[n+1]
				return c2 >= '0' && c2 <= '9'
			}
		}
		return false
	case '.':
		n := lx.current
		return n < len(lx.source.Contents) && lx.source.Contents[n] >= '0' && lx.source.Contents[n] <= '9'
	}
	return lx.codePoint >= '0' && lx.codePoint <= '9'
}

func (lx *lexer) consumeNumber() {
	startByte := lx.startOfCurrent()
	if lx.codePoint == '+' || lx.codePoint == '-' {
		lx.step()
	}
	for lx.codePoint >= '0' && lx.codePoint <= '9' {
		lx.step()
	}
	if lx.codePoint == '.' {
		lx.step()
		for lx.codePoint >= '0' && lx.codePoint <= '9' {
			lx.step()
		}
	}
	numText := lx.source.Contents[startByte:lx.startOfCurrent()]
	n, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		n = 0
	}

	// Suffix determines the flavor.
	if lx.codePoint == 'p' && lx.byteAt(lx.current) == 'x' {
		lx.step()
		lx.step()
		lx.emitNum(token.NumberOffset, n)
		return
	}
	if lx.codePoint == '%' {
		lx.step()
		lx.emitNum(token.NumberScale, n/100)
		return
	}
	lx.emitNum(token.Number, n)
}

func (lx *lexer) consumeSingleLineComment() {
	startByte := lx.startOfCurrent()
	for lx.codePoint != '\n' && lx.codePoint != eof {
		lx.step()
	}
	lx.emit(token.CommentSingle, lx.source.Contents[startByte:lx.startOfCurrent()])
}

func (lx *lexer) consumeMultiLineComment() {
	// lx.start was already set by the caller to the "-" that opens "--[[".
	lx.advanceBytes(4)
	lx.emit(token.CommentMultiStart, "")

	for lx.codePoint != eof && !(lx.codePoint == ']' && lx.byteAt(lx.current) == ']') {
		lx.step()
	}

	lx.start = int32(lx.startOfCurrent())
	if lx.codePoint == ']' {
		lx.step()
		lx.step()
	}
	lx.emit(token.CommentMultiEnd, "")
}
