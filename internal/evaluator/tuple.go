package evaluator

import (
	"fmt"

	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/token"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

// tupleReducer turns a collected argument list into a Value, selected by
// the constructor name.
type tupleReducer func(args []value.Value, tables *colors.Tables) value.Value

var reducers = map[string]tupleReducer{
	"udim":   func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceUdim(a)} },
	"udim2":  func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceUdim2(a)} },
	"vec2":   func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceVec2(a)} },
	"vec3":   func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceVec3(a)} },
	"rect":   func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceRect(a)} },
	"color3": func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceColor3(a)} },
	"rgb":    func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceRgb(a)} },
	"font":   func(a []value.Value, _ *colors.Tables) value.Value { return value.Value{Data: reduceFont(a)} },
}

// evalTupleArgs consumes a TupleOpen at pos, recursively evaluating
// comma-separated arguments until the matching TupleClose. An unterminated
// tuple reports ok=false: "A TupleOpen without a matching TupleClose
// terminates evaluation of that value with no assignment."
func evalTupleArgs(toks []token.Token, pos int, key string, tables *colors.Tables) ([]value.Value, int, bool) {
	if pos >= len(toks) || toks[pos].Kind != token.TupleOpen {
		return nil, pos, false
	}
	pos++

	if pos < len(toks) && toks[pos].Kind == token.TupleClose {
		return nil, pos + 1, true
	}

	var args []value.Value
	for {
		v, next := Eval(toks, pos, key, tables)
		args = append(args, v)
		if next == pos {
			return nil, pos, false
		}
		pos = next
		if pos >= len(toks) {
			return nil, pos, false
		}
		switch toks[pos].Kind {
		case token.ListDelimiter:
			pos++
		case token.TupleClose:
			return args, pos + 1, true
		default:
			return nil, pos, false
		}
	}
}

func evalUdimTuple(toks []token.Token, pos int, key string, tables *colors.Tables) (value.UDim, int, bool) {
	args, next, ok := evalTupleArgs(toks, pos, key, tables)
	if !ok {
		return value.UDim{}, pos, false
	}
	return reduceUdim(args), next, true
}

func numberOf(v value.Value) (float64, bool) {
	switch d := v.Data.(type) {
	case value.Number:
		return float64(d.N), true
	case value.NumberScale:
		return float64(d.N), true
	case value.NumberOffset:
		return float64(d.N), true
	}
	return 0, false
}

func coerceUDim(v value.Value) value.UDim {
	switch d := v.Data.(type) {
	case value.UDim:
		return d
	case value.NumberOffset:
		return value.UDim{Offset: int32(d.N)}
	case value.NumberScale:
		return value.UDim{Scale: d.N}
	case value.Number:
		return value.UDim{Scale: d.N}
	default:
		return value.UDim{}
	}
}

// reduceUdim implements both the single-argument coercion rule ("udim(a)")
// and the two-argument direct constructor ("udim(scale, offset)") that the
// expression algorithm decomposes back into operands.
func reduceUdim(args []value.Value) value.UDim {
	switch len(args) {
	case 0:
		return value.UDim{}
	case 1:
		return coerceUDim(args[0])
	default:
		scale := coerceUDim(args[0]).Scale
		offset := int32(0)
		if n, ok := numberOf(args[1]); ok {
			offset = int32(n)
		} else {
			offset = coerceUDim(args[1]).Offset
		}
		return value.UDim{Scale: scale, Offset: offset}
	}
}

func reduceUdim2(args []value.Value) value.UDim2 {
	a := value.UDim{}
	if len(args) > 0 {
		a = coerceUDim(args[0])
	}
	b := a
	if len(args) > 1 {
		b = coerceUDim(args[1])
	}
	return value.UDim2{X: a, Y: b}
}

func scalarAt(args []value.Value, i int) float32 {
	if i >= len(args) {
		return 0
	}
	n, _ := numberOf(args[i])
	return float32(n)
}

func reduceVec2(args []value.Value) value.Vec2 {
	x := scalarAt(args, 0)
	y := x
	if len(args) > 1 {
		y = scalarAt(args, 1)
	}
	return value.Vec2{X: x, Y: y}
}

func reduceVec3(args []value.Value) value.Vec3 {
	return value.Vec3{X: scalarAt(args, 0), Y: scalarAt(args, 1), Z: scalarAt(args, 2)}
}

func reduceRect(args []value.Value) value.Rect {
	return value.Rect{
		Min: value.Vec2{X: scalarAt(args, 0), Y: scalarAt(args, 1)},
		Max: value.Vec2{X: scalarAt(args, 2), Y: scalarAt(args, 3)},
	}
}

// colorChannel accepts Number, NumberScale, NumberOffset or UDim (reading
// its Scale), matching the color3/rgb reducer contract.
func colorChannel(v value.Value) float32 {
	switch d := v.Data.(type) {
	case value.Number:
		return d.N
	case value.NumberScale:
		return d.N
	case value.NumberOffset:
		return d.N
	case value.UDim:
		return d.Scale
	default:
		return 0
	}
}

func reduceColor3(args []value.Value) value.Color3 {
	get := func(i int) float32 {
		if i < len(args) {
			return colorChannel(args[i])
		}
		return 0
	}
	return value.Color3{R: get(0), G: get(1), B: get(2)}
}

func reduceRgb(args []value.Value) value.Color3 {
	c := reduceColor3(args)
	return value.Color3{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}

var fontWeightNames = map[string]bool{
	"Thin": true, "ExtraLight": true, "Light": true, "Normal": true,
	"Medium": true, "SemiBold": true, "Bold": true, "ExtraBold": true,
	"Heavy": true, "Italic": true,
}

const defaultFontFamily = "rbxasset://fonts/families/SourceSansPro.json"

func stringOf(v value.Value) (string, bool) {
	switch d := v.Data.(type) {
	case value.String:
		return d.Text, true
	case value.OwnedString:
		return d.Text, true
	}
	return "", false
}

// classifyFontFamilySlot implements the family slot: a numeric slot becomes
// an asset reference, a string slot passes through verbatim, and a missing
// or otherwise-typed slot falls back to the default family.
func classifyFontFamilySlot(v value.Value) string {
	if !v.Ok() {
		return defaultFontFamily
	}
	if n, ok := numberOf(v); ok {
		return fmt.Sprintf("rbxasset://%v", n)
	}
	if s, ok := stringOf(v); ok {
		return s
	}
	return defaultFontFamily
}

// classifyFontSlot implements the weight/style slot rule: a recognised
// name string passes through unchanged, any other value falls back to
// fallback ("Regular" for the weight slot, "Normal" for the style slot).
func classifyFontSlot(v value.Value, fallback string) string {
	if s, ok := stringOf(v); ok && fontWeightNames[s] {
		return s
	}
	return fallback
}

// reduceFont reads slots 0, 1, 2 for family/weight/style respectively,
// rather than the all-slots-read-0 source bug.
func reduceFont(args []value.Value) value.Font {
	get := func(i int) value.Value {
		if i < len(args) {
			return args[i]
		}
		return value.Value{}
	}
	return value.Font{
		Family: classifyFontFamilySlot(get(0)),
		Weight: classifyFontSlot(get(1), "Regular"),
		Style:  classifyFontSlot(get(2), "Normal"),
	}
}
