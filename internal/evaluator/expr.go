package evaluator

import (
	"math"

	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/token"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

type opKind uint8

const (
	opNumber opKind = iota
	opScale
	opOffset
)

type operand struct {
	kind opKind
	val  float64
}

func combineOp(cur, next token.Operator) token.Operator {
	isSign := func(o token.Operator) bool { return o == token.Add || o == token.Sub }
	if isSign(cur) && isSign(next) {
		if next == token.Sub {
			if cur == token.Sub {
				return token.Add
			}
			return token.Sub
		}
		return cur
	}
	return next
}

// parseExpr implements the expression algorithm. It returns
// ok=false (and leaves pos untouched) when the token at pos cannot start a
// dimensional expression at all, so the caller can fall through to the
// other evaluator subroutines.
func parseExpr(toks []token.Token, pos int, key string, tables *colors.Tables) (value.Value, int, bool) {
	operands := []operand{{kind: opNumber, val: 0}}
	ops := []token.Operator{}

	pendingOp := token.Add
	sawAnything := false

loop:
	for pos < len(toks) {
		t := toks[pos]
		switch {
		case t.Kind == token.Number:
			operands = append(operands, operand{kind: opNumber, val: t.Num})
			ops = append(ops, pendingOp)
			pendingOp = token.Add
			pos++
			sawAnything = true

		case t.Kind == token.NumberScale:
			operands = append(operands, operand{kind: opScale, val: t.Num})
			ops = append(ops, pendingOp)
			pendingOp = token.Add
			pos++
			sawAnything = true

		case t.Kind == token.NumberOffset:
			operands = append(operands, operand{kind: opOffset, val: t.Num})
			ops = append(ops, pendingOp)
			pendingOp = token.Add
			pos++
			sawAnything = true

		case t.Kind == token.Operator:
			pendingOp = combineOp(pendingOp, t.Op)
			pos++
			sawAnything = true

		case t.Kind == token.Text && t.TextKind == token.Plain && t.Str == "udim" &&
			pos+1 < len(toks) && toks[pos+1].Kind == token.TupleOpen:
			u, next, ok := evalUdimTuple(toks, pos+1, key, tables)
			if !ok {
				return value.Value{}, pos, sawAnything
			}
			entryOp := pendingOp
			if u.Scale != 0 {
				operands = append(operands, operand{kind: opScale, val: float64(u.Scale)})
				ops = append(ops, entryOp)
				entryOp = token.Add
			}
			if u.Offset != 0 {
				operands = append(operands, operand{kind: opOffset, val: float64(u.Offset)})
				ops = append(ops, entryOp)
			}
			pendingOp = token.Add
			pos = next
			sawAnything = true

		default:
			break loop
		}
	}

	if !sawAnything {
		return value.Value{}, pos, false
	}

	operands, ops = reduceHighPrecedence(operands, ops, token.Pow)
	operands, ops = reduceHighPrecedence(operands, ops, token.Div)
	operands, ops = reduceHighPrecedence(operands, ops, token.Mod)
	operands, ops = reduceHighPrecedence(operands, ops, token.Mul)

	applySignPass(operands, ops)

	return sumOperands(operands), pos, true
}

func reduceHighPrecedence(operands []operand, ops []token.Operator, want token.Operator) ([]operand, []token.Operator) {
	i := 0
	for i < len(ops) {
		if ops[i] != want {
			i++
			continue
		}
		left, right := operands[i], operands[i+1]
		reduced := applyHighPrecedence(want, left, right)

		newOperands := make([]operand, 0, len(operands)-1)
		newOperands = append(newOperands, operands[:i]...)
		newOperands = append(newOperands, reduced)
		newOperands = append(newOperands, operands[i+2:]...)
		operands = newOperands

		newOps := make([]token.Operator, 0, len(ops)-1)
		newOps = append(newOps, ops[:i]...)
		newOps = append(newOps, ops[i+1:]...)
		ops = newOps
	}
	return operands, ops
}

func applyHighPrecedence(op token.Operator, left, right operand) operand {
	resultKind := promote(left.kind, right.kind)

	if op == token.Div && (left.val == 0 || right.val == 0) {
		return operand{kind: resultKind, val: left.val}
	}

	var v float64
	switch op {
	case token.Pow:
		v = math.Pow(left.val, right.val)
	case token.Div:
		v = left.val / right.val
	case token.Mod:
		v = math.Mod(left.val, right.val)
	case token.Mul:
		v = left.val * right.val
	}
	return operand{kind: resultKind, val: v}
}

// promote implements the left/right result-type table: Scale and
// Offset are absorbing on the left; a Number left takes the right's tag.
func promote(left, right opKind) opKind {
	switch left {
	case opScale:
		return opScale
	case opOffset:
		return opOffset
	default:
		return right
	}
}

func applySignPass(operands []operand, ops []token.Operator) {
	for i, op := range ops {
		if op == token.Sub {
			operands[i+1].val = -operands[i+1].val
		}
	}
}

func sumOperands(operands []operand) value.Value {
	var scale float64
	var offset float64
	tagged := false
	for _, o := range operands {
		switch o.kind {
		case opOffset:
			offset += o.val
			tagged = true
		case opScale:
			scale += o.val
			tagged = true
		default:
			scale += o.val
		}
	}
	if tagged {
		return value.Value{Data: value.UDim{Scale: float32(scale), Offset: int32(offset)}}
	}
	return value.Value{Data: value.Number{N: float32(scale)}}
}
