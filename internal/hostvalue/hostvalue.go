// Package hostvalue implements the total internal-value-to-host-value
// translator: a mapping from the evaluator's closed value.Data union onto
// github.com/robloxapi/rbxfile's concrete rbxfile.Value union, field names
// matched directly against that library's own encoder (rbxl-codec.go's
// decodeValue switch).
package hostvalue

import (
	"fmt"

	"github.com/robloxapi/rbxfile"

	"github.com/rsmlang/rojo-rsml/internal/value"
)

// Translate maps v onto the host's rbxfile.Value union. It is total: every
// value.Data variant produces something, with unmodeled variants rendered
// as a string.
func Translate(v value.Value) rbxfile.Value {
	switch d := v.Data.(type) {
	case value.String:
		return rbxfile.ValueString(d.Text)
	case value.OwnedString:
		return rbxfile.ValueString(d.Text)
	case value.UDim:
		return rbxfile.ValueUDim{Scale: d.Scale, Offset: d.Offset}
	case value.UDim2:
		return rbxfile.ValueUDim2{
			X: rbxfile.ValueUDim{Scale: d.X.Scale, Offset: d.X.Offset},
			Y: rbxfile.ValueUDim{Scale: d.Y.Scale, Offset: d.Y.Offset},
		}
	case value.Vec2:
		return rbxfile.ValueVector2{X: d.X, Y: d.Y}
	case value.Vec3:
		return rbxfile.ValueVector3{X: d.X, Y: d.Y, Z: d.Z}
	case value.Rect:
		return rbxfile.ValueRect2D{
			Min: rbxfile.ValueVector2{X: d.Min.X, Y: d.Min.Y},
			Max: rbxfile.ValueVector2{X: d.Max.X, Y: d.Max.Y},
		}
	case value.Color3:
		return rbxfile.ValueColor3{R: d.R, G: d.G, B: d.B}
	case value.Number:
		return rbxfile.ValueFloat(d.N)
	case value.NumberOffset:
		return rbxfile.ValueUDim{Scale: 0, Offset: int32(d.N)}
	case value.NumberScale:
		return rbxfile.ValueUDim{Scale: d.N, Offset: 0}
	case value.Font:
		return rbxfile.ValueString(fmt.Sprintf("%s,%s,%s", d.Family, d.Weight, d.Style))
	default:
		return rbxfile.ValueString(fmt.Sprintf("%v", d))
	}
}
