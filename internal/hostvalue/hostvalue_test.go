package hostvalue

import (
	"testing"

	"github.com/robloxapi/rbxfile"
	"github.com/stretchr/testify/require"

	"github.com/rsmlang/rojo-rsml/internal/value"
)

func TestTranslateUDim2(t *testing.T) {
	got := Translate(value.Value{Data: value.UDim2{
		X: value.UDim{Scale: 0.5, Offset: 0},
		Y: value.UDim{Scale: 0, Offset: 100},
	}})
	require.Equal(t, rbxfile.ValueUDim2{
		X: rbxfile.ValueUDim{Scale: 0.5, Offset: 0},
		Y: rbxfile.ValueUDim{Scale: 0, Offset: 100},
	}, got)
}

func TestTranslateColor3(t *testing.T) {
	got := Translate(value.Value{Data: value.Color3{R: 1, G: 0.5, B: 0}})
	require.Equal(t, rbxfile.ValueColor3{R: 1, G: 0.5, B: 0}, got)
}

func TestTranslateBareNumberOffsetBecomesZeroScaleUDim(t *testing.T) {
	got := Translate(value.Value{Data: value.NumberOffset{N: 12}})
	require.Equal(t, rbxfile.ValueUDim{Scale: 0, Offset: 12}, got)
}

func TestTranslateBareNumberScaleBecomesZeroOffsetUDim(t *testing.T) {
	got := Translate(value.Value{Data: value.NumberScale{N: 0.75}})
	require.Equal(t, rbxfile.ValueUDim{Scale: 0.75, Offset: 0}, got)
}

func TestTranslatePlainNumberBecomesFloat(t *testing.T) {
	got := Translate(value.Value{Data: value.Number{N: 3.5}})
	require.Equal(t, rbxfile.ValueFloat(3.5), got)
}

func TestTranslateOwnedStringBecomesString(t *testing.T) {
	got := Translate(value.Value{Data: value.OwnedString{Text: "Enum.Font.SourceSans"}})
	require.Equal(t, rbxfile.ValueString("Enum.Font.SourceSans"), got)
}

func TestTranslateVec3(t *testing.T) {
	got := Translate(value.Value{Data: value.Vec3{X: 1, Y: 2, Z: 3}})
	require.Equal(t, rbxfile.ValueVector3{X: 1, Y: 2, Z: 3}, got)
}

func TestTranslateRect(t *testing.T) {
	got := Translate(value.Value{Data: value.Rect{
		Min: value.Vec2{X: 0, Y: 0},
		Max: value.Vec2{X: 10, Y: 20},
	}})
	require.Equal(t, rbxfile.ValueRect2D{
		Min: rbxfile.ValueVector2{X: 0, Y: 0},
		Max: rbxfile.ValueVector2{X: 10, Y: 20},
	}, got)
}

func TestTranslateFontJoinsThreeSlots(t *testing.T) {
	got := Translate(value.Value{Data: value.Font{Family: "Bold", Weight: "Italic", Style: "Heavy"}})
	require.Equal(t, rbxfile.ValueString("Bold,Italic,Heavy"), got)
}
