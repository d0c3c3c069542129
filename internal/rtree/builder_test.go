package rtree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsmlang/rojo-rsml/internal/colors"
	"github.com/rsmlang/rojo-rsml/internal/lexer"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

func build(t *testing.T, src string) *Arena[RuleNode] {
	t.Helper()
	return Build(lexer.Tokenize(src), colors.Load())
}

func TestBuildRootAssignment(t *testing.T) {
	arena := build(t, "Scale = 1.5;")
	root := arena.Get(0)
	require.Equal(t, value.Number{N: 1.5}, root.Properties["Scale"].Data)
	require.Equal(t, 0, root.ParentIdx)
}

func TestBuildChildSelectorAndProperty(t *testing.T) {
	arena := build(t, "TextButton { Size = udim2(50%, 100px); }")
	require.Equal(t, 2, arena.Len())

	root := arena.Get(0)
	require.Contains(t, root.Rules, "TextButton")
	idx := root.Rules["TextButton"][0]
	require.Equal(t, 1, idx)
	require.Equal(t, []ChildRef{{Selector: "TextButton", Idx: 1}}, root.Children)

	child := arena.Get(idx)
	require.Equal(t, 0, child.ParentIdx)
	require.Equal(t, value.UDim2{
		X: value.UDim{Scale: 0.5, Offset: 0},
		Y: value.UDim{Scale: 0, Offset: 100},
	}, child.Properties["Size"].Data)
}

func TestBuildVariableAndPseudoPropertyRouteToTheirOwnMaps(t *testing.T) {
	arena := build(t, "$accent = #ff8800; !hover = 1;")
	root := arena.Get(0)
	require.Contains(t, root.Variables, "accent")
	require.Contains(t, root.PseudoProperties, "hover")
	require.NotContains(t, root.Properties, "accent")
	require.NotContains(t, root.Properties, "hover")
}

func TestBuildNestedScopesRestoreParentOnClose(t *testing.T) {
	arena := build(t, "A { B { X = 1; } Y = 2; }")
	root := arena.Get(0)
	aIdx := root.Rules["A"][0]
	a := arena.Get(aIdx)
	require.Contains(t, a.Rules, "B")
	require.Equal(t, value.Number{N: 2}, a.Properties["Y"].Data)

	bIdx := a.Rules["B"][0]
	b := arena.Get(bIdx)
	require.Equal(t, value.Number{N: 1}, b.Properties["X"].Data)
	require.Equal(t, aIdx, b.ParentIdx)
}

func TestBuildPriorityDeclaration(t *testing.T) {
	arena := build(t, "A { @priority 5; }")
	idx := arena.Get(0).Rules["A"][0]
	node := arena.Get(idx)
	require.NotNil(t, node.Priority)
	require.Equal(t, int32(5), *node.Priority)
}

func TestBuildNegativePriorityRounds(t *testing.T) {
	arena := build(t, "A { @priority -2; }")
	idx := arena.Get(0).Rules["A"][0]
	node := arena.Get(idx)
	require.NotNil(t, node.Priority)
	require.Equal(t, int32(-2), *node.Priority)
}

func TestBuildSigilSelectors(t *testing.T) {
	arena := build(t, "#Big { X = 1; } .Tag { X = 2; } :State { X = 3; } ::before { X = 4; }")
	root := arena.Get(0)
	for _, selector := range []string{"#Big", ".Tag", ":State", "::before"} {
		require.Contains(t, root.Rules, selector)
	}
}

func TestBuildMultiSelectorDescendantCombinator(t *testing.T) {
	arena := build(t, "A >> B { X = 1; }")
	root := arena.Get(0)
	require.Contains(t, root.Rules, "A >> B")
}

func TestBuildSkipsMultiLineComment(t *testing.T) {
	arena := build(t, "--[[ a comment spanning\nmultiple lines ]]A { X = 1; }")
	root := arena.Get(0)
	require.Contains(t, root.Rules, "A")
}

func TestBuildUnterminatedSelectorIsIgnored(t *testing.T) {
	arena := build(t, "A")
	require.Equal(t, 1, arena.Len())
	root := arena.Get(0)
	require.Empty(t, root.Rules)
}

func TestBuildParentIndexPrecedesChildIndex(t *testing.T) {
	arena := build(t, "A { B { X = 1; } } C { Y = 2; }")
	for i := 1; i < arena.Len(); i++ {
		node := arena.Get(i)
		require.Less(t, node.ParentIdx, i)
	}
}

func TestArenaPushGetLen(t *testing.T) {
	var a Arena[int]
	require.Equal(t, 0, a.Len())
	i0 := a.Push(10)
	i1 := a.Push(20)
	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 10, *a.Get(i0))
	require.Equal(t, 20, *a.Get(i1))
}
