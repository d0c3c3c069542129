package rtree

import "github.com/rsmlang/rojo-rsml/internal/value"

// ChildRef names one entry of a node's source-order child list: which
// selector string opened the child and which arena index it landed at.
// Rules alone only preserves order within a single selector bucket, not
// across buckets opened in the same scope, and pkg/rsml's Sheet builder
// needs one deterministic walk order across all of them.
type ChildRef struct {
	Selector string
	Idx      int
}

// RuleNode is one scope in the rule tree. The root is pushed first and is
// its own parent.
type RuleNode struct {
	Properties       map[string]value.Value
	Variables        map[string]value.Value
	PseudoProperties map[string]value.Value
	Rules            map[string][]int
	Children         []ChildRef
	Priority         *int32
	ParentIdx        int
}

func newRuleNode(parentIdx int) RuleNode {
	return RuleNode{
		Properties:       map[string]value.Value{},
		Variables:        map[string]value.Value{},
		PseudoProperties: map[string]value.Value{},
		Rules:            map[string][]int{},
		ParentIdx:        parentIdx,
	}
}
