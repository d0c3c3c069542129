package rsml

import (
	"github.com/robloxapi/rbxfile"

	"github.com/rsmlang/rojo-rsml/internal/hostvalue"
	"github.com/rsmlang/rojo-rsml/internal/rtree"
	"github.com/rsmlang/rojo-rsml/internal/value"
)

// Rule is one scope translated consumer contract: a
// selector-named child carrying a priority, attributes (from variables),
// and styled properties.
type Rule struct {
	Selector         string
	Priority         int32
	Attributes       map[string]rbxfile.Value
	StyledProperties map[string]rbxfile.Value
	Children         []Rule
}

// Sheet is the root container: its Attributes come from the root node's
// own variables, and Rules are its top-level children.
type Sheet struct {
	Attributes map[string]rbxfile.Value
	Rules      []Rule
}

// Walk translates a parsed Arena into a Sheet, an end-to-end
// tree-to-instance translation so a caller doesn't have to re-derive the
// arena-walking rules themselves.
func Walk(arena *Arena) *Sheet {
	root := arena.Get(0)
	return &Sheet{
		Attributes: translateMap(root.Variables),
		Rules:      walkChildren(arena, root.Children),
	}
}

func walkChildren(arena *Arena, children []rtree.ChildRef) []Rule {
	rules := make([]Rule, 0, len(children))
	for _, ref := range children {
		node := arena.Get(ref.Idx)
		var priority int32
		if node.Priority != nil {
			priority = *node.Priority
		}
		rules = append(rules, Rule{
			Selector:         ref.Selector,
			Priority:         priority,
			Attributes:       translateMap(node.Variables),
			StyledProperties: translateMap(node.Properties),
			Children:         walkChildren(arena, node.Children),
		})
	}
	return rules
}

func translateMap(m map[string]value.Value) map[string]rbxfile.Value {
	out := make(map[string]rbxfile.Value, len(m))
	for k, v := range m {
		out[k] = hostvalue.Translate(v)
	}
	return out
}
