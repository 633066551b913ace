package tokens

import (
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// FindByStyleID returns the first node, in depth-first pre-order, whose style
// bindings reference styleID in any slot (fill, text, effect, grid). Returns
// nil when no node binds the style; callers treat that as "no token from this
// style", never as a fatal condition.
func FindByStyleID(root *figma.Node, styleID string) *figma.Node {
	for _, bound := range root.Styles {
		if bound == styleID {
			return root
		}
	}
	for i := range root.Children {
		if n := FindByStyleID(&root.Children[i], styleID); n != nil {
			return n
		}
	}
	return nil
}

// FindByName returns the first node, in depth-first pre-order, whose display
// name equals name ignoring case. Used to locate well-known containers such as
// the spacing scale holder.
func FindByName(root *figma.Node, name string) *figma.Node {
	if strings.EqualFold(root.Name, name) {
		return root
	}
	for i := range root.Children {
		if n := FindByName(&root.Children[i], name); n != nil {
			return n
		}
	}
	return nil
}
