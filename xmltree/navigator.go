package xmltree

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
)

// navigator implements xpath.NodeNavigator for a document tree.
// For a description of the various methods of interface xpath.NodeNavigator
// please refer to the documentation of antchfx/xpath.
type navigator struct {
	root, current *Node
	attr          int // attributes index, -1 for the node itself
}

func newNavigator(root *Node) *navigator {
	return &navigator{root: root, current: root, attr: -1}
}

var _ xpath.NodeNavigator = &navigator{}

func (nav *navigator) NodeType() xpath.NodeType {
	switch nav.current.Kind {
	case DocumentNode:
		return xpath.RootNode
	case ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	case TextNode:
		return xpath.TextNode
	}
	// processing instructions and directives have no XPath node type of
	// their own in antchfx/xpath
	return xpath.CommentNode
}

func (nav *navigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attrs[nav.attr].Name
	}
	return nav.current.Name
}

func (nav *navigator) Prefix() string {
	if nav.attr != -1 {
		return nav.current.Attrs[nav.attr].Prefix
	}
	return nav.current.Prefix
}

func (nav *navigator) Value() string {
	switch nav.current.Kind {
	case ElementNode:
		if nav.attr != -1 {
			return nav.current.Attrs[nav.attr].Value
		}
		return nav.current.InnerText()
	case DocumentNode:
		return nav.current.InnerText()
	}
	return nav.current.Data
}

func (nav *navigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *navigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *navigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *navigator) MoveToNextAttribute() bool {
	if nav.current.Kind != ElementNode || nav.attr >= len(nav.current.Attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *navigator) MoveToChild() bool {
	if nav.attr != -1 || len(nav.current.Children) == 0 {
		return false
	}
	nav.current = nav.current.Children[0]
	return true
}

func (nav *navigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.Parent == nil {
		return false
	}
	first := nav.current.Parent.Children[0]
	if first == nav.current {
		return false
	}
	nav.current = first
	return true
}

func (nav *navigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current.Parent == nil {
		return false
	}
	siblings := nav.current.Parent.Children
	i := indexOf(siblings, nav.current)
	if i < 0 || i+1 >= len(siblings) {
		return false
	}
	nav.current = siblings[i+1]
	return true
}

func (nav *navigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current.Parent == nil {
		return false
	}
	siblings := nav.current.Parent.Children
	i := indexOf(siblings, nav.current)
	if i <= 0 {
		return false
	}
	nav.current = siblings[i-1]
	return true
}

func (nav *navigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*navigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *navigator) String() string {
	return nav.Value()
}

func indexOf(nodes []*Node, n *Node) int {
	for i, x := range nodes {
		if x == n {
			return i
		}
	}
	return -1
}

// --- Queries ---------------------------------------------------------------

// Select returns the nodes matching an XPath expression, in the order the
// query produces them (document order for simple path expressions).
// Attribute matches are skipped.
func (doc *Document) Select(expr string) ([]*Node, error) {
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("xmltree: invalid XPath %q: %w", expr, err)
	}
	var nodes []*Node
	it := x.Select(newNavigator(doc.root))
	for it.MoveNext() {
		nav, ok := it.Current().(*navigator)
		if !ok || nav.attr != -1 {
			continue
		}
		nodes = append(nodes, nav.current)
	}
	T().Debugf("%s: %d match(es)", expr, len(nodes))
	return nodes, nil
}

// HasAny is a predicate: does the document contain at least one element
// with one of the given (qualified) names?
func (doc *Document) HasAny(names ...string) bool {
	if len(names) == 0 {
		return false
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = "//" + name
	}
	nodes, err := doc.Select(strings.Join(paths, " | "))
	if err != nil {
		T().Errorf("%v", err)
		return false
	}
	return len(nodes) > 0
}

// Leaves returns all elements without child elements, in document order.
func (doc *Document) Leaves() []*Node {
	nodes, err := doc.Select("//*[not(*)]")
	if err != nil { // cannot happen for a constant expression
		panic(err)
	}
	return nodes
}
