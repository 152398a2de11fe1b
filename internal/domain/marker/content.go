package marker

import (
	"html"
	"strings"
)

// Node is a renderable content-tree element with optionally bound
// interaction handlers. Handlers live on the node itself; rendering to
// markup never serializes them, so they cannot be lost to a
// serialize-then-reparse round trip.
type Node struct {
	// Tag is the element name; empty for text nodes.
	Tag string
	// Text is the node's text content (text nodes) or label (leaf elements).
	Text string
	// Attrs are rendered as escaped attributes in insertion-stable key order.
	Attrs map[string]string

	Children []*Node

	// OnClick is the bound click handler; nil means not interactive.
	OnClick func()

	attrOrder []string
}

// El creates an element node.
func El(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// TextNode creates a plain text node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// WithText sets the node's text and returns it for chaining.
func (n *Node) WithText(text string) *Node {
	n.Text = text
	return n
}

// WithAttr sets an attribute, preserving first-set ordering for rendering.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	if _, exists := n.Attrs[key]; !exists {
		n.attrOrder = append(n.attrOrder, key)
	}
	n.Attrs[key] = value
	return n
}

// WithClick binds the click handler and returns the node for chaining.
func (n *Node) WithClick(fn func()) *Node {
	n.OnClick = fn
	return n
}

// Click invokes the node's handler if one is bound. Absent handlers are a
// no-op.
func (n *Node) Click() {
	if n.OnClick != nil {
		n.OnClick()
	}
}

// Find returns the first node in the tree (preorder) matching the predicate,
// or nil.
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// Render serializes the tree to escaped markup for the SDK boundary.
// Interaction handlers are not represented in the output; the adapter wires
// them from the structured tree.
func (n *Node) Render() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, key := range n.attrOrder {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(n.Attrs[key]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, c := range n.Children {
		c.render(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
