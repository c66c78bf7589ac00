package barchart

import (
	"html"
	"strings"
)

// Attr is one attribute of a Node, kept in insertion order.
type Attr struct {
	Key, Val string
}

// Node is a detached svg element. Targets turn it into whatever the
// host understands: DOM elements in the browser, markup on the backend.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// El creates an element with the given tag.
func El(tag string) *Node {
	return &Node{Tag: tag}
}

// Set adds the attribute or replaces its value.
func (n *Node) Set(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

// Get returns the attribute value or "" when absent.
func (n *Node) Get(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk visits n and its descendants depth first, in document order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns the descendants (n included) with the tag and, when
// class is not empty, carrying that class.
func (n *Node) FindAll(tag, class string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) {
		if c.Tag != tag {
			return
		}
		if class != "" && !hasClass(c.Get("class"), class) {
			return
		}
		out = append(out, c)
	})
	return out
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

// Markup serializes the tree as svg text.
func (n *Node) Markup() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		return
	}
	b.WriteString("<" + n.Tag)
	for _, a := range n.Attrs {
		b.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
	}
	if n.Text == "" && len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(n.Text))
	for _, c := range n.Children {
		c.writeTo(b)
	}
	b.WriteString("</" + n.Tag + ">")
}
