package vdom

import "strings"

// Walk visits n and its descendants depth-first, in document order.
// Returning false from fn stops the walk.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node matching pred.
func Find(root *VNode, pred func(*VNode) bool) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in document order.
func FindAll(root *VNode, pred func(*VNode) bool) []*VNode {
	var out []*VNode
	Walk(root, func(n *VNode) bool {
		if pred(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindByID returns the node whose id attribute equals id.
func FindByID(root *VNode, id string) *VNode {
	return Find(root, func(n *VNode) bool { return n.Attr("id") == id })
}

// HasClass reports whether the node's class attribute contains class.
func HasClass(n *VNode, class string) bool {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates the text of n and its descendants, like the DOM property.
// Input and textarea values are not included.
func TextContent(n *VNode) string {
	var b strings.Builder
	Walk(n, func(v *VNode) bool {
		if v.Tag != "input" && v.Tag != "textarea" {
			b.WriteString(v.Content)
		}
		return true
	})
	return b.String()
}
