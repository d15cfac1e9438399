package vdom

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a VNode tree into an x/net/html node tree.
// Event handlers are dropped, boolean attributes follow HTML rules
// (true renders the bare attribute, false omits it).
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttributes(n),
	}

	switch n.Tag {
	case "input":
		if n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el
	case "textarea":
		if n.Content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
		return el
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := ToHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

// RenderHTML writes the HTML serialisation of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	node := ToHTMLNode(n)
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return fmt.Errorf("render %s: %w", n.Tag, err)
	}
	return nil
}

// htmlAttributes returns the renderable attributes sorted by key so output is stable.
func htmlAttributes(n *VNode) []html.Attribute {
	if len(n.Attributes) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		if IsEventAttribute(k) {
			continue
		}
		switch v := n.Attributes[k].(type) {
		case nil:
		case bool:
			if v {
				attrs = append(attrs, html.Attribute{Key: k})
			}
		case string:
			attrs = append(attrs, html.Attribute{Key: k, Val: v})
		default:
			attrs = append(attrs, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}
	return attrs
}
