package vdom

// Element creates a node with the given tag, attributes and children.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, compact(children), "")
}

// Text creates a pure text node.
func Text(text string) *VNode {
	return NewVNode(TextTag, nil, nil, text)
}

// Paragraph creates a <p> VNode with the given text as its content.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// P creates a <p> with mixed children.
func P(attrs map[string]any, children ...*VNode) *VNode {
	return Element("p", attrs, children...)
}

// Div creates a <div> VNode with the given children.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return Element("div", attrs, children...)
}

// Section creates a <section>.
func Section(attrs map[string]any, children ...*VNode) *VNode {
	return Element("section", attrs, children...)
}

// Nav creates a <nav>.
func Nav(attrs map[string]any, children ...*VNode) *VNode {
	return Element("nav", attrs, children...)
}

// Main creates a <main>.
func Main(attrs map[string]any, children ...*VNode) *VNode {
	return Element("main", attrs, children...)
}

// Footer creates a <footer>.
func Footer(attrs map[string]any, children ...*VNode) *VNode {
	return Element("footer", attrs, children...)
}

// Heading creates an <h1>..<h6> with text content.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Span creates a <span> with text content.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Ul creates a <ul>.
func Ul(attrs map[string]any, children ...*VNode) *VNode {
	return Element("ul", attrs, children...)
}

// Li creates an <li>.
func Li(attrs map[string]any, children ...*VNode) *VNode {
	return Element("li", attrs, children...)
}

// A creates an <a>.
func A(attrs map[string]any, children ...*VNode) *VNode {
	return Element("a", attrs, children...)
}

// Img creates an <img>.
func Img(attrs map[string]any) *VNode {
	return NewVNode("img", attrs, nil, "")
}

// IFrame creates an <iframe> for embedded third-party players.
func IFrame(attrs map[string]any) *VNode {
	return NewVNode("iframe", attrs, nil, "")
}

// Button creates a <button>. Content is used when there are no children.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, compact(children), content)
}

// Form creates a <form>.
func Form(attrs map[string]any, children ...*VNode) *VNode {
	return Element("form", attrs, children...)
}

// Label creates a <label> with text content.
func Label(text string, attrs map[string]any) *VNode {
	return NewVNode("label", attrs, nil, text)
}

// Input returns an <input>. The value is carried in Content.
func Input(value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	if _, ok := attrs["type"]; !ok {
		attrs["type"] = "text"
	}
	return NewVNode("input", attrs, nil, value)
}

// InputText returns a VNode representing an <input type="text"> element.
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// TextArea returns a <textarea> holding value.
func TextArea(value string, attrs map[string]any) *VNode {
	return NewVNode("textarea", attrs, nil, value)
}

// Fragment groups nodes under a <div> with display:contents so that
// conditional blocks can be swapped as a single child.
func Fragment(children ...*VNode) *VNode {
	return Element("div", map[string]any{"style": "display: contents"}, children...)
}

// compact drops nil children so callers can write conditional nodes inline.
func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	out := children[:0:0]
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
