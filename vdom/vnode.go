package vdom

// TextTag is the tag of a pure text node with no element wrapper.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name, or TextTag
	Attributes map[string]any // Attributes and "on*" event handlers
	Children   []*VNode       // The child nodes
	Content    string         // Text content, or the value of input/textarea

	// Key identifies a node among its siblings (list items keyed by title).
	Key string

	// ComponentKey is set by the runtime on the root node of a child component.
	// The patcher replaces the whole subtree when it changes.
	ComponentKey string

	eventCallbacks []EventCallback
}

// EventCallback is a platform listener attached for one DOM event.
type EventCallback struct {
	Event string // DOM event name, e.g. "click"
	Func  any
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// WithKey sets the sibling key and returns the node for chaining.
func (v *VNode) WithKey(key string) *VNode {
	v.Key = key
	return v
}

// Attr returns the attribute value as a string, or "" if absent or not a string.
func (v *VNode) Attr(name string) string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes[name].(string)
	return s
}

// Handler returns the raw event handler stored under an "on*" attribute.
func (v *VNode) Handler(event string) (any, bool) {
	if v == nil || v.Attributes == nil {
		return nil, false
	}
	h, ok := v.Attributes[event]
	return h, ok
}

// AddEventCallback records a platform listener attached for event so it can
// be detached and released later.
func (v *VNode) AddEventCallback(event string, cb any) {
	v.eventCallbacks = append(v.eventCallbacks, EventCallback{Event: event, Func: cb})
}

// GetEventCallbacks returns the platform listeners attached to this node.
func (v *VNode) GetEventCallbacks() []EventCallback {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets the stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// IsEventAttribute reports whether an attribute key names an event handler ("onClick", "onInput").
func IsEventAttribute(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z'
}

// EventName converts "onClick" to "click".
func EventName(key string) string {
	name := key[2:]
	if name[0] >= 'A' && name[0] <= 'Z' {
		name = string(name[0]+('a'-'A')) + name[1:]
	}
	return name
}
