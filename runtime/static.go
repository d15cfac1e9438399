package runtime

import "github.com/communitycvs/bootcamp/vdom"

// Compile-time assertion to ensure StaticRenderer implements the Renderer interface.
var _ Renderer = (*StaticRenderer)(nil)

// StaticRenderer renders a component tree in memory, without a DOM. It backs
// the static HTML export. State changes requested during a render are
// folded into that render cycle.
type StaticRenderer struct {
	tree      *Tree
	root      Component
	current   *vdom.VNode
	rendering bool
	dirty     bool
}

// NewStaticRenderer creates a renderer for root.
func NewStaticRenderer(root Component) *StaticRenderer {
	return &StaticRenderer{tree: NewTree(), root: root}
}

// Render runs render cycles until the tree is stable and returns the VDOM.
func (s *StaticRenderer) Render() *vdom.VNode {
	s.ReRender()
	return s.current
}

// Current returns the most recent VDOM tree.
func (s *StaticRenderer) Current() *vdom.VNode {
	return s.current
}

// RenderChild delegates to the instance tree.
func (s *StaticRenderer) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return s.tree.Child(s, key, childWithProps)
}

// ReRender re-runs the render cycle.
func (s *StaticRenderer) ReRender() {
	if s.rendering {
		s.dirty = true
		return
	}
	s.rendering = true
	defer func() { s.rendering = false }()

	for {
		s.dirty = false
		s.current = s.tree.Render(s, s.root)
		if !s.dirty {
			return
		}
	}
}
