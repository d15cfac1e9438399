//go:build js || wasm

package runtime

import "github.com/communitycvs/bootcamp/vdom"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the browser implementation of the Renderer interface.
// It manages the component instance tree and patches the DOM under mountID.
type RendererImpl struct {
	tree             *Tree
	currentComponent Component
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	rendering        bool
	dirty            bool
}

// NewRenderer creates a new runtime renderer that mounts under the CSS selector mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{
		tree:    NewTree(),
		mountID: mountID,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// RenderRoot starts the rendering process for the entire application.
// State changes requested while rendering (for example from OnInit) are
// folded into another pass instead of re-entering the renderer.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}
	if r.rendering {
		r.dirty = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		newVDOM := r.tree.Render(r, r.currentComponent)

		if r.prevVDOM == nil {
			vdom.Clear(r.mountID, nil)
			vdom.RenderToSelector(r.mountID, newVDOM)
		} else {
			vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
		}
		r.prevVDOM = newVDOM

		if !r.dirty {
			return
		}
	}
}

// RenderChild is called by Render() code to render a child component.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	return r.tree.Child(r, key, childWithProps)
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}
