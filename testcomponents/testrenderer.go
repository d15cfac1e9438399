//go:build !wasm

// Package testcomponents provides an in-memory renderer for driving
// components from native tests.
package testcomponents

import (
	"fmt"

	"github.com/communitycvs/bootcamp/events"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// Child components are kept in a runtime.Tree, so lifecycle hooks run and
// instances survive re-renders exactly as they do in the browser. Event
// helpers find a node by id and call its handler the way a DOM event would.
type TestRenderer struct {
	tree        *runtime.Tree
	component   runtime.Component
	currentVDOM *vdom.VNode
	rendering   bool
	dirty       bool
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	return &TestRenderer{
		tree:      runtime.NewTree(),
		component: comp,
	}
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender re-renders the whole tree. Requests made while a render is in
// progress are folded into it.
func (r *TestRenderer) ReRender() {
	if r.rendering {
		r.dirty = true
		return
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.dirty = false
		r.currentVDOM = r.tree.Render(r, r.component)
		r.renders++
		if !r.dirty {
			return
		}
	}
}

// RenderChild mounts or updates the child at key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	return r.tree.Child(r, key, child)
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders counts completed render cycles.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// Instance returns the live component mounted at key.
func (r *TestRenderer) Instance(key string) (runtime.Component, bool) {
	return r.tree.Instance(key)
}

// FindByID looks id up in the current VDOM.
func (r *TestRenderer) FindByID(id string) *vdom.VNode {
	return vdom.FindByID(r.currentVDOM, id)
}

// Click fires onClick on the element with the given id.
func (r *TestRenderer) Click(id string) error {
	h, err := r.handler(id, "onClick")
	if err != nil {
		return err
	}
	fn, ok := h.(func())
	if !ok {
		return fmt.Errorf("#%s: onClick has type %T", id, h)
	}
	fn()
	return nil
}

// Input fires onInput on the element with the given id, as if value had
// been typed into it.
func (r *TestRenderer) Input(id, value string) error {
	h, err := r.handler(id, "onInput")
	if err != nil {
		return err
	}
	fn, ok := h.(func(events.ChangeEventArgs))
	if !ok {
		return fmt.Errorf("#%s: onInput has type %T", id, h)
	}
	n := r.FindByID(id)
	fn(events.ChangeEventArgs{Name: n.Attr("name"), Value: value})
	return nil
}

// Submit fires onSubmit on the form with the given id.
func (r *TestRenderer) Submit(id string) error {
	h, err := r.handler(id, "onSubmit")
	if err != nil {
		return err
	}
	fn, ok := h.(func())
	if !ok {
		return fmt.Errorf("#%s: onSubmit has type %T", id, h)
	}
	fn()
	return nil
}

func (r *TestRenderer) handler(id, event string) (any, error) {
	n := r.FindByID(id)
	if n == nil {
		return nil, fmt.Errorf("no element with id %q", id)
	}
	h, ok := n.Handler(event)
	if !ok {
		return nil, fmt.Errorf("#%s has no %s handler", id, event)
	}
	return h, nil
}
