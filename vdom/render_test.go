//go:build js && wasm

package vdom

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeElement is a plain JS object with the element methods the patcher uses.
// It records which listeners are currently registered.
type fakeElement struct {
	el        js.Value
	listeners []js.Value
	added     int
	removed   int
	methods   []js.Func
}

func newFakeElement(t *testing.T) *fakeElement {
	t.Helper()
	f := &fakeElement{el: js.Global().Get("Object").New()}
	f.method("setAttribute", func([]js.Value) {})
	f.method("removeAttribute", func([]js.Value) {})
	f.method("addEventListener", func(args []js.Value) {
		f.added++
		f.listeners = append(f.listeners, args[1])
	})
	f.method("removeEventListener", func(args []js.Value) {
		for i, l := range f.listeners {
			if l.Equal(args[1]) {
				f.removed++
				f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
				return
			}
		}
	})
	t.Cleanup(func() {
		for _, m := range f.methods {
			m.Release()
		}
	})
	return f
}

func (f *fakeElement) method(name string, fn func([]js.Value)) {
	m := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args)
		return nil
	})
	f.methods = append(f.methods, m)
	f.el.Set(name, m)
}

func TestPatchElement_KeepsOneListenerPerEvent(t *testing.T) {
	calls := 0
	button := func() *VNode {
		return Button("Go", map[string]any{
			"id":      "go",
			"onClick": func(js.Value) { calls++ },
		})
	}
	f := newFakeElement(t)

	prev := button()
	attachEventListeners(f.el, prev)
	for range 3 {
		next := button()
		patchElement(f.el, prev, next)
		prev = next
	}

	require.Len(t, f.listeners, 1)
	assert.Equal(t, 4, f.added)
	assert.Equal(t, 3, f.removed)
	assert.Len(t, prev.GetEventCallbacks(), 1)

	f.listeners[0].Invoke(js.Global().Get("Object").New())
	assert.Equal(t, 1, calls)
}

func TestPatchElement_DropsListenerWhenHandlerRemoved(t *testing.T) {
	f := newFakeElement(t)
	withHandler := Button("Go", map[string]any{"onClick": func(js.Value) {}})
	attachEventListeners(f.el, withHandler)

	patchElement(f.el, withHandler, Button("Go", nil))

	assert.Empty(t, f.listeners)
	assert.Empty(t, withHandler.GetEventCallbacks())
}
