//go:build js || wasm

package scroll

import "syscall/js"

// DOMAnchor returns an Anchor that resolves the element with the given id
// when scrolled to and scrolls it smoothly into view. A missing element is
// ignored.
func DOMAnchor(id string) Anchor {
	return AnchorFunc(func() {
		doc := js.Global().Get("document")
		if !doc.Truthy() {
			return
		}
		el := doc.Call("getElementById", id)
		if !el.Truthy() {
			return
		}
		opts := js.Global().Get("Object").New()
		opts.Set("behavior", "smooth")
		el.Call("scrollIntoView", opts)
	})
}
