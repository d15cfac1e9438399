//go:build js || wasm

package vdom

import (
	"syscall/js"

	"github.com/communitycvs/bootcamp/console"
)

// releaseCallbacks releases all js.Func objects stored in a VNode. Use it
// for elements leaving the DOM; patched elements need detachEventListeners.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.Func.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// detachEventListeners removes the listeners oldVNode attached to el and
// releases them. el stays in the DOM, so a released func must not stay
// registered on it.
func detachEventListeners(el js.Value, oldVNode *VNode) {
	if oldVNode == nil {
		return
	}

	for _, cb := range oldVNode.GetEventCallbacks() {
		jsFunc, ok := cb.Func.(js.Func)
		if !ok {
			continue
		}
		el.Call("removeEventListener", cb.Event, jsFunc)
		jsFunc.Release()
	}
	oldVNode.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountElement(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined()
	}
	return mount
}

// Clear empties the mount element and releases the callbacks of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount := mountElement(selector)
	if !mount.Truthy() {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if IsEventAttribute(key) {
		return
	}

	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
	default:
		el.Call("setAttribute", key, v)
	}
}

// attachEventListeners attaches the "on*" attributes holding func(js.Value) handlers.
// The js.Func objects are stored on the VNode for later cleanup.
func attachEventListeners(el js.Value, vnode *VNode) {
	for key, value := range vnode.Attributes {
		if !IsEventAttribute(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			console.Warn("Ignoring event handler with unexpected type for", key)
			continue
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})

		event := EventName(key)
		el.Call("addEventListener", event, cb)
		vnode.AddEventCallback(event, cb)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n)

	switch n.Tag {
	case "input", "textarea":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	}

	if n.Content != "" {
		el.Call("appendChild", doc.Call("createTextNode", n.Content))
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount := mountElement(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	parent := domElement.Get("parentNode")
	if parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	// Different component or different sibling identity: replace the subtree.
	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Key != newVNode.Key || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	detachEventListeners(domElement, oldVNode)
	attachEventListeners(domElement, newVNode)

	switch newVNode.Tag {
	case "input", "textarea":
		// Leave the focused field alone so typing is not interrupted.
		if !domElement.Call("matches", ":focus").Bool() {
			if domElement.Get("value").String() != newVNode.Content {
				domElement.Set("value", newVNode.Content)
			}
		}
		return
	}

	if len(newVNode.Children) == 0 && len(oldVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	if oldVNode.Content != newVNode.Content {
		// Mixed content and children changed shape; rebuild rather than guess offsets.
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	offset := 0
	if newVNode.Content != "" {
		offset = 1
	}
	patchChildren(domElement, offset, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if IsEventAttribute(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if IsEventAttribute(key) {
			continue
		}
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element. offset skips leading
// DOM nodes that belong to the element's own text content.
func patchChildren(domElement js.Value, offset int, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i+offset)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i+offset)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
