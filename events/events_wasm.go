//go:build js || wasm

package events

import "syscall/js"

// AdaptNoArgEvent wraps a no-argument handler as a DOM event listener.
func AdaptNoArgEvent(handler func()) func(js.Value) {
	return func(js.Value) {
		handler()
	}
}

// AdaptChangeEvent reads event.target.name and event.target.value into ChangeEventArgs.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(js.Value) {
	return func(e js.Value) {
		target := e.Get("target")
		args := ChangeEventArgs{}
		if target.Truthy() {
			args.Name = target.Get("name").String()
			args.Value = target.Get("value").String()
		}
		handler(args)
	}
}

// AdaptSubmitEvent prevents the browser's native form submission and page
// reload, then invokes handler.
func AdaptSubmitEvent(handler func()) func(js.Value) {
	return func(e js.Value) {
		if e.Truthy() {
			e.Call("preventDefault")
		}
		handler()
	}
}
