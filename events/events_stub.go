//go:build !wasm
// +build !wasm

package events

// Stub file for non-WASM builds so components and their tests compile natively.
// The handlers are returned unchanged; tests invoke them directly.

// AdaptNoArgEvent is a stub for non-WASM builds.
func AdaptNoArgEvent(handler func()) func() {
	return handler
}

// AdaptChangeEvent is a stub for non-WASM builds.
func AdaptChangeEvent(handler func(ChangeEventArgs)) func(ChangeEventArgs) {
	return handler
}

// AdaptSubmitEvent is a stub for non-WASM builds.
func AdaptSubmitEvent(handler func()) func() {
	return handler
}
