//go:build js || wasm

// Command bootcamp is the WebAssembly build of the site.
package main

import (
	"time"

	"github.com/communitycvs/bootcamp/console"
	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/internal/site"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/scroll"
)

const mountSelector = "#app"

func main() {
	ctrl, shell := site.New(site.Config{
		Catalog: content.Default(),
		Year:    time.Now().Year(),
		Anchor:  scroll.DOMAnchor,
	})

	renderer := runtime.NewRenderer(mountSelector)
	renderer.SetCurrentComponent(shell)
	ctrl.OnChange(renderer.ReRender)

	renderer.RenderRoot()
	console.Log("[main] bootcamp site mounted on", mountSelector)

	// Keep the Go program alive to handle events.
	select {}
}
