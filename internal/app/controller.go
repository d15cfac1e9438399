// Package app owns the page session: which view is shown, whether the mobile
// menu is open, and the section scroller. All of it lives in memory for one
// page load and is never persisted.
package app

import (
	"github.com/communitycvs/bootcamp/router"
	"github.com/communitycvs/bootcamp/scroll"
)

// Controller is the root of the session state. The shell and the views send
// every navigation intent through it.
type Controller struct {
	router   *router.Router
	scroller *scroll.Scroller
	menuOpen bool
	onChange []func()
}

// NewController wires a router and scroller into a controller. Navigating or
// scrolling always closes the mobile menu.
func NewController(rt *router.Router, sc *scroll.Scroller) *Controller {
	c := &Controller{router: rt, scroller: sc}
	rt.OnChange(func(router.Mode) { c.notify() })
	sc.AfterScroll(func(scroll.Target) { c.closeMenu() })
	return c
}

// Router returns the view router.
func (c *Controller) Router() *router.Router { return c.router }

// Scroller returns the section scroller.
func (c *Controller) Scroller() *scroll.Scroller { return c.scroller }

// Mode returns the view being shown.
func (c *Controller) Mode() router.Mode { return c.router.CurrentMode() }

// MenuOpen reports whether the mobile menu is expanded.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// OnChange registers fn to run whenever session state changes and the page
// should re-render.
func (c *Controller) OnChange(fn func()) {
	c.onChange = append(c.onChange, fn)
}

// Navigate shows mode and closes the menu. The router notification triggers
// the single re-render.
func (c *Controller) Navigate(mode router.Mode) {
	c.menuOpen = false
	c.router.Navigate(mode)
}

// GoHome is Navigate(router.Home).
func (c *Controller) GoHome() { c.Navigate(router.Home) }

// GoApply is Navigate(router.Apply).
func (c *Controller) GoApply() { c.Navigate(router.Apply) }

// ScrollTo scrolls to target when the home view is mounted and closes the
// menu either way.
func (c *Controller) ScrollTo(target scroll.Target) {
	c.scroller.ScrollTo(target)
}

// ToggleMenu opens or closes the mobile menu.
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
	c.notify()
}

func (c *Controller) closeMenu() {
	if !c.menuOpen {
		return
	}
	c.menuOpen = false
	c.notify()
}

func (c *Controller) notify() {
	for _, fn := range c.onChange {
		fn()
	}
}
