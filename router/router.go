package router

import (
	"github.com/communitycvs/bootcamp/console"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/signals"
	"github.com/communitycvs/bootcamp/vdom"
)

// Route binds a view mode to the component that renders it.
type Route struct {
	Mode Mode
	// Key is the instance key the view is mounted under. Leaving a view
	// unmounts that instance, so coming back builds a fresh one.
	Key     string
	Factory func() runtime.Component
}

// Router is an in-memory view selector. It holds the current Mode and renders
// the matching route. There is no URL synchronisation: the mode lives for
// the page session only.
type Router struct {
	mode   *signals.Signal[Mode]
	routes map[Mode]Route
}

// New creates a router showing Home.
func New() *Router {
	return &Router{
		mode:   signals.NewSignal(Home),
		routes: make(map[Mode]Route),
	}
}

// RegisterRoutes adds routes, keyed by Mode.
func (r *Router) RegisterRoutes(routes ...Route) {
	for _, route := range routes {
		r.routes[route.Mode] = route
	}
}

// CurrentMode returns the mode being shown.
func (r *Router) CurrentMode() Mode {
	return r.mode.Get()
}

// Navigate switches to mode. It is a plain assignment; subscribers are
// notified even when the mode does not change.
func (r *Router) Navigate(mode Mode) {
	console.Log("[Router.Navigate]", r.mode.Get().String(), "->", mode.String())
	r.mode.Set(mode)
}

// OnChange registers fn to run after every Navigate.
func (r *Router) OnChange(fn func(Mode)) (unsubscribe func()) {
	return r.mode.Subscribe(fn)
}

// Outlet renders the route for the current mode as a child of the calling component.
func (r *Router) Outlet(rr runtime.Renderer) *vdom.VNode {
	mode := r.mode.Get()
	route, ok := r.routes[mode]
	if !ok || route.Factory == nil {
		console.Error("[Router.Outlet] No route registered for view:", mode.String())
		return vdom.Div(nil)
	}
	return rr.RenderChild(route.Key, route.Factory())
}
