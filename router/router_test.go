//go:build !wasm

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/vdom"
)

type viewStub struct {
	runtime.ComponentBase
	label string
}

func (v *viewStub) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(v.label, nil)
}

func TestRouter_StartsAtHome(t *testing.T) {
	assert.Equal(t, Home, New().CurrentMode())
}

func TestRouter_NavigateAssignsAndNotifies(t *testing.T) {
	r := New()
	var seen []Mode
	r.OnChange(func(m Mode) { seen = append(seen, m) })

	r.Navigate(Apply)
	r.Navigate(Apply)
	r.Navigate(Home)

	assert.Equal(t, Home, r.CurrentMode())
	assert.Equal(t, []Mode{Apply, Apply, Home}, seen)
}

func TestRouter_OutletRendersCurrentRoute(t *testing.T) {
	r := New()
	r.RegisterRoutes(
		Route{Mode: Home, Key: "home", Factory: func() runtime.Component { return &viewStub{label: "landing"} }},
		Route{Mode: Apply, Key: "apply", Factory: func() runtime.Component { return &viewStub{label: "form"} }},
	)
	static := runtime.NewStaticRenderer(&outletHost{router: r})

	root := static.Render()
	require.NotNil(t, root)
	assert.Equal(t, "landing", root.Content)
	assert.Equal(t, "home", root.ComponentKey)

	r.Navigate(Apply)
	root = static.Render()
	assert.Equal(t, "form", root.Content)
	assert.Equal(t, "apply", root.ComponentKey)
}

func TestRouter_OutletWithoutRouteRendersEmptyDiv(t *testing.T) {
	r := New()
	static := runtime.NewStaticRenderer(&outletHost{router: r})

	root := static.Render()

	require.NotNil(t, root)
	assert.Equal(t, "div", root.Tag)
	assert.Empty(t, root.Children)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("apply")
	require.NoError(t, err)
	assert.Equal(t, Apply, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Home, m)

	_, err = ParseMode("admin")
	assert.Error(t, err)
}

// outletHost is a root component whose whole body is the router outlet.
type outletHost struct {
	runtime.ComponentBase
	router *Router
}

func (h *outletHost) Render(r runtime.Renderer) *vdom.VNode {
	return h.router.Outlet(r)
}
