//go:build !wasm

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/communitycvs/bootcamp/router"
	"github.com/communitycvs/bootcamp/scroll"
)

func newController() (*Controller, *int) {
	renders := 0
	c := NewController(router.New(), scroll.New())
	c.OnChange(func() { renders++ })
	return c, &renders
}

func TestController_NavigateClosesMenuAndNotifiesOnce(t *testing.T) {
	c, renders := newController()
	c.ToggleMenu()
	assert.True(t, c.MenuOpen())
	*renders = 0

	c.GoApply()

	assert.Equal(t, router.Apply, c.Mode())
	assert.False(t, c.MenuOpen())
	assert.Equal(t, 1, *renders)
}

func TestController_NavigateToCurrentModeStillNotifies(t *testing.T) {
	c, renders := newController()

	c.GoHome()

	assert.Equal(t, router.Home, c.Mode())
	assert.Equal(t, 1, *renders)
}

func TestController_ScrollClosesMenuEvenWhenUnbound(t *testing.T) {
	c, renders := newController()
	c.ToggleMenu()
	*renders = 0

	c.ScrollTo(scroll.Curriculum)

	assert.False(t, c.MenuOpen())
	assert.Equal(t, 1, *renders)
}

func TestController_ScrollWithClosedMenuDoesNotRerender(t *testing.T) {
	c, renders := newController()
	hits := 0
	c.Scroller().Bind(scroll.About, scroll.AnchorFunc(func() { hits++ }))

	c.ScrollTo(scroll.About)

	assert.Equal(t, 1, hits)
	assert.Equal(t, 0, *renders)
}

func TestController_ToggleMenu(t *testing.T) {
	c, renders := newController()

	c.ToggleMenu()
	c.ToggleMenu()

	assert.False(t, c.MenuOpen())
	assert.Equal(t, 2, *renders)
}
