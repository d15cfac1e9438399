// Package site assembles the page: it builds the router with both views,
// the section scroller, the session controller and the shell around them.
package site

import (
	"github.com/communitycvs/bootcamp/internal/app"
	"github.com/communitycvs/bootcamp/internal/app/components/pages"
	"github.com/communitycvs/bootcamp/internal/app/components/shell"
	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/router"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/scroll"
)

// Instance keys the two views mount under.
const (
	HomeKey  = "home"
	ApplyKey = "apply"
)

// Config is everything the page needs from its host.
type Config struct {
	// Catalog defaults to content.Default().
	Catalog *content.Catalog
	// Year is printed in the footer.
	Year int
	// Anchor builds the on-screen handle for a section id. In the browser
	// this is scroll.DOMAnchor. Nil leaves every section unbound.
	Anchor func(id string) scroll.Anchor
}

// New builds a page session starting in the home view. The returned shell is
// the root component to render; the controller carries all navigation.
func New(cfg Config) (*app.Controller, *shell.Shell) {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = content.Default()
	}

	rt := router.New()
	sc := scroll.New()
	ctrl := app.NewController(rt, sc)

	rt.RegisterRoutes(
		router.Route{
			Mode: router.Home,
			Key:  HomeKey,
			Factory: func() runtime.Component {
				return &pages.HomePage{
					Catalog:  catalog,
					Scroller: sc,
					Anchor:   cfg.Anchor,
					OnApply:  ctrl.GoApply,
				}
			},
		},
		router.Route{
			Mode: router.Apply,
			Key:  ApplyKey,
			Factory: func() runtime.Component {
				return &pages.ApplyPage{
					Acknowledgement: catalog.Acknowledgement,
					OnBackHome:      ctrl.GoHome,
				}
			},
		},
	)

	return ctrl, &shell.Shell{Controller: ctrl, Catalog: catalog, Year: cfg.Year}
}
