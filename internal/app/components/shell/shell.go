// Package shell is the page frame shared by both views: the fixed navigation
// bar with its mobile menu, the view outlet and the footer.
package shell

import (
	"strconv"

	"github.com/communitycvs/bootcamp/events"
	"github.com/communitycvs/bootcamp/internal/app"
	"github.com/communitycvs/bootcamp/internal/app/components/shared/icons"
	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/router"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/scroll"
	"github.com/communitycvs/bootcamp/vdom"
)

const (
	navLinkClass    = "text-gray-700 hover:text-brandPurple"
	mobileLinkClass = "block w-full text-left px-2 py-2 text-gray-700 hover:text-brandPurple"
	applyNowClass   = "px-4 py-2 rounded-md text-white gradient-bg hover:opacity-90 hover-lift"
)

// Shell is the root component. It reads view and menu state from the
// controller and renders the active view through the router outlet.
type Shell struct {
	runtime.ComponentBase

	Controller *app.Controller
	Catalog    *content.Catalog
	// Year is printed in the copyright line.
	Year int
}

func (s *Shell) Render(r runtime.Renderer) *vdom.VNode {
	c := s.Catalog
	if c == nil {
		c = &content.Catalog{}
	}
	return vdom.Div(map[string]any{"class": "min-h-screen flex flex-col"},
		s.nav(c),
		vdom.Main(map[string]any{"class": "flex-1 pt-16"}, s.Controller.Router().Outlet(r)),
		s.footer(c),
	)
}

func (s *Shell) nav(c *content.Catalog) *vdom.VNode {
	return vdom.Nav(map[string]any{
		"id":    "site-nav",
		"class": "fixed inset-x-0 top-0 z-50 bg-white/80 backdrop-blur border-b border-gray-200",
	},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex items-center justify-between h-16"},
			vdom.Button("", map[string]any{
				"id":      "brand",
				"type":    "button",
				"class":   "flex items-center gap-2",
				"onClick": events.AdaptNoArgEvent(s.Controller.GoHome),
			},
				vdom.Img(map[string]any{"src": c.Brand.Logo, "alt": c.Brand.LogoAlt, "class": "h-10 w-auto"}),
				vdom.Span(c.Brand.Name, map[string]any{"class": "sr-only"}),
			),
			vdom.Div(map[string]any{"id": "desktop-menu", "class": "hidden md:flex items-center gap-8"},
				append(s.links("desktop", navLinkClass), s.applyNow("desktop"))...,
			),
			vdom.Button("", map[string]any{
				"id":            "menu-toggle",
				"type":          "button",
				"class":         "md:hidden p-2 text-gray-700",
				"aria-label":    "Toggle menu",
				"aria-expanded": strconv.FormatBool(s.Controller.MenuOpen()),
				"onClick":       events.AdaptNoArgEvent(s.Controller.ToggleMenu),
			},
				s.toggleIcon(),
			),
		),
		s.mobileMenu(),
	)
}

func (s *Shell) toggleIcon() *vdom.VNode {
	if s.Controller.MenuOpen() {
		return icons.Icon("x", "w-6 h-6")
	}
	return icons.Icon("menu", "w-6 h-6")
}

func (s *Shell) mobileMenu() *vdom.VNode {
	if !s.Controller.MenuOpen() {
		return nil
	}
	items := s.links("mobile", mobileLinkClass)
	items = append(items, s.applyNow("mobile"))
	return vdom.Div(map[string]any{
		"id":    "mobile-menu",
		"class": "md:hidden bg-white border-t border-gray-200 px-4 pb-4 space-y-1",
	}, items...)
}

// links returns the section buttons in the home view and a single Home
// button in the apply view.
func (s *Shell) links(prefix, class string) []*vdom.VNode {
	if s.Controller.Mode() != router.Home {
		return []*vdom.VNode{
			vdom.Button("Home", map[string]any{
				"id":      prefix + "-home",
				"type":    "button",
				"class":   class,
				"onClick": events.AdaptNoArgEvent(s.Controller.GoHome),
			}),
		}
	}
	return s.sectionButtons(prefix, class)
}

func (s *Shell) sectionButtons(prefix, class string) []*vdom.VNode {
	targets := scroll.Targets()
	out := make([]*vdom.VNode, 0, len(targets))
	for _, target := range targets {
		out = append(out, vdom.Button(target.Label(), map[string]any{
			"id":          prefix + "-" + target.ID(),
			"type":        "button",
			"class":       class,
			"data-target": target.ID(),
			"onClick":     events.AdaptNoArgEvent(func() { s.Controller.ScrollTo(target) }),
		}).WithKey(target.ID()))
	}
	return out
}

func (s *Shell) applyNow(prefix string) *vdom.VNode {
	return vdom.Button("Apply Now", map[string]any{
		"id":      prefix + "-apply",
		"type":    "button",
		"class":   applyNowClass,
		"onClick": events.AdaptNoArgEvent(s.Controller.GoApply),
	})
}

func (s *Shell) footer(c *content.Catalog) *vdom.VNode {
	social := make([]*vdom.VNode, 0, len(c.Footer.Social))
	for _, link := range c.Footer.Social {
		social = append(social, vdom.A(map[string]any{
			"href":       link.Href,
			"aria-label": link.Label,
			"class":      "hover:text-white",
		}, icons.Icon(link.Icon, "w-5 h-5")).WithKey(link.Label))
	}

	quick := make([]*vdom.VNode, 0, len(scroll.Targets()))
	for _, b := range s.sectionButtons("footer", "hover:text-white") {
		quick = append(quick, vdom.Li(nil, b))
	}

	return vdom.Footer(map[string]any{"id": "site-footer", "class": "bg-gray-900 text-gray-400 py-12"},
		vdom.Div(map[string]any{"class": "max-w-7xl mx-auto px-4 grid gap-8 md:grid-cols-3"},
			vdom.Div(nil,
				vdom.Heading(4, c.Footer.AboutHeading, map[string]any{"class": "text-white font-semibold mb-4"}),
				vdom.Paragraph(c.Footer.About, map[string]any{"class": "text-sm leading-relaxed"}),
			),
			vdom.Div(nil,
				vdom.Heading(4, "Quick Links", map[string]any{"class": "text-white font-semibold mb-4"}),
				vdom.Ul(map[string]any{"class": "space-y-2 text-sm"}, quick...),
			),
			vdom.Div(nil,
				vdom.Heading(4, c.Footer.ContactHeading, map[string]any{"class": "text-white font-semibold mb-4"}),
				vdom.Paragraph(c.Footer.Contact, map[string]any{"class": "text-sm mb-4"}),
				vdom.Div(map[string]any{"class": "flex gap-4"}, social...),
			),
		),
		vdom.Paragraph(
			"© "+strconv.Itoa(s.Year)+" "+c.Brand.Name+". All rights reserved.",
			map[string]any{"id": "copyright", "class": "mt-8 text-center text-xs text-gray-500"},
		),
	)
}
