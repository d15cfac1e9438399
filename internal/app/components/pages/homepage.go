package pages

import (
	"github.com/communitycvs/bootcamp/events"
	"github.com/communitycvs/bootcamp/internal/app/components/shared/icons"
	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/scroll"
	"github.com/communitycvs/bootcamp/vdom"
)

const ctaButtonClass = "inline-flex items-center gap-2 px-8 py-3 rounded-md text-white gradient-bg hover:opacity-90 hover-lift"

// HomePage is the landing view: hero, about, curriculum, instructors,
// testimonials and a closing call to action. It is a pure function of the
// catalog. While mounted it binds the four section anchors on the scroller.
type HomePage struct {
	runtime.ComponentBase

	Catalog *content.Catalog

	// Scroller receives the section anchors on mount. Optional.
	Scroller *scroll.Scroller
	// Anchor builds the on-screen handle for a section id.
	Anchor func(id string) scroll.Anchor

	// OnApply is called by the "Apply Now" buttons.
	OnApply func()
}

func (h *HomePage) ApplyProps(next runtime.Component) {
	if n, ok := next.(*HomePage); ok {
		h.Catalog = n.Catalog
		h.OnApply = n.OnApply
	}
}

func (h *HomePage) OnInit() {
	if h.Scroller == nil || h.Anchor == nil {
		return
	}
	for _, target := range scroll.Targets() {
		h.Scroller.Bind(target, h.Anchor(target.ID()))
	}
}

func (h *HomePage) OnDestroy() {
	if h.Scroller == nil {
		return
	}
	for _, target := range scroll.Targets() {
		h.Scroller.Unbind(target)
	}
}

func (h *HomePage) HandleApply() {
	if h.OnApply != nil {
		h.OnApply()
	}
}

func (h *HomePage) Render(r runtime.Renderer) *vdom.VNode {
	c := h.Catalog
	if c == nil {
		c = &content.Catalog{}
	}
	return vdom.Div(map[string]any{"class": "home"},
		h.hero(c),
		h.about(c),
		h.curriculum(c),
		h.instructors(c),
		h.testimonials(c),
		h.callToAction(c),
	)
}

func (h *HomePage) applyButton(id string) *vdom.VNode {
	return vdom.Button("", map[string]any{
		"id":      id,
		"type":    "button",
		"class":   ctaButtonClass,
		"onClick": events.AdaptNoArgEvent(h.HandleApply),
	},
		vdom.Text("Apply Now"),
		icons.Icon("arrow-right", "w-4 h-4"),
	)
}

func (h *HomePage) hero(c *content.Catalog) *vdom.VNode {
	return vdom.Section(map[string]any{
		"id":    "hero",
		"class": "relative h-[70vh] flex items-center justify-center text-center overflow-hidden",
	},
		vdom.Img(map[string]any{
			"src":   c.Hero.Image,
			"alt":   c.Hero.ImageAlt,
			"class": "absolute inset-0 w-full h-full object-cover object-center",
		}),
		vdom.Div(map[string]any{"class": "absolute inset-0 bg-black/60"}),
		vdom.Div(map[string]any{"class": "relative z-10 max-w-3xl mx-auto px-4 text-white"},
			vdom.Heading(2, c.Hero.Title, map[string]any{"class": "text-4xl sm:text-5xl font-extrabold mb-4 leading-tight"}),
			vdom.Paragraph(c.Hero.Tagline, map[string]any{"class": "text-lg sm:text-xl mb-8 text-gray-200"}),
			h.applyButton("hero-apply"),
		),
	)
}

func (h *HomePage) about(c *content.Catalog) *vdom.VNode {
	return vdom.Section(map[string]any{"id": scroll.About.ID(), "class": "py-24 bg-white"},
		vdom.Div(map[string]any{"class": "max-w-5xl mx-auto px-4 text-center"},
			vdom.Heading(3, c.About.Heading, map[string]any{"class": "text-3xl font-bold mb-4 gradient-text"}),
			vdom.Paragraph(c.About.Body, map[string]any{"class": "text-gray-600 max-w-3xl mx-auto text-lg leading-relaxed"}),
		),
	)
}

func (h *HomePage) curriculum(c *content.Catalog) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(c.Modules))
	for _, m := range c.Modules {
		cards = append(cards, vdom.Div(map[string]any{
			"class":     "p-6 rounded-lg border border-gray-200 bg-white hover-lift creative-border",
			"data-card": "module",
		},
			vdom.Div(map[string]any{"class": "flex items-center justify-center w-12 h-12 rounded-md gradient-bg text-white mb-4"},
				icons.Icon(m.Icon, "w-6 h-6"),
			),
			vdom.Heading(4, m.Title, map[string]any{"class": "font-semibold text-lg mb-2"}),
			vdom.Paragraph(m.Description, map[string]any{"class": "text-gray-600 text-sm leading-relaxed"}),
		).WithKey(m.Title))
	}

	return vdom.Section(map[string]any{"id": scroll.Curriculum.ID(), "class": "py-24 bg-gray-50"},
		vdom.Div(map[string]any{"class": "max-w-6xl mx-auto px-4"},
			vdom.Heading(3, "Curriculum Overview", map[string]any{"class": "text-3xl font-bold mb-12 text-center gradient-text"}),
			vdom.Div(map[string]any{"class": "grid gap-8 sm:grid-cols-2 lg:grid-cols-3"}, cards...),
		),
	)
}

func (h *HomePage) instructors(c *content.Catalog) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(c.Instructors))
	for _, in := range c.Instructors {
		cards = append(cards, vdom.Div(map[string]any{
			"class":     "text-center p-6 rounded-lg border border-gray-200 bg-white hover-lift creative-border",
			"data-card": "instructor",
		},
			vdom.Img(map[string]any{
				"src":   in.Image,
				"alt":   in.Name + " portrait",
				"class": "w-32 h-32 mx-auto rounded-full object-cover mb-4",
			}),
			vdom.Heading(4, in.Name, map[string]any{"class": "font-semibold text-lg"}),
			vdom.Paragraph(in.Role, map[string]any{"class": "text-gray-500 text-sm"}),
		).WithKey(in.Name))
	}

	return vdom.Section(map[string]any{"id": scroll.Instructors.ID(), "class": "py-24 bg-white"},
		vdom.Div(map[string]any{"class": "max-w-6xl mx-auto px-4"},
			vdom.Heading(3, "Meet Your Instructors", map[string]any{"class": "text-3xl font-bold mb-12 text-center gradient-text"}),
			vdom.Div(map[string]any{"class": "grid gap-8 sm:grid-cols-2 lg:grid-cols-3"}, cards...),
		),
	)
}

func (h *HomePage) testimonials(c *content.Catalog) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(c.Testimonials))
	for _, tm := range c.Testimonials {
		cards = append(cards, vdom.Div(map[string]any{
			"class":     "p-6 rounded-lg border border-gray-200 bg-white hover-lift creative-border",
			"data-card": "testimonial",
		},
			vdom.Div(map[string]any{"class": "flex items-center gap-2 mb-2 stars"}, icons.Stars(tm.Rating)...),
			vdom.Paragraph("“"+tm.Quote+"”", map[string]any{"class": "text-gray-700 italic mb-3"}),
			vdom.Paragraph("– "+tm.Name, map[string]any{"class": "font-medium text-gray-900"}),
		).WithKey(tm.Name))
	}

	return vdom.Section(map[string]any{"id": scroll.Testimonials.ID(), "class": "py-24 bg-gray-50"},
		vdom.Div(map[string]any{"class": "max-w-6xl mx-auto px-4"},
			vdom.Heading(3, "Success Stories", map[string]any{"class": "text-3xl font-bold mb-12 text-center gradient-text"}),
			vdom.Div(map[string]any{"class": "grid gap-12 lg:grid-cols-2"},
				vdom.Div(map[string]any{"class": "aspect-video rounded-lg overflow-hidden shadow-lg"},
					vdom.IFrame(map[string]any{
						"src":             c.Video.Src,
						"title":           c.Video.Title,
						"allow":           "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
						"allowfullscreen": true,
						"class":           "w-full h-full",
					}),
				),
				vdom.Div(map[string]any{"class": "space-y-8"}, cards...),
			),
		),
	)
}

func (h *HomePage) callToAction(c *content.Catalog) *vdom.VNode {
	return vdom.Section(map[string]any{"id": "cta", "class": "py-24 bg-white"},
		vdom.Div(map[string]any{"class": "max-w-4xl mx-auto px-4 text-center"},
			vdom.Heading(3, c.CTA.Heading, map[string]any{"class": "text-3xl font-bold mb-4 gradient-text"}),
			vdom.Paragraph(c.CTA.Body, map[string]any{"class": "text-gray-600 text-lg mb-8"}),
			h.applyButton("cta-apply"),
		),
	)
}
