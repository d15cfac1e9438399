//go:build !wasm

package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/internal/form"
	"github.com/communitycvs/bootcamp/scroll"
	"github.com/communitycvs/bootcamp/testcomponents"
	"github.com/communitycvs/bootcamp/vdom"
)

func TestHomePage_BindsSectionsWhileMounted(t *testing.T) {
	sc := scroll.New()
	var hits []string
	home := &HomePage{
		Catalog:  content.Default(),
		Scroller: sc,
		Anchor: func(id string) scroll.Anchor {
			return scroll.AnchorFunc(func() { hits = append(hits, id) })
		},
	}
	r := testcomponents.NewTestRenderer(home)
	r.RenderRoot()

	assert.True(t, sc.ScrollTo(scroll.Instructors))
	assert.Equal(t, []string{"instructors"}, hits)

	home.OnDestroy()
	assert.False(t, sc.ScrollTo(scroll.Instructors))
	assert.Len(t, hits, 1)
}

func TestHomePage_RendersDefaultCatalog(t *testing.T) {
	c := content.Default()
	r := testcomponents.NewTestRenderer(&HomePage{Catalog: c})
	root := r.RenderRoot()

	for _, id := range []string{"hero", "about", "curriculum", "instructors", "testimonials", "cta"} {
		assert.NotNil(t, vdom.FindByID(root, id), id)
	}
	img := vdom.Find(root, func(n *vdom.VNode) bool { return n.Attr("alt") == c.Instructors[0].Name+" portrait" })
	assert.NotNil(t, img)
	frame := vdom.Find(root, func(n *vdom.VNode) bool { return n.Tag == "iframe" })
	require.NotNil(t, frame)
	assert.Equal(t, c.Video.Src, frame.Attr("src"))
}

func TestHomePage_ApplyButtonsCallOnApply(t *testing.T) {
	calls := 0
	r := testcomponents.NewTestRenderer(&HomePage{Catalog: content.Default(), OnApply: func() { calls++ }})
	r.RenderRoot()

	require.NoError(t, r.Click("hero-apply"))
	require.NoError(t, r.Click("cta-apply"))

	assert.Equal(t, 2, calls)
}

func TestApplyPage_TypingUpdatesFormAndInputs(t *testing.T) {
	ap := &ApplyPage{}
	r := testcomponents.NewTestRenderer(ap)
	r.RenderRoot()

	require.NoError(t, r.Input("organisation", "Arts Co"))
	require.NoError(t, r.Input("message", "Keen to learn"))

	assert.Equal(t, form.Application{Organisation: "Arts Co", Message: "Keen to learn"}, ap.Form().Values())
	assert.Equal(t, "Arts Co", r.FindByID("organisation").Content)
	assert.Equal(t, "Keen to learn", r.FindByID("message").Content)
}

func TestApplyPage_BothMessagesWhenEmpty(t *testing.T) {
	ap := &ApplyPage{}
	r := testcomponents.NewTestRenderer(ap)
	r.RenderRoot()

	require.NoError(t, r.Submit("application-form"))

	assert.Equal(t, "Full Name is required", r.FindByID("name-error").Content)
	assert.Equal(t, "Email Address is required", r.FindByID("email-error").Content)
	assert.Equal(t, "email-error", r.FindByID("email").Attr("aria-describedby"))
}

func TestApplyPage_AcknowledgementUsesCatalogCopy(t *testing.T) {
	back := 0
	ap := &ApplyPage{
		Acknowledgement: content.Block{Heading: "Thanks!", Body: "We will be in touch."},
		OnBackHome:      func() { back++ },
	}
	r := testcomponents.NewTestRenderer(ap)
	r.RenderRoot()
	require.NoError(t, r.Input("name", "Sam"))
	require.NoError(t, r.Input("email", "sam@example.com"))

	require.NoError(t, r.Submit("application-form"))

	ack := r.FindByID("application-submitted")
	require.NotNil(t, ack)
	assert.Equal(t, "Thanks!We will be in touch.Back to Home", vdom.TextContent(ack))
	require.NoError(t, r.Click("ack-back-home"))
	assert.Equal(t, 1, back)
}
