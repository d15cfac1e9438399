//go:build !wasm

package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitycvs/bootcamp/vdom"
)

// probe records its lifecycle calls into a shared log.
type probe struct {
	ComponentBase
	name  string
	log   *[]string
	Label string
	count int
}

func (p *probe) OnInit()          { *p.log = append(*p.log, p.name+":init") }
func (p *probe) OnParametersSet() { p.count++ }
func (p *probe) OnDestroy()       { *p.log = append(*p.log, p.name+":destroy") }

func (p *probe) ApplyProps(next Component) {
	if n, ok := next.(*probe); ok {
		p.Label = n.Label
	}
}

func (p *probe) Render(r Renderer) *vdom.VNode {
	return vdom.Paragraph(p.Label, nil)
}

// host renders one of two children depending on showA.
type host struct {
	ComponentBase
	showA bool
	log   *[]string
	label string
}

func (h *host) Render(r Renderer) *vdom.VNode {
	if h.showA {
		return vdom.Div(nil, r.RenderChild("a", &probe{name: "a", log: h.log, Label: h.label}))
	}
	return vdom.Div(nil, r.RenderChild("b", &probe{name: "b", log: h.log, Label: h.label}))
}

func TestTree_ReusesInstanceAndAppliesProps(t *testing.T) {
	var log []string
	h := &host{showA: true, log: &log, label: "one"}
	s := NewStaticRenderer(h)

	s.Render()
	first, ok := s.tree.Instance("a")
	require.True(t, ok)

	h.label = "two"
	root := s.Render()
	second, _ := s.tree.Instance("a")

	assert.Same(t, first, second, "instance at the same key must be kept")
	assert.Equal(t, "two", root.Children[0].Content)
	assert.Equal(t, 2, second.(*probe).count, "OnParametersSet runs before every render")
	assert.Equal(t, []string{"a:init"}, log)
}

func TestTree_UnmountsAndRemountsFresh(t *testing.T) {
	var log []string
	h := &host{showA: true, log: &log}
	s := NewStaticRenderer(h)
	s.Render()
	original, _ := s.tree.Instance("a")

	h.showA = false
	s.Render()
	_, stillThere := s.tree.Instance("a")
	assert.False(t, stillThere)

	h.showA = true
	s.Render()
	remounted, _ := s.tree.Instance("a")

	assert.NotSame(t, original, remounted)
	assert.Equal(t, []string{"a:init", "b:init", "a:destroy", "a:init", "b:destroy"}, log)
	assert.Equal(t, []string{RootKey, "a"}, s.tree.Mounted())
}

func TestTree_SetsComponentKeyOnChildRoot(t *testing.T) {
	var log []string
	s := NewStaticRenderer(&host{showA: true, log: &log})

	root := s.Render()

	assert.Equal(t, RootKey, root.ComponentKey)
	assert.Equal(t, "a", root.Children[0].ComponentKey)
}

// selfUpdating asks for a re-render from OnInit; the static renderer must fold
// that into the same Render call instead of recursing.
type selfUpdating struct {
	ComponentBase
	ready bool
}

func (c *selfUpdating) OnInit() {
	c.ready = true
	c.StateHasChanged()
}

func (c *selfUpdating) Render(r Renderer) *vdom.VNode {
	if c.ready {
		return vdom.Paragraph("ready", nil)
	}
	return vdom.Paragraph("loading", nil)
}

func TestStaticRenderer_FoldsNestedReRender(t *testing.T) {
	s := NewStaticRenderer(&selfUpdating{})

	root := s.Render()

	assert.Equal(t, "ready", root.Content)
}
