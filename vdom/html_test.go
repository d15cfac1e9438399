//go:build !wasm

package vdom

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, n *VNode) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, n))
	return buf.String()
}

func TestRenderHTML_SortsAttributesAndDropsHandlers(t *testing.T) {
	n := Button("Go", map[string]any{
		"type":    "button",
		"id":      "go",
		"class":   "btn",
		"onClick": func() {},
	})

	assert.Equal(t, `<button class="btn" id="go" type="button">Go</button>`, renderString(t, n))
}

func TestRenderHTML_BooleanAttributes(t *testing.T) {
	n := Input("", map[string]any{"id": "name", "required": true, "disabled": false})

	assert.Equal(t, `<input id="name" required="" type="text"/>`, renderString(t, n))
}

func TestRenderHTML_FormValues(t *testing.T) {
	in := Input("Jane", map[string]any{"id": "name"})
	area := TextArea("line <one>", map[string]any{"rows": "4"})

	assert.Equal(t, `<input id="name" type="text" value="Jane"/>`, renderString(t, in))
	assert.Equal(t, `<textarea rows="4">line &lt;one&gt;</textarea>`, renderString(t, area))
}

func TestRenderHTML_NestedAndText(t *testing.T) {
	n := Div(map[string]any{"class": "card"},
		Heading(3, "Title", nil),
		nil,
		P(nil, Text("a & b")),
	)

	assert.Equal(t, `<div class="card"><h3>Title</h3><p>a &amp; b</p></div>`, renderString(t, n))
}

func TestRenderHTML_Nil(t *testing.T) {
	assert.Equal(t, "", renderString(t, nil))
}
