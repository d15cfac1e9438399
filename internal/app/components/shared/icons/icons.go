// Package icons renders icon placeholders. The glyphs come from the icon
// font loaded by the page; the markup only names them.
package icons

import (
	"strconv"

	"github.com/communitycvs/bootcamp/vdom"
)

// Icon renders <i data-icon="name">.
func Icon(name, class string) *vdom.VNode {
	return vdom.Element("i", map[string]any{
		"data-icon":   name,
		"class":       "icon icon-" + name + " " + class,
		"aria-hidden": "true",
	})
}

// Stars renders exactly rating filled stars. Ratings are range-checked when
// the catalog loads, not here.
func Stars(rating int) []*vdom.VNode {
	if rating <= 0 {
		return nil
	}
	stars := make([]*vdom.VNode, rating)
	for i := range stars {
		stars[i] = Icon("star", "w-4 h-4 text-yellow-500 fill-yellow-500").WithKey(strconv.Itoa(i))
	}
	return stars
}
