//go:build !wasm

package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStars_DrawsExactlyRating(t *testing.T) {
	for rating := 0; rating <= 5; rating++ {
		stars := Stars(rating)
		assert.Len(t, stars, rating)
		for _, s := range stars {
			assert.Equal(t, "star", s.Attr("data-icon"))
		}
	}
}

func TestStars_NegativeDrawsNothing(t *testing.T) {
	assert.Empty(t, Stars(-2))
}

func TestIcon_Markup(t *testing.T) {
	n := Icon("users", "w-6 h-6")

	assert.Equal(t, "i", n.Tag)
	assert.Equal(t, "icon icon-users w-6 h-6", n.Attr("class"))
	assert.Equal(t, "true", n.Attr("aria-hidden"))
}
