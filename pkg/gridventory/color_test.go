package gridventory

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugColorIsDeterministicAndVivid(t *testing.T) {
	seen := make(map[color.RGBA]struct{})
	for ordinal := 1; ordinal <= 32; ordinal++ {
		c := DebugColor(ordinal)
		assert.Equal(t, c, DebugColor(ordinal))
		assert.Equal(t, uint8(0xff), c.A)
		assert.Equal(t, uint8(0xff), max(c.R, c.G, c.B), "ordinal %d", ordinal)
		assert.Equal(t, uint8(0), min(c.R, c.G, c.B), "ordinal %d", ordinal)
		seen[c] = struct{}{}
	}
	assert.Greater(t, len(seen), 16)
}

func TestHSVPrimaries(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, hsvToRGBA(0, 1, 1))
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, hsvToRGBA(1.0/3, 1, 1))
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, hsvToRGBA(2.0/3, 1, 1))
}
