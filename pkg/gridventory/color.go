package gridventory

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/cespare/xxhash/v2"
)

// DebugColor derives a fully saturated, full brightness colour from a
// placement ordinal. The same ordinal always yields the same colour.
func DebugColor(ordinal int) color.RGBA {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(ordinal))
	h := xxhash.Sum64(buf[:])
	hue := float64(h>>11) / (1 << 53)
	return hsvToRGBA(hue, 1, 1)
}

// hsvToRGBA converts h in [0,1), s and v in [0,1] to an opaque colour.
func hsvToRGBA(h, s, v float64) color.RGBA {
	h6 := h * 6
	sector := math.Floor(h6)
	f := h6 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(sector) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

func channel(c float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, c)) * 255))
}
