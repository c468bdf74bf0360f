// Package debugdraw turns read-only inventory state into line segments and
// text for debugging placement. It never mutates an inventory.
package debugdraw

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gravitas-games/gridventory/pkg/geom"
	"github.com/gravitas-games/gridventory/pkg/gridventory"
)

// Palette used by the harness and the command.
var (
	ColorGrid    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorHover   = color.RGBA{R: 0xff, G: 0xea, B: 0x04, A: 0xff}
	ColorFree    = color.RGBA{G: 0xff, A: 0xff}
	ColorBlocked = color.RGBA{R: 0xff, A: 0xff}
)

// Inset distances between a tile edge and its outline.
const (
	OccupiedInset  = 0.05
	HoverInset     = 0.03
	CandidateInset = 0.02
)

// Drawer receives world-space line segments, typically a host renderer.
type Drawer interface {
	DrawLine(from, to r3.Vec, c color.RGBA)
}

// View is the read-only part of an inventory that drawing needs.
type View interface {
	Size() geom.Point
	Ordinal(tile geom.Point) (int, error)
}

// Tile outlines one tile, inset by offset world units.
func Tile(d Drawer, tile geom.Point, pose geom.Pose, separation, offset float64, c color.RGBA) {
	center := r3.Add(pose.Position, r3.Scale(separation, r3.Add(
		r3.Scale(float64(tile.Y)+0.5, pose.Up),
		r3.Scale(float64(tile.X)+0.5, pose.Right),
	)))
	half := (separation - offset) * 0.5
	corner := func(u, r float64) r3.Vec {
		return r3.Add(center, r3.Scale(half, r3.Add(r3.Scale(u, pose.Up), r3.Scale(r, pose.Right))))
	}
	topLeft, topRight := corner(1, -1), corner(1, 1)
	bottomLeft, bottomRight := corner(-1, -1), corner(-1, 1)

	d.DrawLine(topLeft, topRight, c)
	d.DrawLine(topRight, bottomRight, c)
	d.DrawLine(topLeft, bottomLeft, c)
	d.DrawLine(bottomLeft, bottomRight, c)
}

// ClampedTile outlines tile after clamping it into a grid of the given size,
// so a pointer outside the grid still highlights the nearest edge tile.
func ClampedTile(d Drawer, size, tile geom.Point, pose geom.Pose, separation, offset float64, c color.RGBA) {
	tile.X = min(max(tile.X, 0), size.X-1)
	tile.Y = min(max(tile.Y, 0), size.Y-1)
	Tile(d, tile, pose, separation, offset, c)
}

// Rect outlines every tile of r.
func Rect(d Drawer, r geom.Rect, pose geom.Pose, separation, offset float64, c color.RGBA) {
	for _, tile := range r.Cells() {
		Tile(d, tile, pose, separation, offset, c)
	}
}

// Inventory draws the grid lines and outlines every occupied tile in the
// colour of its placement ordinal.
func Inventory(d Drawer, v View, pose geom.Pose, separation float64) {
	size := v.Size()
	up := r3.Scale(separation, pose.Up)
	right := r3.Scale(separation, pose.Right)

	for x := 0; x <= size.X; x++ {
		for y := 0; y <= size.Y; y++ {
			p := r3.Add(pose.Position, r3.Add(r3.Scale(float64(y), up), r3.Scale(float64(x), right)))
			if y != size.Y {
				d.DrawLine(p, r3.Add(p, up), ColorGrid)
			}
			if x != size.X {
				d.DrawLine(p, r3.Add(p, right), ColorGrid)
			}
			if x == size.X || y == size.Y {
				continue
			}
			if ord, err := v.Ordinal(geom.Pt(x, y)); err == nil && ord != 0 {
				Tile(d, geom.Pt(x, y), pose, separation, OccupiedInset, gridventory.DebugColor(ord))
			}
		}
	}
}

// Line is one recorded segment.
type Line struct {
	From, To r3.Vec
	Color    color.RGBA
}

// Recorder is a Drawer that keeps every segment, for tests and for hosts
// that batch their draw calls.
type Recorder struct {
	Lines []Line
}

func (r *Recorder) DrawLine(from, to r3.Vec, c color.RGBA) {
	r.Lines = append(r.Lines, Line{From: from, To: to, Color: c})
}

// Reset drops recorded lines, keeping the backing array.
func (r *Recorder) Reset() { r.Lines = r.Lines[:0] }

// Text writes the grid as characters, top row first. Free tiles are '.',
// occupied tiles a letter derived from their ordinal. Tiles of the optional
// candidate rect show '+' when free and '!' when blocked.
func Text(w io.Writer, v View, candidate *geom.Rect) error {
	size := v.Size()
	var b strings.Builder
	for y := size.Y - 1; y >= 0; y-- {
		for x := 0; x < size.X; x++ {
			p := geom.Pt(x, y)
			ord, err := v.Ordinal(p)
			if err != nil {
				return err
			}
			b.WriteByte(glyph(ord, candidate != nil && candidate.Contains(p)))
		}
		b.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, b.String())
	return err
}

func glyph(ordinal int, inCandidate bool) byte {
	switch {
	case inCandidate && ordinal != 0:
		return '!'
	case inCandidate:
		return '+'
	case ordinal == 0:
		return '.'
	default:
		return byte('A' + (ordinal-1)%26)
	}
}
