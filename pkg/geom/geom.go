// Package geom holds the small set of integer grid primitives used by the
// inventory, plus the ray and pose types that carry gonum vectors in from the
// host application.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Point represents a grid coordinate (x, y) with origin at the lower-left
// tile. It doubles as an integer size (width, height).
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Swap returns the point with its axes exchanged.
func (p Point) Swap() Point { return Point{X: p.Y, Y: p.X} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Rect is an axis-aligned rectangle of tiles rooted at its lower-left tile.
type Rect struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"width" yaml:"width"`
	H int `json:"height" yaml:"height"`
}

// RectAt builds a rect from a root tile and a size.
func RectAt(root, size Point) Rect {
	return Rect{X: root.X, Y: root.Y, W: size.X, H: size.Y}
}

// XMax is the exclusive upper x bound.
func (r Rect) XMax() int { return r.X + r.W }

// YMax is the exclusive upper y bound.
func (r Rect) YMax() int { return r.Y + r.H }

// Empty reports whether the rect covers no tiles.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the tile lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.XMax() && p.Y >= r.Y && p.Y < r.YMax()
}

// Center returns the rect center in tile units.
func (r Rect) Center() r2.Vec {
	return r2.Vec{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Cells lists every tile of the rect, row by row.
func (r Rect) Cells() []Point {
	if r.Empty() {
		return nil
	}
	out := make([]Point, 0, r.W*r.H)
	for y := r.Y; y < r.YMax(); y++ {
		for x := r.X; x < r.XMax(); x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.W, r.H)
}

// Ray is a half-line in world space.
type Ray struct {
	Origin    r3.Vec
	Direction r3.Vec
}

// At returns the point at distance t along the ray direction.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}

// Pose places an inventory in world space. Position is the lower-left corner
// of the grid; Up and Right are expected to be orthonormal.
type Pose struct {
	Position r3.Vec
	Up       r3.Vec
	Right    r3.Vec
}

// Normal is Up × Right.
func (p Pose) Normal() r3.Vec { return r3.Cross(p.Up, p.Right) }
