package gridventory

import "github.com/gravitas-games/gridventory/pkg/geom"

// NormalizeRotation maps any quarter-turn count into [0,3].
func NormalizeRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}

// RotatedSize swaps width and height for odd quarter turns.
func RotatedSize(size geom.Point, rotation int) geom.Point {
	if NormalizeRotation(rotation)%2 == 0 {
		return size
	}
	return size.Swap()
}
