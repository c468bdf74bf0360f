package gridventory

import "github.com/gravitas-games/gridventory/pkg/geom"

// occupancyGrid is a fixed-size map of cells. A cell holds 0 when free or the
// ordinal of the placement covering it.
type occupancyGrid struct {
	width  int
	height int
	cells  []int
}

func newOccupancyGrid(width, height int) occupancyGrid {
	return occupancyGrid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

func (g *occupancyGrid) size() geom.Point { return geom.Pt(g.width, g.height) }

func (g *occupancyGrid) containsCell(p geom.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// containsRect reports whether a non-empty rect lies fully inside the grid.
func (g *occupancyGrid) containsRect(r geom.Rect) bool {
	if r.Empty() {
		return false
	}
	// Compare by subtraction so huge roots or sizes cannot wrap past the int range.
	return r.X >= 0 && r.Y >= 0 && r.W <= g.width-r.X && r.H <= g.height-r.Y
}

func (g *occupancyGrid) boundsError(r geom.Rect) error {
	return &BoundsError{Rect: r, Size: g.size()}
}

func (g *occupancyGrid) ordinal(p geom.Point) (int, error) {
	if !g.containsCell(p) {
		return 0, g.boundsError(geom.RectAt(p, geom.Pt(1, 1)))
	}
	return g.cells[p.Y*g.width+p.X], nil
}

func (g *occupancyGrid) isOccupied(p geom.Point) (bool, error) {
	v, err := g.ordinal(p)
	if err != nil {
		return false, err
	}
	return v > 0, nil
}

func (g *occupancyGrid) isRectOccupied(r geom.Rect) (bool, error) {
	if !g.containsRect(r) {
		return false, g.boundsError(r)
	}
	for y := r.Y; y < r.YMax(); y++ {
		row := y * g.width
		for x := r.X; x < r.XMax(); x++ {
			if g.cells[row+x] > 0 {
				return true, nil
			}
		}
	}
	return false, nil
}

// setRect writes value into every cell of r. Callers validate r first.
func (g *occupancyGrid) setRect(r geom.Rect, value int) {
	for y := r.Y; y < r.YMax(); y++ {
		row := y * g.width
		for x := r.X; x < r.XMax(); x++ {
			g.cells[row+x] = value
		}
	}
}
