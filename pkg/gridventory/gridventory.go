// Package gridventory packs rectangular items onto a fixed 2D tile grid.
//
// A Gridventory tracks which tiles are taken and which item covers them.
// Items are opaque to the package; callers pass their own handle type as T
// together with the item's base footprint and a quarter-turn rotation.
// Insertion is check-then-commit: a failed insert never changes state.
//
// The package also carries the pure geometry used by placement UIs to turn a
// pointer ray into a root tile and a placed rect back into a world pose (see
// Mapper).
package gridventory

import (
	"go.uber.org/zap"

	"github.com/gravitas-games/gridventory/pkg/geom"
)

const defaultCapacity = 4

// MaxCells is the largest width*height New accepts.
const MaxCells = 1 << 24

// Option configures Gridventory construction.
type Option func(*options)

type options struct {
	capacity int
	logger   *zap.Logger
}

// WithCapacity preallocates room for n placed items.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger attaches a logger that receives debug-level placement events.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Gridventory is a width x height tile inventory. It is not safe for
// concurrent use; see Synchronized.
type Gridventory[T any] struct {
	grid    occupancyGrid
	items   itemRegistry[T]
	ordinal int
	logger  *zap.Logger
}

// New creates an empty inventory. Both dimensions must be positive and the
// grid may hold at most MaxCells tiles.
func New[T any](width, height int, opts ...Option) (*Gridventory[T], error) {
	if width <= 0 || height <= 0 {
		return nil, validationErrorf("grid size must be positive, got %dx%d", width, height)
	}
	if height > MaxCells/width {
		return nil, validationErrorf("grid %dx%d exceeds %d cells", width, height, MaxCells)
	}
	o := options{capacity: defaultCapacity, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Gridventory[T]{
		grid:   newOccupancyGrid(width, height),
		items:  newItemRegistry[T](o.capacity),
		logger: o.logger,
	}, nil
}

func (g *Gridventory[T]) Width() int       { return g.grid.width }
func (g *Gridventory[T]) Height() int      { return g.grid.height }
func (g *Gridventory[T]) Size() geom.Point { return g.grid.size() }

// Len returns the number of placed items.
func (g *Gridventory[T]) Len() int { return g.items.len() }

// Contains reports whether r is non-empty and lies fully inside the grid.
func (g *Gridventory[T]) Contains(r geom.Rect) bool { return g.grid.containsRect(r) }

// IsOccupied reports whether the tile is taken. Tiles outside the grid return
// a *BoundsError.
func (g *Gridventory[T]) IsOccupied(tile geom.Point) (bool, error) {
	return g.grid.isOccupied(tile)
}

// IsRectOccupied reports whether any tile of r is taken. Rects that are empty
// or leave the grid return a *BoundsError.
func (g *Gridventory[T]) IsRectOccupied(r geom.Rect) (bool, error) {
	return g.grid.isRectOccupied(r)
}

// Ordinal returns the placement tag written into the tile, 0 when free. Tags
// are only meant for diagnostics such as DebugColor.
func (g *Gridventory[T]) Ordinal(tile geom.Point) (int, error) {
	return g.grid.ordinal(tile)
}

// TryOccupyRect reserves r under a placeholder entry holding the zero T.
// It returns false with a nil error when any tile is already taken.
func (g *Gridventory[T]) TryOccupyRect(r geom.Rect) (bool, error) {
	taken, err := g.grid.isRectOccupied(r)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	g.ordinal++
	g.grid.setRect(r, g.ordinal)

	var zero T
	g.items.append(PlacedItem[T]{Item: zero, Rect: r})
	return true, nil
}

// TryInsert places item with its root tile at root. size is the item's base
// footprint; odd rotations swap it. Rotation is normalized into [0,3].
func (g *Gridventory[T]) TryInsert(item T, root, size geom.Point, rotation int) (bool, error) {
	rotation = NormalizeRotation(rotation)
	r := geom.RectAt(root, RotatedSize(size, rotation))

	ok, err := g.TryOccupyRect(r)
	if err != nil || !ok {
		g.logger.Debug("insert rejected",
			zap.Stringer("rect", r), zap.Int("rotation", rotation), zap.Error(err))
		return false, err
	}

	i := g.items.last()
	g.items.set(i, PlacedItem[T]{Item: item, Rect: r, Rotation: rotation})
	g.logger.Debug("item inserted",
		zap.Stringer("rect", r), zap.Int("rotation", rotation), zap.Int("ordinal", g.ordinal))
	return true, nil
}

// FindItemAt returns the item covering tile.
func (g *Gridventory[T]) FindItemAt(tile geom.Point) (T, bool) {
	i := g.items.findIndexContaining(tile)
	if i < 0 {
		var zero T
		return zero, false
	}
	return g.items.at(i).Item, true
}

// TryRemoveItemAt removes the item covering tile, frees its tiles and
// returns the removed entry.
func (g *Gridventory[T]) TryRemoveItemAt(tile geom.Point) (PlacedItem[T], bool) {
	i := g.items.findIndexContaining(tile)
	if i < 0 {
		return PlacedItem[T]{}, false
	}
	e := g.items.at(i)
	g.grid.setRect(e.Rect, 0)
	g.items.removeAt(i)
	g.logger.Debug("item removed",
		zap.Stringer("tile", tile), zap.Stringer("rect", e.Rect), zap.Int("rotation", e.Rotation))
	return e, true
}

// RemoveItemAt is TryRemoveItemAt for callers that only need the item back.
func (g *Gridventory[T]) RemoveItemAt(tile geom.Point) (T, bool) {
	e, ok := g.TryRemoveItemAt(tile)
	return e.Item, ok
}

// Items returns a copy of the placed entries in insertion order.
func (g *Gridventory[T]) Items() []PlacedItem[T] { return g.items.all() }

// Sized is implemented by item handles that know their base footprint.
type Sized interface {
	Size() geom.Point
}

// InsertSized is TryInsert reading the footprint from the item itself.
func InsertSized[T Sized](g *Gridventory[T], item T, root geom.Point, rotation int) (bool, error) {
	return g.TryInsert(item, root, item.Size(), rotation)
}
