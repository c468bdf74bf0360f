// Package harness drives an inventory from per-frame pointer input: aiming,
// rotating, placing and removing catalog items. The host's update loop owns
// a Controller and calls Update once per frame.
package harness

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gravitas-games/gridventory/internal/debugdraw"
	"github.com/gravitas-games/gridventory/pkg/geom"
	"github.com/gravitas-games/gridventory/pkg/gridventory"
	"github.com/gravitas-games/gridventory/pkg/models"
)

// Inventory is the inventory type the harness works with.
type Inventory = gridventory.Gridventory[*models.Item]

// Input is the pointer state sampled for one frame.
type Input struct {
	Ray    geom.Ray
	Rotate bool // rotate the pending item a quarter turn
	Place  bool // try to place the pending item
	Remove bool // remove whatever is under the pointer
}

// Placement describes an item entering or leaving the grid together with the
// world pose it occupies there.
type Placement struct {
	Item        *models.Item
	Rect        geom.Rect
	Rotation    int
	Position    r3.Vec
	Orientation r3.Rotation
}

// Frame reports what happened during one Update.
type Frame struct {
	Local   r2.Vec     // pointer position in inventory space
	OnPlane bool       // the pointer ray hit the inventory plane in front of it
	Tile    geom.Point // tile under the pointer, possibly outside the grid

	Pending       *models.Item // item waiting to be placed, nil when none
	Rotation      int
	Candidate     *geom.Rect // where Pending would go, nil when nothing is pending
	CandidateFree bool

	Placed  *Placement
	Removed *Placement
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for placement events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDrawer makes every Update emit debug lines for the grid, the hovered
// tile and the candidate rect.
func WithDrawer(d debugdraw.Drawer) Option {
	return func(c *Controller) { c.drawer = d }
}

// Controller holds the inventory plus the stack of items still to place.
type Controller struct {
	inv      *Inventory
	mapper   gridventory.Mapper
	pose     geom.Pose
	pending  []*models.Item
	rotation int

	logger *zap.Logger
	drawer debugdraw.Drawer
}

// NewController creates a controller. items become the pending stack; the
// last one is placed first.
func NewController(inv *Inventory, mapper gridventory.Mapper, pose geom.Pose, items []*models.Item, opts ...Option) *Controller {
	c := &Controller{
		inv:     inv,
		mapper:  mapper,
		pose:    pose,
		pending: append([]*models.Item(nil), items...),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Controller) Inventory() *Inventory { return c.inv }

// Rotation is the quarter-turn rotation applied to the next placement.
func (c *Controller) Rotation() int { return c.rotation }

// Pending returns the items still to place, top of the stack last.
func (c *Controller) Pending() []*models.Item {
	return append([]*models.Item(nil), c.pending...)
}

func (c *Controller) peek() *models.Item {
	if len(c.pending) == 0 {
		return nil
	}
	return c.pending[len(c.pending)-1]
}

func (c *Controller) pop() {
	c.pending[len(c.pending)-1] = nil
	c.pending = c.pending[:len(c.pending)-1]
}

// Update processes one frame of input.
func (c *Controller) Update(in Input) Frame {
	var f Frame
	f.Local, f.OnPlane = c.mapper.RayToInventoryPosition(in.Ray, c.pose)
	f.Tile = c.mapper.LocalPositionToTile(f.Local)

	sep := c.mapper.Separation()
	if c.drawer != nil {
		debugdraw.Inventory(c.drawer, c.inv, c.pose, sep)
		debugdraw.ClampedTile(c.drawer, c.inv.Size(), f.Tile, c.pose, sep, debugdraw.HoverInset, debugdraw.ColorHover)
	}

	if item := c.peek(); item != nil {
		if in.Rotate {
			c.rotation = (c.rotation + 1) % 4
		}
		c.updatePending(item, in, &f)
	}

	if in.Remove {
		c.remove(f.Tile, &f)
	}

	f.Pending = c.peek()
	f.Rotation = c.rotation
	return f
}

func (c *Controller) updatePending(item *models.Item, in Input, f *Frame) {
	root, err := c.mapper.RootTileForCenteredItem(f.Local, item.Size(), c.rotation, c.inv.Size())
	if err != nil {
		c.logger.Warn("item does not fit the inventory", zap.Stringer("item", item), zap.Error(err))
		return
	}
	rect := geom.RectAt(root, gridventory.RotatedSize(item.Size(), c.rotation))

	if in.Place {
		ok, err := c.inv.TryInsert(item, root, item.Size(), c.rotation)
		switch {
		case err != nil:
			c.logger.Warn("placement failed", zap.Stringer("item", item), zap.Stringer("rect", rect), zap.Error(err))
		case ok:
			c.pop()
			f.Placed = c.placement(item, rect, c.rotation)
			c.logger.Info("item placed",
				zap.Stringer("item", item), zap.Stringer("rect", rect), zap.Int("rotation", c.rotation))
		default:
			c.logger.Debug("placement blocked", zap.Stringer("item", item), zap.Stringer("rect", rect))
		}
	}

	// Preview whichever item is pending now against the current grid.
	next := c.peek()
	if next == nil {
		return
	}
	if next != item {
		root, err = c.mapper.RootTileForCenteredItem(f.Local, next.Size(), c.rotation, c.inv.Size())
		if err != nil {
			return
		}
		rect = geom.RectAt(root, gridventory.RotatedSize(next.Size(), c.rotation))
	}
	taken, err := c.inv.IsRectOccupied(rect)
	if err != nil {
		return
	}
	f.Candidate = &rect
	f.CandidateFree = !taken

	if c.drawer != nil {
		col := debugdraw.ColorFree
		if taken {
			col = debugdraw.ColorBlocked
		}
		debugdraw.Rect(c.drawer, rect, c.pose, c.mapper.Separation(), debugdraw.CandidateInset, col)
	}
}

func (c *Controller) remove(tile geom.Point, f *Frame) {
	e, ok := c.inv.TryRemoveItemAt(tile)
	if !ok {
		return
	}
	f.Removed = c.placement(e.Item, e.Rect, e.Rotation)
	c.logger.Info("item removed", zap.Stringer("item", e.Item), zap.Stringer("tile", tile))

	if e.Item == nil {
		return
	}
	c.rotation = e.Rotation
	c.pending = append(c.pending, e.Item)
}

func (c *Controller) placement(item *models.Item, rect geom.Rect, rotation int) *Placement {
	return &Placement{
		Item:        item,
		Rect:        rect,
		Rotation:    rotation,
		Position:    c.mapper.RectCenterToWorldPosition(rect, c.pose),
		Orientation: c.mapper.RotationToWorldRotation(rotation, c.pose),
	}
}
