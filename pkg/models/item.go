package models

import (
	"github.com/google/uuid"

	"github.com/gravitas-games/gridventory/pkg/geom"
)

// Item is a catalog item that can be stored in an inventory grid.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category,omitempty"`

	// Footprint is the unrotated size in tiles.
	Footprint geom.Point `json:"footprint"`
}

// NewItem creates an item with a fresh random ID.
func NewItem(name string, width, height int) *Item {
	return &Item{
		ID:        uuid.New(),
		Name:      name,
		Footprint: geom.Pt(width, height),
	}
}

// Size returns the base footprint.
func (i *Item) Size() geom.Point { return i.Footprint }

// IsValid reports whether the item has a name and a usable footprint.
func (i *Item) IsValid() bool {
	return i != nil && i.Name != "" && i.Footprint.X > 0 && i.Footprint.Y > 0
}

func (i *Item) String() string {
	if i == nil {
		return "<nil>"
	}
	return i.Name
}
