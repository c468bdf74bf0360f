package gridventory

import "github.com/gravitas-games/gridventory/pkg/geom"

// PlacedItem is a registry entry: the item handle, the tiles it covers and its
// quarter-turn rotation.
type PlacedItem[T any] struct {
	Item     T         `json:"item"`
	Rect     geom.Rect `json:"rect"`
	Rotation int       `json:"rotation"`
}

// itemRegistry keeps placed items in insertion order. Indices shift on
// removal, so nothing outside this package ever holds one.
type itemRegistry[T any] struct {
	entries []PlacedItem[T]
}

func newItemRegistry[T any](capacity int) itemRegistry[T] {
	return itemRegistry[T]{entries: make([]PlacedItem[T], 0, capacity)}
}

func (r *itemRegistry[T]) append(e PlacedItem[T]) {
	r.entries = append(r.entries, e)
}

// findIndexContaining scans every entry and returns the index of the one
// covering p, or -1.
func (r *itemRegistry[T]) findIndexContaining(p geom.Point) int {
	for i := range r.entries {
		if r.entries[i].Rect.Contains(p) {
			return i
		}
	}
	return -1
}

func (r *itemRegistry[T]) at(i int) PlacedItem[T] { return r.entries[i] }

func (r *itemRegistry[T]) set(i int, e PlacedItem[T]) { r.entries[i] = e }

func (r *itemRegistry[T]) last() int { return len(r.entries) - 1 }

// removeAt drops the entry. It does not touch occupancy.
func (r *itemRegistry[T]) removeAt(i int) {
	var zero PlacedItem[T]
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[len(r.entries)-1] = zero
	r.entries = r.entries[:len(r.entries)-1]
}

func (r *itemRegistry[T]) len() int { return len(r.entries) }

func (r *itemRegistry[T]) all() []PlacedItem[T] {
	out := make([]PlacedItem[T], len(r.entries))
	copy(out, r.entries)
	return out
}
