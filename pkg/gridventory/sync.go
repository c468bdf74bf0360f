package gridventory

import (
	"sync"

	"github.com/gravitas-games/gridventory/pkg/geom"
)

// Synchronized guards a Gridventory with a single mutex so it can be shared
// between goroutines.
type Synchronized[T any] struct {
	mu  sync.Mutex
	inv *Gridventory[T]
}

// NewSynchronized creates an inventory and wraps it.
func NewSynchronized[T any](width, height int, opts ...Option) (*Synchronized[T], error) {
	inv, err := New[T](width, height, opts...)
	if err != nil {
		return nil, err
	}
	return &Synchronized[T]{inv: inv}, nil
}

// Do runs fn with exclusive access, for check-then-act sequences that must
// not interleave with other callers.
func (s *Synchronized[T]) Do(fn func(inv *Gridventory[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.inv)
}

func (s *Synchronized[T]) IsOccupied(tile geom.Point) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.IsOccupied(tile)
}

func (s *Synchronized[T]) IsRectOccupied(r geom.Rect) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.IsRectOccupied(r)
}

func (s *Synchronized[T]) TryOccupyRect(r geom.Rect) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.TryOccupyRect(r)
}

func (s *Synchronized[T]) TryInsert(item T, root, size geom.Point, rotation int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.TryInsert(item, root, size, rotation)
}

func (s *Synchronized[T]) FindItemAt(tile geom.Point) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.FindItemAt(tile)
}

func (s *Synchronized[T]) TryRemoveItemAt(tile geom.Point) (PlacedItem[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.TryRemoveItemAt(tile)
}

func (s *Synchronized[T]) Items() []PlacedItem[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Items()
}

func (s *Synchronized[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Len()
}
