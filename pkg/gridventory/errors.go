package gridventory

import (
	"errors"
	"fmt"

	"github.com/gravitas-games/gridventory/pkg/geom"
)

var (
	// ErrValidation is returned by constructors given unusable arguments.
	ErrValidation = errors.New("gridventory: validation failed")
	// ErrBounds is matched by every *BoundsError.
	ErrBounds = errors.New("gridventory: out of bounds")
)

// BoundsError reports a cell or rect that does not lie inside the grid.
type BoundsError struct {
	Rect geom.Rect
	Size geom.Point
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("gridventory: rect %s outside grid %dx%d", e.Rect, e.Size.X, e.Size.Y)
}

// Is lets errors.Is(err, ErrBounds) match.
func (e *BoundsError) Is(target error) bool { return target == ErrBounds }

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}
