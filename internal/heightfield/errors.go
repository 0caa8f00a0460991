package heightfield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports field dimensions below MinSize.
	ErrInvalidConfig = errors.New("invalid heightfield configuration")
	// ErrOutOfBounds reports a view coordinate outside the current view.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// BoundsError describes an access outside [0,Width)x[0,Height) of the view.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("heightfield: (%d,%d) outside %dx%d view", e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
