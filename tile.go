package tilestack

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by AddFront / AddBack when a tile is given
// a non-positive width or height.
var ErrInvalidGeometry = errors.New("tile width and height must be positive")

// Tile is an axis-aligned rectangle anchored at (X, Y) with a display color.
// Tiles are plain values: everything a List hands out is a copy, so no
// caller can reach into the collection's own storage.
type Tile struct {
	X      int
	Y      int
	Width  int
	Height int
	Color  string
}

// Contains reports whether the point (x, y) falls inside the tile.
// Bounds are half-open: the left and top edges are inside, the right and
// bottom edges are not.
func (t Tile) Contains(x, y int) bool {
	return x >= t.X && x < t.X+t.Width && y >= t.Y && y < t.Y+t.Height
}

// Draw hands the tile to a rendering surface.
func (t Tile) Draw(s Surface) {
	s.FillRect(t.X, t.Y, t.Width, t.Height, t.Color)
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d %dx%d %s)", t.X, t.Y, t.Width, t.Height, t.Color)
}

// validate rejects geometry the collection refuses to hold.
func (t Tile) validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", t.Width, t.Height, ErrInvalidGeometry)
	}
	return nil
}
