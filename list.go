// Package tilestack maintains an ordered collection of colored, axis-aligned
// tiles with desktop window-stack semantics: the front of the collection is
// the topmost tile, hit-tested first and drawn last, and the back is the
// bottommost. Point operations (Raise, Lower, Remove, Merge, ...) always act
// on the topmost tile containing the point, the same way clicks land on a
// desktop.
package tilestack

import (
	"fmt"
	"io"
	"iter"
)

// node is a single slot in the chain. next walks toward the back of the
// collection, prev toward the front.
type node struct {
	tile Tile
	prev *node
	next *node
}

// List is an ordered sequence of tiles representing paint order. It is not
// safe for concurrent use; callers that share one must serialize every call.
//
// The zero List is unusable, call New.
type List struct {
	cfg   Config
	front *node
	back  *node
	size  int
}

// New returns an empty List. A nil cfg means DefaultConfig().
func New(cfg *Config) *List {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &List{cfg: *cfg}
}

// findNode returns the node nearest the front containing (x, y), or nil.
func (l *List) findNode(x, y int) *node {
	for n := l.front; n != nil; n = n.next {
		if n.tile.Contains(x, y) {
			return n
		}
	}
	return nil
}

// detach unlinks n. Endpoints and interior links are both fixed before
// returning so the chain is never observable in a half-unlinked state.
func (l *List) detach(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev = nil
	n.next = nil
	l.size--
}

// attachFront links n as the new front (topmost) node.
func (l *List) attachFront(n *node) {
	n.prev = nil
	n.next = l.front
	if l.front == nil { // empty collection
		l.back = n
	} else {
		l.front.prev = n
	}
	l.front = n
	l.size++
}

// attachBack links n as the new back (bottommost) node.
func (l *List) attachBack(n *node) {
	n.next = nil
	n.prev = l.back
	if l.back == nil { // empty collection
		l.front = n
	} else {
		l.back.next = n
	}
	l.back = n
	l.size++
}

// AddFront creates a tile and places it on top of the stack.
func (l *List) AddFront(x, y, width, height int, color string) error {
	t := Tile{X: x, Y: y, Width: width, Height: height, Color: color}
	if err := t.validate(); err != nil {
		return err
	}
	l.attachFront(&node{tile: t})
	return nil
}

// AddBack creates a tile and slides it underneath the stack.
func (l *List) AddBack(x, y, width, height int, color string) error {
	t := Tile{X: x, Y: y, Width: width, Height: height, Color: color}
	if err := t.validate(); err != nil {
		return err
	}
	l.attachBack(&node{tile: t})
	return nil
}

// FindByPoint returns a copy of the topmost tile containing (x, y).
func (l *List) FindByPoint(x, y int) (Tile, bool) {
	n := l.findNode(x, y)
	if n == nil {
		return Tile{}, false
	}
	return n.tile, true
}

// Highlight recolors the topmost tile at (x, y) with the configured
// highlight color. Stacking order is untouched.
func (l *List) Highlight(x, y int) bool {
	n := l.findNode(x, y)
	if n == nil {
		return false
	}
	n.tile.Color = l.cfg.HighlightColor
	return true
}

// Raise moves the topmost tile at (x, y) to the front of the stack. It
// returns false when nothing was hit, and also when the hit tile is already
// the front tile: success means a move actually happened.
func (l *List) Raise(x, y int) bool {
	n := l.findNode(x, y)
	if n == nil || n == l.front {
		return false
	}
	l.detach(n)
	l.attachFront(n)
	return true
}

// Lower moves the topmost tile at (x, y) to the back of the stack. Mirrors
// Raise: false when nothing was hit or the tile is already bottommost.
func (l *List) Lower(x, y int) bool {
	n := l.findNode(x, y)
	if n == nil || n == l.back {
		return false
	}
	l.detach(n)
	l.attachBack(n)
	return true
}

// Remove destroys the topmost tile at (x, y), reporting whether one existed.
func (l *List) Remove(x, y int) bool {
	n := l.findNode(x, y)
	if n == nil {
		return false
	}
	l.detach(n)
	return true
}

// RemoveAll destroys tiles at (x, y) until none remain and returns how many
// went. Each removal can expose a deeper tile at the same point, so the
// hit-test reruns from the front every iteration rather than scanning once.
func (l *List) RemoveAll(x, y int) int {
	removed := 0
	for n := l.findNode(x, y); n != nil; n = l.findNode(x, y) {
		l.detach(n)
		removed++
	}
	return removed
}

// Merge drains every tile at (x, y), including tiles exposed mid-drain, and
// replaces them with a single front tile covering their combined bounding
// box. The merged tile keeps the color of the first tile found. Without a
// hit the collection is left untouched.
func (l *List) Merge(x, y int) {
	n := l.findNode(x, y)
	if n == nil {
		return
	}
	color := n.tile.Color
	minX, minY := n.tile.X, n.tile.Y
	maxX, maxY := n.tile.X+n.tile.Width, n.tile.Y+n.tile.Height
	for ; n != nil; n = l.findNode(x, y) {
		if n.tile.X < minX {
			minX = n.tile.X
		}
		if n.tile.Y < minY {
			minY = n.tile.Y
		}
		if n.tile.X+n.tile.Width > maxX {
			maxX = n.tile.X + n.tile.Width
		}
		if n.tile.Y+n.tile.Height > maxY {
			maxY = n.tile.Y + n.tile.Height
		}
		l.detach(n)
	}
	merged := Tile{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY, Color: color}
	l.attachFront(&node{tile: merged})
}

// Clear destroys every tile.
func (l *List) Clear() {
	l.front = nil
	l.back = nil
	l.size = 0
}

// Len returns the number of live tiles.
func (l *List) Len() int {
	return l.size
}

// Front returns a copy of the topmost tile.
func (l *List) Front() (Tile, bool) {
	if l.front == nil {
		return Tile{}, false
	}
	return l.front.tile, true
}

// Back returns a copy of the bottommost tile.
func (l *List) Back() (Tile, bool) {
	if l.back == nil {
		return Tile{}, false
	}
	return l.back.tile, true
}

// FrontToBack yields tile copies from topmost to bottommost. The sequence
// restarts on every range; the list must not be mutated while ranging.
func (l *List) FrontToBack() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for n := l.front; n != nil; n = n.next {
			if !yield(n.tile) {
				return
			}
		}
	}
}

// BackToFront yields tile copies from bottommost to topmost, the order a
// renderer wants so later tiles composite over earlier ones.
func (l *List) BackToFront() iter.Seq[Tile] {
	return func(yield func(Tile) bool) {
		for n := l.back; n != nil; n = n.prev {
			if !yield(n.tile) {
				return
			}
		}
	}
}

// Draw composites the whole stack onto s, bottommost first.
func (l *List) Draw(s Surface) {
	for t := range l.BackToFront() {
		t.Draw(s)
	}
}

// Debug writes a back-to-front dump of the stack, one tile per line. The
// format is for eyeballs only, nothing should parse it.
func (l *List) Debug(w io.Writer) {
	i := 0
	for t := range l.BackToFront() {
		fmt.Fprintf(w, "%d %s\n", i, t)
		i++
	}
}
