/* scene.go is a small yaml format describing a tile stack plus an optional
script of operations to run against it. Scenes are tool input; the
collection itself never touches the filesystem. */

package tilestack

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Canvas defaults applied when a scene leaves its dimensions unset.
const (
	DefaultSceneWidth  = 640
	DefaultSceneHeight = 480
)

// Op names understood by Apply.
const (
	OpAddFront  = "add-front"
	OpAddBack   = "add-back"
	OpRaise     = "raise"
	OpLower     = "lower"
	OpHighlight = "highlight"
	OpRemove    = "remove"
	OpRemoveAll = "remove-all"
	OpMerge     = "merge"
	OpClear     = "clear"
)

// Scene lays out a stack of tiles plus a script of operations to replay on
// it. Tiles are listed in painter order: the first tile is the bottommost,
// the last listed ends up topmost.
type Scene struct {
	Width      int
	Height     int
	Background string
	Tiles      []Tile
	Ops        []Op
}

// Op is one scripted operation. X and Y locate the point operations; Width,
// Height and Color only matter to the two add ops.
type Op struct {
	Op     string
	X      int
	Y      int
	Width  int
	Height int
	Color  string
}

// DecodeScene reads a yaml scene, applying canvas defaults.
func DecodeScene(r io.Reader) (*Scene, error) {
	s := &Scene{}
	err := yaml.NewDecoder(r).Decode(s)
	if err != nil {
		return nil, err
	}
	if s.Width <= 0 {
		s.Width = DefaultSceneWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultSceneHeight
	}
	return s, nil
}

// OpenScene reads the given scene file.
func OpenScene(fname string) (*Scene, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeScene(f)
}

// Encode writes the scene as yaml.
func (s *Scene) Encode(w io.Writer) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile encodes the scene to disk.
func (s *Scene) WriteFile(fname string) error {
	buff := bytes.Buffer{}
	err := s.Encode(&buff)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, buff.Bytes(), 0644)
}

// Build constructs the starting stack: each listed tile is pushed on top of
// the ones before it, so the last listed tile starts topmost.
func (s *Scene) Build(cfg *Config) (*List, error) {
	l := New(cfg)
	for i, t := range s.Tiles {
		err := l.AddFront(t.X, t.Y, t.Width, t.Height, t.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
	}
	return l, nil
}

// Apply replays the scene's op script against l. Point ops that miss every
// tile are not errors; a script is a recording of clicks, and clicks can
// land on bare desktop. Unknown op names and bad add geometry are.
func (s *Scene) Apply(l *List) error {
	for i, op := range s.Ops {
		var err error
		switch op.Op {
		case OpAddFront:
			err = l.AddFront(op.X, op.Y, op.Width, op.Height, op.Color)
		case OpAddBack:
			err = l.AddBack(op.X, op.Y, op.Width, op.Height, op.Color)
		case OpRaise:
			l.Raise(op.X, op.Y)
		case OpLower:
			l.Lower(op.X, op.Y)
		case OpHighlight:
			l.Highlight(op.X, op.Y)
		case OpRemove:
			l.Remove(op.X, op.Y)
		case OpRemoveAll:
			l.RemoveAll(op.X, op.Y)
		case OpMerge:
			l.Merge(op.X, op.Y)
		case OpClear:
			l.Clear()
		default:
			return fmt.Errorf("op %d: unknown op %q", i, op.Op)
		}
		if err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

// Snapshot captures a live stack as a scene, tiles listed back to front so
// building the scene again reproduces the same order.
func Snapshot(l *List, width, height int, background string) *Scene {
	s := &Scene{Width: width, Height: height, Background: background}
	for t := range l.BackToFront() {
		s.Tiles = append(s.Tiles, t)
	}
	return s
}
