package tilestack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sceneData = `
width: 200
height: 120
background: "#202020"
tiles:
  - {x: 10, y: 10, width: 80, height: 60, color: red}
  - {x: 40, y: 30, width: 80, height: 60, color: blue}
ops:
  - {op: raise, x: 15, y: 15}
  - {op: add-front, x: 0, y: 0, width: 20, height: 20, color: green}
`

func TestDecodeScene(t *testing.T) {
	s, err := DecodeScene(bytes.NewBufferString(sceneData))

	assert.Nil(t, err)
	assert.NotNil(t, s)
	assert.Equal(t, 200, s.Width)
	assert.Equal(t, 120, s.Height)
	assert.Equal(t, "#202020", s.Background)

	assert.Equal(t, 2, len(s.Tiles))
	assert.Equal(t, Tile{X: 10, Y: 10, Width: 80, Height: 60, Color: "red"}, s.Tiles[0])

	assert.Equal(t, 2, len(s.Ops))
	assert.Equal(t, OpRaise, s.Ops[0].Op)
	assert.Equal(t, OpAddFront, s.Ops[1].Op)
}

func TestDecodeSceneDefaults(t *testing.T) {
	s, err := DecodeScene(bytes.NewBufferString("tiles:\n  - {x: 0, y: 0, width: 5, height: 5, color: red}\n"))

	assert.Nil(t, err)
	assert.Equal(t, DefaultSceneWidth, s.Width)
	assert.Equal(t, DefaultSceneHeight, s.Height)
}

func TestDecodeSceneBadYaml(t *testing.T) {
	_, err := DecodeScene(bytes.NewBufferString("tiles: {not: a list}"))
	assert.NotNil(t, err)
}

func TestSceneBuildOrder(t *testing.T) {
	s, err := DecodeScene(bytes.NewBufferString(sceneData))
	assert.Nil(t, err)
	if err != nil {
		return
	}

	l, err := s.Build(nil)
	assert.Nil(t, err)
	// tiles are listed back to front, so the last one starts topmost
	assert.Equal(t, []string{"blue", "red"}, colors(l))
}

func TestSceneBuildBadTile(t *testing.T) {
	s := &Scene{Tiles: []Tile{{X: 0, Y: 0, Width: -1, Height: 5, Color: "red"}}}

	_, err := s.Build(nil)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSceneApply(t *testing.T) {
	s, err := DecodeScene(bytes.NewBufferString(sceneData))
	assert.Nil(t, err)
	if err != nil {
		return
	}

	l, err := s.Build(nil)
	assert.Nil(t, err)

	assert.Nil(t, s.Apply(l))
	// raise(15,15) pulls red above blue, then add-front puts green on top
	assert.Equal(t, []string{"green", "red", "blue"}, colors(l))
}

func TestSceneApplyAllOps(t *testing.T) {
	s := &Scene{Ops: []Op{
		{Op: OpAddBack, X: 0, Y: 0, Width: 30, Height: 30, Color: "red"},
		{Op: OpAddBack, X: 10, Y: 10, Width: 30, Height: 30, Color: "blue"},
		{Op: OpAddFront, X: 100, Y: 100, Width: 30, Height: 30, Color: "green"},
		{Op: OpLower, X: 105, Y: 105},
		{Op: OpHighlight, X: 5, Y: 5},
		{Op: OpMerge, X: 15, Y: 15},
		{Op: OpRemove, X: 200, Y: 200}, // a miss, not an error
		{Op: OpRemoveAll, X: 300, Y: 300},
		{Op: OpRaise, X: 105, Y: 105},
	}}

	l := New(nil)
	assert.Nil(t, s.Apply(l))

	// red+blue highlighted then merged into one yellow box, green raised over it
	assert.Equal(t, []string{"green", "yellow"}, colors(l))
	assert.Equal(t, 2, l.Len())
}

func TestSceneApplyUnknownOp(t *testing.T) {
	s := &Scene{Ops: []Op{{Op: "explode", X: 1, Y: 1}}}

	err := s.Apply(New(nil))
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "explode")
}

func TestSceneApplyBadAdd(t *testing.T) {
	s := &Scene{Ops: []Op{{Op: OpAddFront, X: 1, Y: 1, Width: 0, Height: 5, Color: "red"}}}

	err := s.Apply(New(nil))
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestSnapshotRoundTrip(t *testing.T) {
	l := New(nil)
	assert.Nil(t, l.AddBack(0, 0, 10, 10, "red"))
	assert.Nil(t, l.AddBack(20, 0, 10, 10, "blue"))

	s := Snapshot(l, 100, 80, "white")
	assert.Equal(t, 100, s.Width)
	assert.Equal(t, 80, s.Height)
	assert.Equal(t, 2, len(s.Tiles))

	buff := bytes.Buffer{}
	assert.Nil(t, s.Encode(&buff))

	back, err := DecodeScene(&buff)
	assert.Nil(t, err)

	rebuilt, err := back.Build(nil)
	assert.Nil(t, err)
	assert.Equal(t, colors(l), colors(rebuilt))
}
