// Command stack-demo opens a window with a click-driven tile stack, the
// desktop-windows toy the library exists for. Number keys pick what a left
// click does; right click always raises.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/voidshard/tilestack"
)

const (
	screenWidth  = 640
	screenHeight = 480

	background = "#202028"
)

// mode decides what a left click does.
type mode int

const (
	modeRaise mode = iota
	modeLower
	modeHighlight
	modeRemove
	modeRemoveAll
	modeMerge
)

func (m mode) String() string {
	switch m {
	case modeRaise:
		return "raise"
	case modeLower:
		return "lower"
	case modeHighlight:
		return "highlight"
	case modeRemove:
		return "remove"
	case modeRemoveAll:
		return "remove-all"
	case modeMerge:
		return "merge"
	}
	return "?"
}

var modeKeys = []struct {
	key ebiten.Key
	m   mode
}{
	{ebiten.KeyDigit1, modeRaise},
	{ebiten.KeyDigit2, modeLower},
	{ebiten.KeyDigit3, modeHighlight},
	{ebiten.KeyDigit4, modeRemove},
	{ebiten.KeyDigit5, modeRemoveAll},
	{ebiten.KeyDigit6, modeMerge},
}

var palette = []string{
	"crimson", "steelblue", "seagreen", "goldenrod",
	"orchid", "slategray", "tomato", "teal",
}

type game struct {
	list   *tilestack.List
	canvas *tilestack.Canvas
	frame  *ebiten.Image
	mode   mode
	dirty  bool
	rng    *rand.Rand
}

func newGame() *game {
	g := &game{
		list:   tilestack.New(nil),
		canvas: tilestack.NewCanvas(screenWidth, screenHeight),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		dirty:  true,
	}

	// a starting desktop: three overlapping windows
	g.list.AddBack(40, 40, 220, 160, "crimson")
	g.list.AddBack(120, 120, 220, 160, "steelblue")
	g.list.AddBack(200, 60, 220, 160, "seagreen")
	return g
}

func (g *game) addRandomTile(front bool) {
	w := 80 + g.rng.Intn(180)
	h := 60 + g.rng.Intn(140)
	x := g.rng.Intn(screenWidth - w)
	y := g.rng.Intn(screenHeight - h)
	color := palette[g.rng.Intn(len(palette))]

	if front {
		g.list.AddFront(x, y, w, h, color)
	} else {
		g.list.AddBack(x, y, w, h, color)
	}
}

func (g *game) apply(x, y int) {
	switch g.mode {
	case modeRaise:
		g.list.Raise(x, y)
	case modeLower:
		g.list.Lower(x, y)
	case modeHighlight:
		g.list.Highlight(x, y)
	case modeRemove:
		g.list.Remove(x, y)
	case modeRemoveAll:
		g.list.RemoveAll(x, y)
	case modeMerge:
		g.list.Merge(x, y)
	}
}

func (g *game) snapshot() {
	scene := tilestack.Snapshot(g.list, screenWidth, screenHeight, background)
	fname := filepath.Join(
		os.TempDir(),
		fmt.Sprintf("stack-demo.%d.yaml", g.rng.Intn(1000000)),
	)

	err := scene.WriteFile(fname)
	if err != nil {
		log.Printf("snapshot failed: %v", err)
		return
	}
	log.Printf("snapshot written to %s", fname)
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, mk := range modeKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			g.mode = mk.m
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.addRandomTile(true)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.addRandomTile(false)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.list.Clear()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.list.Debug(os.Stdout)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.snapshot()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.apply(x, y)
		g.dirty = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.list.Raise(x, y)
		g.dirty = true
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// the stack only changes on input, so recomposite on demand
	if g.dirty {
		g.canvas.Clear(background)
		g.list.Draw(g.canvas)
		g.frame = ebiten.NewImageFromImage(g.canvas.Image())
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)

	msg := fmt.Sprintf(
		"mode: %s (keys 1-6: raise lower highlight remove remove-all merge)\ntiles: %d\nleft click: apply mode / right click: raise\nn: new tile on top / b: new tile underneath\nc: clear / d: dump stack / s: snapshot / q: quit",
		g.mode, g.list.Len(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tilestack demo")

	err := ebiten.RunGame(newGame())
	if err != nil {
		log.Fatal(err)
	}
}
