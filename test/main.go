package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voidshard/tilestack"
)

// quick manual run over the whole api, ending with a rendered png
func main() {
	l := tilestack.New(nil)

	l.AddBack(0, 0, 100, 100, "red")
	l.AddBack(50, 50, 100, 100, "blue")
	l.AddFront(25, 25, 10, 10, "green")

	top, ok := l.FindByPoint(30, 30)
	if !ok || top.Color != "green" {
		panic(fmt.Sprintf("expected green on top, got %v", top))
	}

	if l.Raise(30, 30) {
		panic("raising the front tile should report false")
	}
	if !l.Lower(30, 30) {
		panic("lowering the front tile should report true")
	}

	n := l.RemoveAll(60, 60)
	if n != 2 {
		panic(fmt.Sprintf("expected to drain 2 tiles, got %d", n))
	}
	if l.Len() != 1 {
		panic(fmt.Sprintf("expected 1 tile left, got %d", l.Len()))
	}

	l.Clear()
	l.AddBack(20, 20, 260, 180, "crimson")
	l.AddBack(120, 120, 260, 180, "steelblue")
	l.AddBack(220, 60, 260, 180, "seagreen")

	if !l.Raise(130, 250) {
		panic("expected to raise the middle window")
	}
	if !l.Highlight(300, 70) {
		panic("expected to highlight the top-right window")
	}

	fmt.Println("final stack, bottom to top:")
	l.Debug(os.Stdout)

	canvas := tilestack.NewCanvas(480, 360)
	canvas.Clear("#202028")
	l.Draw(canvas)

	out := filepath.Join(os.TempDir(), "tilestack.smoke.png")
	err := canvas.SavePNG(out)
	if err != nil {
		panic(err)
	}

	scene := tilestack.Snapshot(l, 480, 360, "#202028")
	sceneOut := filepath.Join(os.TempDir(), "tilestack.smoke.yaml")
	err = scene.WriteFile(sceneOut)
	if err != nil {
		panic(err)
	}

	fmt.Println("ok, wrote", out, "and", sceneOut)
}
