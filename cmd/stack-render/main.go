package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"
	"github.com/nfnt/resize"

	"github.com/voidshard/tilestack"
)

const desc = `Renders a tile scene file to a png image.

A scene is a small yaml doc laying out a stack of colored tiles (listed back
to front) plus an optional script of stack operations (raise, lower, merge ..)
to run before rendering. The final stack is composited bottom to top so the
front tile wins any overlap.`

var cli struct {
	Input  string `short:"i" help:"input scene yaml file"`
	Output string `short:"o" help:"where to write the png. Defaults to the input path + .png. Overwrites output file if it exists."`

	Scale float64 `default:"1.0" help:"scale the output image by this factor"`

	NoOps bool `help:"render the scene's starting tiles only, skipping its op script"`
	Debug bool `help:"dump the final stack back-to-front to stdout"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("stack-render"),
		kong.Description(desc),
	)

	if cli.Scale <= 0 {
		panic("scale must be positive")
	}

	input, err := homedir.Expand(cli.Input)
	if err != nil {
		panic(err)
	}
	if !fileExists(input) {
		panic(fmt.Sprintf("input file not found: %s", input))
	}

	if cli.Output == "" {
		cli.Output = input + ".png"
	}
	output, err := homedir.Expand(cli.Output)
	if err != nil {
		panic(err)
	}

	scene, err := tilestack.OpenScene(input)
	if err != nil {
		panic(err)
	}

	list, err := scene.Build(nil)
	if err != nil {
		panic(err)
	}
	if !cli.NoOps {
		err = scene.Apply(list)
		if err != nil {
			panic(err)
		}
	}

	canvas := tilestack.NewCanvas(scene.Width, scene.Height)
	if scene.Background != "" {
		canvas.Clear(scene.Background)
	}
	list.Draw(canvas)

	img := canvas.Image()
	if cli.Scale != 1.0 {
		bnds := img.Bounds()
		img = resize.Resize(
			uint(float64(bnds.Dx())*cli.Scale),
			0, // keep aspect
			img,
			resize.Lanczos3,
		)
	}

	err = savePng(output, img)
	if err != nil {
		panic(err)
	}

	if cli.Debug {
		list.Debug(os.Stdout)
	}

	fmt.Printf("wrote %s\n", output)
}

// savePng to disk
func savePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
