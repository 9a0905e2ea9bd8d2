/* render.go provides a fogleman/gg backed Surface so a stack can be
composited into a plain image.Image (and onward to png). */

package tilestack

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Canvas is a Surface that rasterizes tiles.
//
// Color tokens that fail to parse are painted with Fallback instead of
// aborting the draw pass, so one bad token can't hold a whole stack back.
type Canvas struct {
	ctx *gg.Context

	// Fallback paints tiles whose color token cannot be resolved.
	Fallback color.Color

	// Outline strokes each tile edge so stacked same-color tiles stay
	// visible. Set nil to disable.
	Outline color.Color
}

// NewCanvas returns a white canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	return &Canvas{
		ctx:      ctx,
		Fallback: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		Outline:  color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	}
}

// Clear floods the whole canvas with the given color token.
func (c *Canvas) Clear(token string) {
	c.ctx.SetColor(c.resolve(token))
	c.ctx.Clear()
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, width, height int, token string) {
	c.ctx.SetColor(c.resolve(token))
	c.ctx.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	c.ctx.Fill()

	if c.Outline == nil {
		return
	}
	c.ctx.SetColor(c.Outline)
	c.ctx.SetLineWidth(1)
	c.ctx.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
	c.ctx.Stroke()
}

// Image returns the composited pixels.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to disk.
func (c *Canvas) SavePNG(path string) error {
	return gg.SavePNG(path, c.ctx.Image())
}

func (c *Canvas) resolve(token string) color.Color {
	col, err := ParseColor(token)
	if err != nil {
		return c.Fallback
	}
	return col
}
