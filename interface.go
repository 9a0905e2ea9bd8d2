package tilestack

// Surface represents something a stack of tiles can be drawn onto.
// Implementations own pixel output and color-token resolution; the
// collection only reports rectangles. Consumers painting a whole stack
// must go back-to-front so topmost tiles land last.
type Surface interface {
	// FillRect paints an axis-aligned rectangle. color is a token such
	// as "red" or "#20a0ff"; the surface decides how to resolve it.
	FillRect(x, y, width, height int, color string)
}
