package tilestack

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a tile color token into a concrete color. Tokens are
// either SVG 1.1 names ("red", "Yellow", case-insensitive) or hex in the
// #rgb / #rrggbb forms.
func ParseColor(token string) (color.Color, error) {
	if strings.HasPrefix(token, "#") {
		return parseHexColor(token)
	}
	c, ok := colornames.Map[strings.ToLower(token)]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", token)
	}
	return c, nil
}

func parseHexColor(token string) (color.Color, error) {
	hex := token[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad hex color %q", token)
		}
		// #abc is shorthand for #aabbcc
		r *= 17
		g *= 17
		b *= 17
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad hex color %q", token)
		}
	default:
		return nil, fmt.Errorf("bad hex color %q", token)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
