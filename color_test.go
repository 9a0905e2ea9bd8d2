package tilestack

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestParseColorNames(t *testing.T) {
	c, err := ParseColor("red")
	assert.Nil(t, err)
	assert.Equal(t, colornames.Red, c)

	// names are case-insensitive
	c, err = ParseColor("YELLOW")
	assert.Nil(t, err)
	assert.Equal(t, colornames.Yellow, c)

	_, err = ParseColor("not-a-color")
	assert.NotNil(t, err)

	_, err = ParseColor("")
	assert.NotNil(t, err)
}

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#20a0ff")
	assert.Nil(t, err)
	assert.Equal(t, color.RGBA{R: 0x20, G: 0xa0, B: 0xff, A: 0xff}, c)

	// short form expands per digit
	c, err = ParseColor("#fff")
	assert.Nil(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, err = ParseColor("#a2c")
	assert.Nil(t, err)
	assert.Equal(t, color.RGBA{R: 0xaa, G: 0x22, B: 0xcc, A: 0xff}, c)
}

func TestParseColorBadHex(t *testing.T) {
	for _, token := range []string{"#", "#12", "#12345", "#1234567", "#zzzzzz"} {
		_, err := ParseColor(token)
		assert.NotNil(t, err, token)
	}
}
