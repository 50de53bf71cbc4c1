package model

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"black", color.RGBA{A: 255}},
		{"Red", color.RGBA{R: 255, A: 255}},
		{" green ", color.RGBA{G: 128, A: 255}},
		{"none", color.RGBA{}},
		{"#ffffff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#1a2B3c", color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}},
		{"#f00", color.RGBA{R: 255, A: 255}},
		{"#zzz", color.RGBA{A: 255}},
		{"chartreuse", color.RGBA{A: 255}},
		{"", color.RGBA{A: 255}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseColor(c.in), "input %q", c.in)
	}
}
