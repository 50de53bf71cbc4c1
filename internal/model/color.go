package model

import (
	"image/color"
	"strconv"
	"strings"
)

// named covers the handful of color keywords the editor and fallback
// imports use; everything else should be #rrggbb.
var named = map[string]color.RGBA{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
	"red":   {255, 0, 0, 255},
	"green": {0, 128, 0, 255},
	"blue":  {0, 0, 255, 255},
	"gray":  {128, 128, 128, 255},
	"none":  {0, 0, 0, 0},
}

// ParseColor resolves an element color string to an RGBA value.
// Unrecognized input falls back to black, matching the default ink.
func ParseColor(s string) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{
					R: uint8(v >> 16),
					G: uint8(v >> 8),
					B: uint8(v),
					A: 255,
				}
			}
		}
	}
	return color.RGBA{A: 255}
}
