package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// HSVToRGB converts hue, saturation and value, all in [0,1], to 8-bit
// channels. Hue wraps, so 1.0 lands in the same sector as 0.0. Channels are
// truncated rather than rounded.
func HSVToRGB(h, s, v float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	c := colorful.Hsv(h*360, s, v)
	return RGB{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

func channel(x float64) uint8 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 255
	}
	return uint8(x * 255)
}
