package view

import (
	"image"
	"image/color"
	"strings"

	"github.com/muesli/termenv"
)

// upperHalf is drawn with the top pixel as foreground and the bottom pixel
// as background, so each cell shows two stacked pixels.
const upperHalf = "▀"

// HalfBlocks renders img as terminal lines, two pixel rows per line.
// Translucent pixels are flattened over bg.
func HalfBlocks(img *image.RGBA, bg color.RGBA, profile termenv.Profile) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := Flatten(img.RGBAAt(x, y), bg)
			bottom := bg
			if y+1 < b.Max.Y {
				bottom = Flatten(img.RGBAAt(x, y+1), bg)
			}
			sb.WriteString(profile.String(upperHalf).
				Foreground(profile.FromColor(top)).
				Background(profile.FromColor(bottom)).
				String())
		}
	}
	return sb.String()
}

// Flatten composites a premultiplied pixel over an opaque background.
func Flatten(p, bg color.RGBA) color.RGBA {
	inv := 255 - uint32(p.A)
	blend := func(c, under uint8) uint8 {
		return uint8(min(255, uint32(c)+(uint32(under)*inv+127)/255))
	}
	return color.RGBA{
		R: blend(p.R, bg.R),
		G: blend(p.G, bg.G),
		B: blend(p.B, bg.B),
		A: 255,
	}
}
