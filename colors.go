package linecharts

import (
	"github.com/gogpu/gg"
)

type Palette []gg.RGBA

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

// At returns the colour at i, cycling through the palette. An empty palette
// yields opaque black.
func (p Palette) At(i int) gg.RGBA {
	if len(p) == 0 {
		return gg.RGB(0, 0, 0)
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, gg.Hex(str[i:i+6]))
	}
	return arr
}

func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}
