package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/weather-fireworks/internal/surface"
)

var _ surface.Surface = (*canvas)(nil)

// canvas is the offscreen ebiten image the system renders onto.
type canvas struct {
	img  *ebiten.Image
	fill color.Color
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		img:  ebiten.NewImage(max(w, 1), max(h, 1)),
		fill: color.Transparent,
	}
}

// resize replaces the image when the size changed. Content is discarded.
func (c *canvas) resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	b := c.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	c.img.Deallocate()
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Clear() { c.img.Clear() }

func (c *canvas) SetFill(col color.Color) { c.fill = col }

func (c *canvas) FillCircle(x, y, r float64) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), c.fill, true)
}
