package surface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Default pixel footprint of one terminal cell.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Terminal maps a pixel surface onto the cells of a tcell screen. Each cell
// stands for CellW x CellH pixels; colours are blended over black by alpha.
type Terminal struct {
	Screen tcell.Screen
	CellW  int
	CellH  int

	fill  color.NRGBA
	alpha float64
}

// NewTerminal wraps screen with the default cell footprint.
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{Screen: screen, CellW: DefaultCellW, CellH: DefaultCellH}
}

// PixelSize reports the screen size in surface pixels.
func (t *Terminal) PixelSize() (int, int) {
	cols, rows := t.Screen.Size()
	return cols * t.CellW, rows * t.CellH
}

func (t *Terminal) Clear() { t.Screen.Clear() }

func (t *Terminal) SetFill(c color.Color) {
	t.fill = color.NRGBAModel.Convert(c).(color.NRGBA)
	t.alpha = float64(t.fill.A) / 255
}

// FillCircle paints every cell whose centre lies inside the circle, and always
// the cell holding the centre so sub-cell particles stay visible.
func (t *Terminal) FillCircle(x, y, r float64) {
	if t.alpha <= 0 {
		return
	}
	cols, rows := t.Screen.Size()
	cw, ch := float64(t.CellW), float64(t.CellH)

	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(float64(t.fill.R)*t.alpha),
		int32(float64(t.fill.G)*t.alpha),
		int32(float64(t.fill.B)*t.alpha),
	))
	glyph := shade(t.alpha)

	put := func(cx, cy int) {
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			return
		}
		t.Screen.SetContent(cx, cy, glyph, nil, style)
	}

	put(int(math.Floor(x/cw)), int(math.Floor(y/ch)))

	minX, maxX := int(math.Floor((x-r)/cw)), int(math.Floor((x+r)/cw))
	minY, maxY := int(math.Floor((y-r)/ch)), int(math.Floor((y+r)/ch))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			dx := (float64(cx)+0.5)*cw - x
			dy := (float64(cy)+0.5)*ch - y
			if dx*dx+dy*dy <= r*r {
				put(cx, cy)
			}
		}
	}
}

func shade(alpha float64) rune {
	switch {
	case alpha > 0.66:
		return '█'
	case alpha > 0.33:
		return '▓'
	default:
		return '░'
	}
}
