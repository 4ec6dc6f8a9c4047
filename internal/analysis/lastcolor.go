package analysis

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/user/canvas-replay/internal/domain"
)

// canvasBackground is the color of cells never written to, matching the
// white canvas the event log starts from.
var canvasBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// LastColor reconstructs the final state of the canvas: the color of the
// most recent placement covering each cell. Rectangle placements paint the
// closed coordinate range, far corner included. Colors that do not parse as
// #RGB or #RRGGBB leave the covered cells unchanged.
type LastColor struct {
	cells []color.NRGBA
}

// NewLastColor creates a LastColor over an all-white canvas.
func NewLastColor() *LastColor {
	l := &LastColor{cells: make([]color.NRGBA, domain.CanvasCells)}
	for i := range l.cells {
		l.cells[i] = canvasBackground
	}
	return l
}

func (l *LastColor) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	c, ok := parseHexColor(e.Color)
	if !ok {
		return
	}
	l.cells[p.Y*domain.CanvasWidth+p.X] = c
}

func (l *LastColor) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	c, ok := parseHexColor(e.Color)
	if !ok {
		return
	}
	for y := r.Y1; y <= r.Y2; y++ {
		row := y * domain.CanvasWidth
		for x := r.X1; x <= r.X2; x++ {
			l.cells[row+x] = c
		}
	}
}

// Finalize returns the reconstructed canvas in row-major order.
func (l *LastColor) Finalize() []color.NRGBA {
	return l.cells
}

func parseHexColor(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return color.NRGBA{}, false
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, true
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return color.NRGBA{}, false
		}
		return color.NRGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}, true
	default:
		return color.NRGBA{}, false
	}
}
