package analysis

import (
	"image/color"
	"testing"

	"github.com/user/canvas-replay/internal/domain"
)

func TestLastColorStartsWhite(t *testing.T) {
	cells := NewLastColor().Finalize()
	if len(cells) != domain.CanvasCells {
		t.Fatalf("expected %d cells, got %d", domain.CanvasCells, len(cells))
	}
	if cells[0] != canvasBackground {
		t.Errorf("expected white background, got %+v", cells[0])
	}
}

func TestLastColorKeepsMostRecentWrite(t *testing.T) {
	l := NewLastColor()
	p := domain.Pixel{X: 4, Y: 2}
	l.OnPixel(placement("#FF0000", p), p)
	l.OnPixel(placement("#00FF00", p), p)

	cells := l.Finalize()
	want := color.NRGBA{G: 0xff, A: 0xff}
	if cells[cell(4, 2)] != want {
		t.Errorf("expected last write to win, got %+v", cells[cell(4, 2)])
	}
}

func TestLastColorRectangleCoversClosedRange(t *testing.T) {
	l := NewLastColor()
	r := domain.Rectangle{X1: 0, Y1: 0, X2: 1, Y2: 1}
	l.OnRectangle(placement("#000000", r), r)

	cells := l.Finalize()
	black := color.NRGBA{A: 0xff}
	for _, c := range []struct{ x, y int }{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if cells[cell(c.x, c.y)] != black {
			t.Errorf("expected cell (%d,%d) black, got %+v", c.x, c.y, cells[cell(c.x, c.y)])
		}
	}
	if cells[cell(2, 0)] != canvasBackground {
		t.Errorf("expected cell (2,0) untouched, got %+v", cells[cell(2, 0)])
	}
}

func TestLastColorShortHexForm(t *testing.T) {
	l := NewLastColor()
	p := domain.Pixel{X: 0, Y: 0}
	l.OnPixel(placement("#abc", p), p)

	want := color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}
	if cells := l.Finalize(); cells[0] != want {
		t.Errorf("expected #abc to expand to %+v, got %+v", want, cells[0])
	}
}

func TestLastColorIgnoresUnparseableColor(t *testing.T) {
	l := NewLastColor()
	p := domain.Pixel{X: 0, Y: 0}
	l.OnPixel(placement("#FF0000", p), p)
	l.OnPixel(placement("not-a-color", p), p)

	want := color.NRGBA{R: 0xff, A: 0xff}
	if cells := l.Finalize(); cells[0] != want {
		t.Errorf("expected unparseable color to leave cell unchanged, got %+v", cells[0])
	}
}
