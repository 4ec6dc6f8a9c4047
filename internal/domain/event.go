package domain

import "time"

// Canvas dimensions. Every coordinate in the placement history is relative
// to this fixed grid, and every aggregate array produced by an Analysis is
// indexed by it in row-major order.
const (
	CanvasWidth  = 2000
	CanvasHeight = 2000

	// CanvasCells is the length of a canvas-indexed aggregate array.
	CanvasCells = CanvasWidth * CanvasHeight
)

// PlacementEvent is one write action on the canvas, decoded from a single
// record of the placement history. Events are constructed transiently by the
// decoder and handed to an Analysis; the replay driver never retains them.
type PlacementEvent struct {
	Timestamp time.Time
	Actor     string // opaque anonymized identifier, not validated
	Color     string // HTML-style hex color, passed through unchanged
	Geometry  Geometry
}

// Geometry is the placement shape: either a single Pixel or a Rectangle.
// The interface is sealed so the set of variants stays closed and dispatch
// over it stays exhaustive.
type Geometry interface {
	isGeometry()
}

// Pixel is a single-cell placement.
type Pixel struct {
	X, Y int
}

// Rectangle is a range placement covering the closed coordinate range
// (X1,Y1)-(X2,Y2), with X2 >= X1 and Y2 >= Y1. Whether an analysis treats
// the far corner as inclusive is up to that analysis.
type Rectangle struct {
	X1, Y1, X2, Y2 int
}

func (Pixel) isGeometry()     {}
func (Rectangle) isGeometry() {}
