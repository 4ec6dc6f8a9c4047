package analysis

import "github.com/user/canvas-replay/internal/domain"

// Recency tracks the Unix time of the most recent placement covering each
// cell, so an intensity rendering shows newer writes as brighter. Cells
// never written to stay at zero. Rectangle placements stamp the closed
// coordinate range, far corner included.
type Recency struct {
	lastWrite []float64
}

// NewRecency creates a Recency with all cells unwritten.
func NewRecency() *Recency {
	return &Recency{lastWrite: make([]float64, domain.CanvasCells)}
}

func (a *Recency) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	a.lastWrite[p.Y*domain.CanvasWidth+p.X] = float64(e.Timestamp.Unix())
}

func (a *Recency) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	ts := float64(e.Timestamp.Unix())
	for y := r.Y1; y <= r.Y2; y++ {
		row := y * domain.CanvasWidth
		for x := r.X1; x <= r.X2; x++ {
			a.lastWrite[row+x] = ts
		}
	}
}

// Finalize returns the per-cell last-write times in row-major order.
func (a *Recency) Finalize() []float64 {
	return a.lastWrite
}
