// Package analysis provides the concrete aggregations shipped with the
// replay tool. Each one consumes the full placement history and produces a
// canvas-cell-indexed aggregate array suitable for rendering.
package analysis

import "github.com/user/canvas-replay/internal/domain"

// Heatmap counts placements per canvas cell. A pixel placement increments
// its cell; a rectangle placement stamps every cell of the closed
// coordinate range, far corner included.
type Heatmap struct {
	counts []float64
}

// NewHeatmap creates a Heatmap with all cells at zero.
func NewHeatmap() *Heatmap {
	return &Heatmap{counts: make([]float64, domain.CanvasCells)}
}

func (h *Heatmap) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	h.counts[p.Y*domain.CanvasWidth+p.X]++
}

func (h *Heatmap) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	for y := r.Y1; y <= r.Y2; y++ {
		row := y * domain.CanvasWidth
		for x := r.X1; x <= r.X2; x++ {
			h.counts[row+x]++
		}
	}
}

// Finalize returns the per-cell placement counts in row-major order.
func (h *Heatmap) Finalize() []float64 {
	return h.counts
}
