package domain

// Analysis is a stateful aggregator fed one placement at a time by the
// replay driver, in history order. Implementations own their aggregate
// state exclusively; calls are strictly sequential and single-threaded.
//
// Finalize is called exactly once, after the last event has been
// dispatched, and returns the analysis result. Implementations are not
// required to support a second Finalize call.
type Analysis[R any] interface {
	// OnPixel incorporates a single-cell placement. The event's Geometry
	// field holds p; it is passed separately so handlers need no type
	// assertions.
	OnPixel(e PlacementEvent, p Pixel)

	// OnRectangle incorporates a range placement. How the covered range is
	// stamped into aggregate state is analysis-specific.
	OnRectangle(e PlacementEvent, r Rectangle)

	// Finalize returns the analysis result.
	Finalize() R
}

// Discard is an Analysis that ignores every event and produces nothing.
// Useful as an embeddable base and for benchmarking the replay driver in
// isolation.
type Discard struct{}

func (Discard) OnPixel(PlacementEvent, Pixel)         {}
func (Discard) OnRectangle(PlacementEvent, Rectangle) {}
func (Discard) Finalize() struct{}                    { return struct{}{} }
