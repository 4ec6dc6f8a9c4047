package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/user/canvas-replay/internal/domain"
)

// Replay performs a single forward pass over a placement history, feeding
// every event to the analysis in history order.
//
// The history is large; many machines cannot load it into memory fully, so
// the driver streams it one record at a time: read, decode, dispatch. The
// reader is opened once at the start and closed on every exit path. After a
// clean end of stream the analysis is finalized exactly once and its result
// returned. Any source, decode, or context error aborts the pass before
// Finalize, so a caller never observes a result computed from a silently
// truncated history.
func Replay[R any](ctx context.Context, src domain.HistorySource, analysis domain.Analysis[R]) (R, error) {
	var zero R

	reader, err := src.Open(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to open placement history: %w", err)
	}
	defer reader.Close()

	var record int64
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return zero, fmt.Errorf("failed to read placement history: %w", err)
		}
		record++

		event, err := DecodeRecord(fields, record)
		if err != nil {
			return zero, err
		}

		switch g := event.Geometry.(type) {
		case domain.Pixel:
			analysis.OnPixel(event, g)
		case domain.Rectangle:
			analysis.OnRectangle(event, g)
		}
	}

	return analysis.Finalize(), nil
}
