// Package progress decorates an Analysis with periodic progress reporting.
// The wrapper is pure delegation: every call is forwarded unchanged to the
// inner analysis, and wrapping never changes its final result. It only adds
// observable status output.
package progress

import (
	"fmt"
	"io"
	"strconv"

	"github.com/user/canvas-replay/internal/domain"
)

// DefaultInterval is the number of rows between progress updates.
const DefaultInterval = 10000

// Reporter receives the status emitted by the wrapper.
type Reporter interface {
	// Rows is called when the processed-row count reaches an exact
	// multiple of the reporting interval.
	Rows(n int64)

	// Status is called for the one-off messages around finalization.
	Status(msg string)
}

// Analysis wraps an inner analysis and reports progress while it runs.
type Analysis[R any] struct {
	inner    domain.Analysis[R]
	interval int64
	rows     int64
	reporter Reporter
}

// Option configures a progress wrapper.
type Option func(*options)

type options struct {
	interval int64
	reporter Reporter
}

// WithInterval sets the number of rows between updates. Values below 1 are
// ignored.
func WithInterval(n int64) Option {
	return func(o *options) {
		if n >= 1 {
			o.interval = n
		}
	}
}

// WithReporter replaces the default console reporter.
func WithReporter(r Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// New wraps inner in a progress-reporting decorator. By default updates go
// to a ConsoleReporter every DefaultInterval rows.
func New[R any](inner domain.Analysis[R], w io.Writer, opts ...Option) *Analysis[R] {
	o := options{interval: DefaultInterval, reporter: &ConsoleReporter{W: w}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Analysis[R]{inner: inner, interval: o.interval, reporter: o.reporter}
}

func (a *Analysis[R]) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	a.inner.OnPixel(e, p)
	a.onAnyRow()
}

func (a *Analysis[R]) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	a.inner.OnRectangle(e, r)
	a.onAnyRow()
}

// Finalize reports that the result is being formulated, finalizes the inner
// analysis, and returns its result unchanged.
func (a *Analysis[R]) Finalize() R {
	a.reporter.Status("formulating final result")
	result := a.inner.Finalize()
	a.reporter.Status("done")
	return result
}

func (a *Analysis[R]) onAnyRow() {
	a.rows++
	if a.rows%a.interval == 0 {
		a.reporter.Rows(a.rows)
	}
}

// ConsoleReporter writes fixed-width, carriage-return-terminated status
// lines so successive updates overwrite in place instead of scrolling.
type ConsoleReporter struct {
	W io.Writer
}

const messageWidth = 30

func (c *ConsoleReporter) Rows(n int64) {
	c.print(strconv.FormatInt(n, 10) + " rows processed")
}

func (c *ConsoleReporter) Status(msg string) {
	c.print(msg)
}

func (c *ConsoleReporter) print(msg string) {
	fmt.Fprintf(c.W, "%-*s\r", messageWidth, msg)
}
