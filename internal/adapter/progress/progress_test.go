package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/user/canvas-replay/internal/domain"
)

type countingAnalysis struct {
	pixels     int
	rectangles int
}

func (c *countingAnalysis) OnPixel(domain.PlacementEvent, domain.Pixel)         { c.pixels++ }
func (c *countingAnalysis) OnRectangle(domain.PlacementEvent, domain.Rectangle) { c.rectangles++ }
func (c *countingAnalysis) Finalize() int                                       { return c.pixels + c.rectangles }

func event() domain.PlacementEvent {
	return domain.PlacementEvent{
		Timestamp: time.Date(2017, time.April, 1, 0, 0, 0, 0, time.UTC),
		Actor:     "a",
		Color:     "#fff",
		Geometry:  domain.Pixel{X: 1, Y: 1},
	}
}

func TestProgressDoesNotChangeResult(t *testing.T) {
	plain := &countingAnalysis{}
	wrapped := New[int](&countingAnalysis{}, &bytes.Buffer{}, WithInterval(3))

	for i := 0; i < 10; i++ {
		plain.OnPixel(event(), domain.Pixel{X: 1, Y: 1})
		wrapped.OnPixel(event(), domain.Pixel{X: 1, Y: 1})
	}
	plain.OnRectangle(event(), domain.Rectangle{X2: 1, Y2: 1})
	wrapped.OnRectangle(event(), domain.Rectangle{X2: 1, Y2: 1})

	if got, want := wrapped.Finalize(), plain.Finalize(); got != want {
		t.Errorf("expected wrapped result %d to equal unwrapped result %d", got, want)
	}
}

func TestProgressEmitsOnIntervalMultiples(t *testing.T) {
	var buf bytes.Buffer
	inner := &countingAnalysis{}
	wrapped := New[int](inner, &buf, WithInterval(2))

	for i := 0; i < 5; i++ {
		wrapped.OnPixel(event(), domain.Pixel{X: 1, Y: 1})
	}

	out := buf.String()
	if got := strings.Count(out, "rows processed"); got != 2 {
		t.Errorf("expected 2 progress updates for 5 rows at interval 2, got %d: %q", got, out)
	}
	if !strings.Contains(out, "2 rows processed") || !strings.Contains(out, "4 rows processed") {
		t.Errorf("expected updates at rows 2 and 4, got %q", out)
	}
	if !strings.Contains(out, "\r") {
		t.Errorf("expected carriage-return-terminated status lines, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Errorf("status lines must not scroll, got %q", out)
	}
}

func TestProgressFinalizeStatus(t *testing.T) {
	var buf bytes.Buffer
	wrapped := New[int](&countingAnalysis{}, &buf, WithInterval(100))

	wrapped.OnPixel(event(), domain.Pixel{X: 1, Y: 1})
	if got := wrapped.Finalize(); got != 1 {
		t.Errorf("expected inner result 1, got %d", got)
	}

	out := buf.String()
	final := strings.Index(out, "formulating final result")
	done := strings.Index(out, "done")
	if final == -1 || done == -1 {
		t.Fatalf("expected finalization statuses, got %q", out)
	}
	if done < final {
		t.Errorf("expected %q before %q, got %q", "formulating final result", "done", out)
	}
}

func TestProgressStatusLinesFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	(&ConsoleReporter{W: &buf}).Status("done")

	want := "done" + strings.Repeat(" ", messageWidth-len("done")) + "\r"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestProgressIntervalOfOne(t *testing.T) {
	var buf bytes.Buffer
	wrapped := New[int](&countingAnalysis{}, &buf, WithInterval(1))

	wrapped.OnRectangle(event(), domain.Rectangle{X2: 1, Y2: 1})
	wrapped.OnPixel(event(), domain.Pixel{X: 1, Y: 1})

	out := buf.String()
	if got := strings.Count(out, "rows processed"); got != 2 {
		t.Errorf("expected an update per row at interval 1, got %d: %q", got, out)
	}
}
