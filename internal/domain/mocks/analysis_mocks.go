package mocks

import (
	"context"
	"io"

	"github.com/user/canvas-replay/internal/domain"
)

// StaticSource is a mock domain.HistorySource handing out a fixed reader.
type StaticSource struct {
	Reader  *ScriptedReader
	OpenErr error
	Opens   int
}

func (s *StaticSource) Open(ctx context.Context) (domain.RecordReader, error) {
	s.Opens++
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return s.Reader, nil
}

// Call records one handler invocation on RecordingAnalysis, in order.
type Call struct {
	Kind  string // "pixel" or "rectangle"
	Event domain.PlacementEvent
}

// RecordingAnalysis is a mock implementation of domain.Analysis for testing.
// It records every handler call in order and counts Finalize invocations.
type RecordingAnalysis struct {
	Calls         []Call
	FinalizeCalls int
	Result        string
}

func (m *RecordingAnalysis) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	m.Calls = append(m.Calls, Call{Kind: "pixel", Event: e})
}

func (m *RecordingAnalysis) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	m.Calls = append(m.Calls, Call{Kind: "rectangle", Event: e})
}

func (m *RecordingAnalysis) Finalize() string {
	m.FinalizeCalls++
	return m.Result
}

// ScriptedReader is a mock domain.RecordReader that replays a fixed set of
// records and then fails or ends the stream.
type ScriptedReader struct {
	Records [][]string
	ReadErr error // returned after Records are exhausted instead of io.EOF
	Closed  bool

	next int
}

func (m *ScriptedReader) Read() ([]string, error) {
	if m.next >= len(m.Records) {
		if m.ReadErr != nil {
			return nil, m.ReadErr
		}
		return nil, io.EOF
	}
	rec := m.Records[m.next]
	m.next++
	return rec, nil
}

func (m *ScriptedReader) Close() error {
	m.Closed = true
	return nil
}
