package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/user/canvas-replay/internal/domain"
)

// Number of leading characters that cover the date and time of a timestamp.
// The remainder (timezone, fractional seconds) is deliberately ignored, for
// reproducibility with the historical dataset.
const timestampChars = 19

const timestampLayout = "2006-01-02 15:04:05"

// Indexes of columns in the placement history.
const (
	timestampColumn  = 0
	actorColumn      = 1
	colorColumn      = 2
	coordinateColumn = 3

	recordFields = 4
)

// DecodeRecord turns the raw fields of one history record into a
// PlacementEvent. record is the 1-based record number, used only for error
// context. The decoder is a pure function: it validates the timestamp
// prefix and the geometry (token count, integer syntax, canvas bounds,
// corner ordering) and passes the actor and color through untouched.
func DecodeRecord(fields []string, record int64) (domain.PlacementEvent, error) {
	if len(fields) != recordFields {
		return domain.PlacementEvent{}, &domain.MalformedRecordError{
			Record: record,
			Reason: "expected " + strconv.Itoa(recordFields) + " fields, got " + strconv.Itoa(len(fields)),
		}
	}

	ts := fields[timestampColumn]
	if len(ts) < timestampChars {
		return domain.PlacementEvent{}, &domain.MalformedRecordError{
			Record: record,
			Reason: "timestamp shorter than " + strconv.Itoa(timestampChars) + " characters",
		}
	}
	timestamp, err := time.Parse(timestampLayout, ts[:timestampChars])
	if err != nil {
		return domain.PlacementEvent{}, &domain.MalformedRecordError{
			Record: record,
			Reason: "unparseable timestamp prefix",
			Err:    err,
		}
	}

	geometry, err := decodeGeometry(fields[coordinateColumn], record)
	if err != nil {
		return domain.PlacementEvent{}, err
	}

	return domain.PlacementEvent{
		Timestamp: timestamp,
		Actor:     fields[actorColumn],
		Color:     fields[colorColumn],
		Geometry:  geometry,
	}, nil
}

func decodeGeometry(field string, record int64) (domain.Geometry, error) {
	tokens := strings.Split(field, ",")
	coords := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return nil, &domain.MalformedRecordError{
				Record: record,
				Reason: "non-integer coordinate " + strconv.Quote(token),
				Err:    err,
			}
		}
		coords[i] = v
	}

	switch len(coords) {
	case 2:
		p := domain.Pixel{X: coords[0], Y: coords[1]}
		if !inBounds(p.X, p.Y) {
			return nil, &domain.MalformedRecordError{
				Record: record,
				Reason: "pixel outside canvas bounds: " + field,
			}
		}
		return p, nil
	case 4:
		r := domain.Rectangle{X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}
		if !inBounds(r.X1, r.Y1) || !inBounds(r.X2, r.Y2) {
			return nil, &domain.MalformedRecordError{
				Record: record,
				Reason: "rectangle outside canvas bounds: " + field,
			}
		}
		if r.X2 < r.X1 || r.Y2 < r.Y1 {
			return nil, &domain.MalformedRecordError{
				Record: record,
				Reason: "rectangle corners out of order: " + field,
			}
		}
		return r, nil
	default:
		return nil, &domain.MalformedRecordError{
			Record: record,
			Reason: "expected 2 or 4 coordinates, got " + strconv.Itoa(len(coords)),
		}
	}
}

func inBounds(x, y int) bool {
	return x >= 0 && x < domain.CanvasWidth && y >= 0 && y < domain.CanvasHeight
}
