package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/user/canvas-replay/internal/domain"
)

func TestDecodeRecord_Pixel(t *testing.T) {
	event, err := DecodeRecord([]string{"2017-04-03 01:49:41.266 UTC", "actor-1", "#FF0000", "15,3"}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := time.Date(2017, time.April, 3, 1, 49, 41, 0, time.UTC)
	if !event.Timestamp.Equal(want) {
		t.Errorf("expected timestamp %v, got %v", want, event.Timestamp)
	}
	if event.Actor != "actor-1" {
		t.Errorf("expected actor %q, got %q", "actor-1", event.Actor)
	}
	if event.Color != "#FF0000" {
		t.Errorf("expected color %q, got %q", "#FF0000", event.Color)
	}
	p, ok := event.Geometry.(domain.Pixel)
	if !ok {
		t.Fatalf("expected Pixel geometry, got %T", event.Geometry)
	}
	if p.X != 15 || p.Y != 3 {
		t.Errorf("expected pixel (15,3), got (%d,%d)", p.X, p.Y)
	}
}

func TestDecodeRecord_Rectangle(t *testing.T) {
	event, err := DecodeRecord([]string{"2017-04-03 01:49:41 UTC", "mod-7", "#FFFFFF", "0,0,1999,1999"}, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	r, ok := event.Geometry.(domain.Rectangle)
	if !ok {
		t.Fatalf("expected Rectangle geometry, got %T", event.Geometry)
	}
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 1999 || r.Y2 != 1999 {
		t.Errorf("expected rectangle (0,0,1999,1999), got %+v", r)
	}
}

func TestDecodeRecord_TruncatesTimestampSuffix(t *testing.T) {
	// The 19-character prefix is all that counts; zone and fraction are
	// deliberately ignored for reproducibility with the historical data.
	suffixes := []string{"", " UTC", ".123456 UTC", "+02:00"}
	for _, suffix := range suffixes {
		event, err := DecodeRecord([]string{"2017-04-01 00:00:00" + suffix, "a", "#000000", "1,1"}, 1)
		if err != nil {
			t.Fatalf("suffix %q: expected no error, got %v", suffix, err)
		}
		want := time.Date(2017, time.April, 1, 0, 0, 0, 0, time.UTC)
		if !event.Timestamp.Equal(want) {
			t.Errorf("suffix %q: expected %v, got %v", suffix, want, event.Timestamp)
		}
	}
}

func TestDecodeRecord_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		fields []string
	}{
		{"too few fields", []string{"2017-04-01 00:00:00", "a", "#000"}},
		{"too many fields", []string{"2017-04-01 00:00:00", "a", "#000", "1,1", "extra"}},
		{"short timestamp", []string{"2017-04-01", "a", "#000", "1,1"}},
		{"non-numeric timestamp", []string{"not a timestamp yet", "a", "#000", "1,1"}},
		{"three coordinates", []string{"2017-04-01 00:00:00", "a", "#000", "5,5,10"}},
		{"one coordinate", []string{"2017-04-01 00:00:00", "a", "#000", "5"}},
		{"five coordinates", []string{"2017-04-01 00:00:00", "a", "#000", "1,1,2,2,3"}},
		{"non-integer coordinate", []string{"2017-04-01 00:00:00", "a", "#000", "5,x"}},
		{"empty geometry", []string{"2017-04-01 00:00:00", "a", "#000", ""}},
		{"pixel out of bounds", []string{"2017-04-01 00:00:00", "a", "#000", "2000,5"}},
		{"negative pixel", []string{"2017-04-01 00:00:00", "a", "#000", "-1,5"}},
		{"rectangle out of bounds", []string{"2017-04-01 00:00:00", "a", "#000", "0,0,2000,10"}},
		{"rectangle corners out of order", []string{"2017-04-01 00:00:00", "a", "#000", "10,10,5,20"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecord(tc.fields, 42)
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			var malformed *domain.MalformedRecordError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedRecordError, got %T: %v", err, err)
			}
			if malformed.Record != 42 {
				t.Errorf("expected record number 42, got %d", malformed.Record)
			}
		})
	}
}

func TestDecodeRecord_TrimsCoordinateSpaces(t *testing.T) {
	event, err := DecodeRecord([]string{"2017-04-01 00:00:00", "a", "#000", "10, 20"}, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	p := event.Geometry.(domain.Pixel)
	if p.X != 10 || p.Y != 20 {
		t.Errorf("expected pixel (10,20), got (%d,%d)", p.X, p.Y)
	}
}
