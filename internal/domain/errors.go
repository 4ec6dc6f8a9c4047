package domain

import "fmt"

// MalformedRecordError reports a history record the decoder could not turn
// into a PlacementEvent: wrong field count, a bad timestamp prefix,
// non-integer geometry tokens, or geometry violating the canvas invariants.
// It aborts the replay; a corrupt history is a data-integrity problem the
// caller must decide how to handle, so records are never silently dropped.
type MalformedRecordError struct {
	Record int64 // 1-based record number within the history
	Reason string
	Err    error // underlying parse error, if any
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed record %d: %s: %v", e.Record, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed record %d: %s", e.Record, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
