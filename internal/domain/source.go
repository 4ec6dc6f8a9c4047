package domain

import "context"

// RecordReader yields the raw fields of one history record at a time.
// Read returns io.EOF after the last record. Implementations are not safe
// for concurrent use; the replay driver is the only consumer.
type RecordReader interface {
	// Read returns the fields of the next record, or io.EOF when the
	// stream is exhausted.
	Read() ([]string, error)

	// Close releases the underlying resources. It must be safe to call
	// after a Read error.
	Close() error
}

// HistorySource opens a sequential read over a placement history. Each Open
// starts a fresh pass from the first record; the history can only be
// restarted by reopening it.
type HistorySource interface {
	Open(ctx context.Context) (RecordReader, error)
}
