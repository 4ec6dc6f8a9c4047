// Package history reads placement-history files: delimited text records,
// one placement per line, optionally compressed.
package history

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/user/canvas-replay/internal/domain"
)

// FileSource is a domain.HistorySource backed by a local file. The
// compression codec is chosen from the file extension: .gz, .zst/.zstd, or
// none. Each Open starts a fresh pass from the first record.
type FileSource struct {
	path       string
	skipHeader bool
	logger     *slog.Logger
}

// NewFileSource creates a FileSource for the given path. When skipHeader is
// set, the first record of every pass is discarded; the published dataset
// carries a header row, but the source itself assumes nothing.
func NewFileSource(path string, skipHeader bool, logger *slog.Logger) *FileSource {
	return &FileSource{
		path:       path,
		skipHeader: skipHeader,
		logger:     logger.With("component", "history_source"),
	}
}

// Open implements domain.HistorySource.
func (s *FileSource) Open(ctx context.Context) (domain.RecordReader, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %s: %w", s.path, err)
	}

	var (
		stream     io.Reader = file
		decompress io.Closer
	)
	switch filepath.Ext(s.path) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", s.path, err)
		}
		stream, decompress = gz, gz
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to open zstd stream %s: %w", s.path, err)
		}
		rc := zr.IOReadCloser()
		stream, decompress = rc, rc
	}

	records := csv.NewReader(stream)
	// Field counts are validated by the decoder, which reports the record
	// number; the csv layer only handles quoting and delimiting.
	records.FieldsPerRecord = -1

	r := &fileReader{file: file, decompress: decompress, records: records}

	if s.skipHeader {
		if _, err := records.Read(); err != nil && !errors.Is(err, io.EOF) {
			r.Close()
			return nil, fmt.Errorf("failed to skip header row of %s: %w", s.path, err)
		}
	}

	s.logger.Debug("opened placement history", "path", s.path, "skip_header", s.skipHeader)
	return r, nil
}

type fileReader struct {
	file       *os.File
	decompress io.Closer
	records    *csv.Reader
}

func (r *fileReader) Read() ([]string, error) {
	return r.records.Read()
}

func (r *fileReader) Close() error {
	var errs []error
	if r.decompress != nil {
		if err := r.decompress.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.file.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
