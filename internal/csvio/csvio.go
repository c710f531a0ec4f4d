// Package csvio wraps encoding/csv behind the narrow read/write surface the
// pipeline needs: ordered string records with a configurable delimiter and an
// optional header row. Rows may vary in width; malformed rows are skipped and
// logged, never fatal.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"fjacquet/exchange-csv/internal/logging"
	"fjacquet/exchange-csv/internal/models"
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	Delimiter rune
	HasHeader bool
}

// Reader reads raw records from a CSV source.
type Reader struct {
	reader *csv.Reader
	header models.Record
	logger logging.Logger
}

// NewReader creates a Reader and, when the source has a header row, consumes
// it immediately.
func NewReader(src io.Reader, opts ReaderOptions, logger logging.Logger) (*Reader, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Debug("Reading CSV input",
		logging.Field{Key: logging.FieldDelimiter, Value: string(opts.Delimiter)})

	cr := csv.NewReader(src)
	cr.Comma = opts.Delimiter
	// Rows may have fewer or more fields than the header.
	cr.FieldsPerRecord = -1

	r := &Reader{reader: cr, logger: logger}
	if opts.HasHeader {
		header, err := cr.Read()
		if err != nil {
			return nil, fmt.Errorf("error reading CSV header: %w", err)
		}
		r.header = models.Record(header)
	}
	return r, nil
}

// Header returns the header row, or nil when the source has none.
func (r *Reader) Header() models.Record {
	return r.header
}

// ReadAll reads the remaining data rows. Rows the CSV tokenizer rejects are
// skipped with a warning; any other read failure ends the sequence with what
// was read so far.
func (r *Reader) ReadAll() []models.Record {
	var records []models.Record
	for {
		row, err := r.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.logger.WithError(err).Warn("Skipping row due to parse error",
					logging.Field{Key: logging.FieldRow, Value: parseErr.Line})
				continue
			}
			r.logger.WithError(err).Error("Aborting CSV read")
			break
		}
		records = append(records, models.Record(row))
	}
	return records
}

// Writer serializes records to a CSV destination.
type Writer struct {
	writer *csv.Writer
}

// NewWriter creates a Writer with the given field delimiter.
func NewWriter(dst io.Writer, delimiter rune) *Writer {
	cw := csv.NewWriter(dst)
	cw.Comma = delimiter
	return &Writer{writer: cw}
}

// WriteAll writes an optional header followed by all records and flushes.
func (w *Writer) WriteAll(header models.Record, records []models.Record) error {
	if header != nil {
		if err := w.writer.Write(header); err != nil {
			return fmt.Errorf("error writing CSV header: %w", err)
		}
	}
	for _, record := range records {
		if err := w.writer.Write(record); err != nil {
			return fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	w.writer.Flush()
	return w.writer.Error()
}
