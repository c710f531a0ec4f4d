// Package enrich orchestrates per-row enrichment: it parses each row's date,
// looks up the exchange rate for it, and inserts the rate as a new field.
package enrich

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"fjacquet/exchange-csv/internal/dateutils"
	"fjacquet/exchange-csv/internal/enricherror"
	"fjacquet/exchange-csv/internal/logging"
	"fjacquet/exchange-csv/internal/models"
)

// RateSource provides the exchange rate for a calendar date.
type RateSource interface {
	Rate(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

// Options configures an Engine for one run.
type Options struct {
	// DateColumn is the resolved index of the date field.
	DateColumn int
	// DateInFormat is the strftime format of the input date field.
	DateInFormat string
	// DateOutFormat, when non-empty, reformats the date field on output.
	// When empty the original raw string is kept verbatim.
	DateOutFormat string
	// InsertPosition is the index the rate field occupies in the output row,
	// shared with the header projection. Nil appends at the end.
	InsertPosition *int
	// Workers bounds the number of rows enriched concurrently.
	Workers int
}

// Engine enriches records concurrently while preserving input order.
type Engine struct {
	rates  RateSource
	opts   Options
	logger logging.Logger
}

// New creates an Engine.
func New(rates RateSource, opts Options, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Engine{rates: rates, opts: opts, logger: logger}
}

// indexedRecord tags a record with its position in the input sequence so the
// output order can be reconstructed after concurrent processing.
type indexedRecord struct {
	index  int
	record models.Record
}

// EnrichAll enriches all records with a bounded worker pool and returns the
// successful rows in input order. Rows that fail to enrich are logged and
// dropped; a failure never aborts the run.
func (e *Engine) EnrichAll(ctx context.Context, records []models.Record) []models.Record {
	workers := e.opts.Workers
	if workers > len(records) {
		workers = len(records)
	}
	if workers < 1 {
		return nil
	}

	jobs := make(chan indexedRecord)
	// One slot per input row; a nil slot marks a dropped row.
	results := make([]models.Record, len(records))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				enriched, err := e.Enrich(ctx, job.record)
				if err != nil {
					e.logger.WithError(err).Warn("Failed to add exchange rate, dropping row",
						logging.Field{Key: logging.FieldRow, Value: job.index})
					continue
				}
				results[job.index] = enriched
			}
		}()
	}

	for i, record := range records {
		jobs <- indexedRecord{index: i, record: record}
	}
	close(jobs)
	wg.Wait()

	out := make([]models.Record, 0, len(records))
	for _, record := range results {
		if record != nil {
			out = append(out, record)
		}
	}

	e.logger.Debug("Enrichment completed",
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})
	return out
}

// Enrich enriches a single record: the date field is parsed, optionally
// reformatted, and the rate for that date is inserted at the configured
// position (or appended).
func (e *Engine) Enrich(ctx context.Context, record models.Record) (models.Record, error) {
	raw, ok := record.Get(e.opts.DateColumn)
	if !ok {
		return nil, &enricherror.MissingDateFieldError{Column: e.opts.DateColumn}
	}

	day, err := dateutils.Parse(e.opts.DateInFormat, raw)
	if err != nil {
		return nil, &enricherror.DateParseError{Value: raw, Format: e.opts.DateInFormat, Err: err}
	}

	outDate := raw
	if e.opts.DateOutFormat != "" {
		outDate = dateutils.Format(e.opts.DateOutFormat, day)
	}

	exchangeRate, err := e.rates.Rate(ctx, day)
	if err != nil {
		return nil, err
	}

	out := record.Clone()
	out[e.opts.DateColumn] = outDate
	if e.opts.InsertPosition != nil {
		out = out.Insert(*e.opts.InsertPosition, exchangeRate.String())
	} else {
		out = append(out, exchangeRate.String())
	}
	return out, nil
}
