package root

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fjacquet/exchange-csv/internal/config"
	"fjacquet/exchange-csv/internal/csvio"
	"fjacquet/exchange-csv/internal/enrich"
	"fjacquet/exchange-csv/internal/filter"
	"fjacquet/exchange-csv/internal/logging"
	"fjacquet/exchange-csv/internal/models"
	"fjacquet/exchange-csv/internal/rates"
	"fjacquet/exchange-csv/internal/schema"
)

// run wires the whole pipeline: read, filter, enrich, project, write.
// Per-row failures are logged inside the pipeline; only initialization
// failures surface here and abort the run.
func run(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	logrusLogger := config.ConfigureLoggingFromConfig(cfg)
	log := logging.NewLogrusAdapterFromLogger(logrusLogger)

	inDelimiter, err := delimiterRune(RunFlags.InDelimiter)
	if err != nil {
		return fmt.Errorf("invalid input delimiter: %w", err)
	}
	outDelimiter := inDelimiter
	if RunFlags.OutDelimiter != "" {
		if outDelimiter, err = delimiterRune(RunFlags.OutDelimiter); err != nil {
			return fmt.Errorf("invalid output delimiter: %w", err)
		}
	}

	inFile, err := os.Open(RunFlags.InFile)
	if err != nil {
		return fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := inFile.Close(); err != nil {
			log.WithError(err).Warn("Failed to close input file")
		}
	}()

	reader, err := csvio.NewReader(inFile, csvio.ReaderOptions{
		Delimiter: inDelimiter,
		HasHeader: !RunFlags.InNoHeaders,
	}, log)
	if err != nil {
		return err
	}
	header := reader.Header()

	// The date column must resolve before any row is processed.
	dateColumn, err := schema.ResolveColumn(header, RunFlags.InDateColumn)
	if err != nil {
		return err
	}

	insertPosition := schema.ResolveInsertPosition(header, RunFlags.InsertAfter, log)

	var rowFilter *filter.Filter
	if RunFlags.Filter != "" {
		rowFilter, err = filter.Compile(RunFlags.Filter, header)
		if err != nil {
			log.WithError(err).Warn("Failed to compile filter, processing all rows",
				logging.Field{Key: logging.FieldFilter, Value: RunFlags.Filter})
			rowFilter = nil
		}
	}

	records := reader.ReadAll()
	filtered := records
	if rowFilter != nil {
		filtered = make([]models.Record, 0, len(records))
		for _, record := range records {
			if rowFilter.Matches(record) {
				filtered = append(filtered, record)
			}
		}
	}
	log.Debug("Read input records",
		logging.Field{Key: logging.FieldFile, Value: RunFlags.InFile},
		logging.Field{Key: logging.FieldCount, Value: len(filtered)})

	rateCache := rates.NewCache()
	fetcher := rates.NewFetcher(rates.FetcherOptions{
		BaseURL:           cfg.BNM.BaseURL,
		Currency:          cfg.BNM.Currency,
		Timeout:           time.Duration(cfg.BNM.TimeoutSeconds) * time.Second,
		RequestsPerMinute: cfg.BNM.RequestsPerMinute,
	}, rateCache, log)

	engine := enrich.New(fetcher, enrich.Options{
		DateColumn:     dateColumn,
		DateInFormat:   RunFlags.InDateFormat,
		DateOutFormat:  RunFlags.OutDateFormat,
		InsertPosition: insertPosition,
		Workers:        cfg.Enrich.Workers,
	}, log)
	enriched := engine.EnrichAll(cmd.Context(), filtered)

	var outHeader models.Record
	if header != nil {
		outHeader = schema.ProjectHeader(header, RunFlags.ExchangeCol, insertPosition)
	}

	var out io.Writer = os.Stdout
	if RunFlags.OutFile != "" {
		outFile, err := os.Create(RunFlags.OutFile)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer func() {
			if err := outFile.Close(); err != nil {
				log.WithError(err).Warn("Failed to close output file")
			}
		}()
		out = outFile
	}

	if err := csvio.NewWriter(out, outDelimiter).WriteAll(outHeader, enriched); err != nil {
		return err
	}

	log.Info("Enrichment completed",
		logging.Field{Key: logging.FieldCount, Value: len(enriched)},
		logging.Field{Key: "dates_fetched", Value: rateCache.Len()})
	return nil
}

// delimiterRune validates that a delimiter option is a single character.
func delimiterRune(value string) (rune, error) {
	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	return runes[0], nil
}
