package rates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"fjacquet/exchange-csv/internal/enricherror"
	"fjacquet/exchange-csv/internal/logging"
)

// DateLayout is the date representation the BNM export endpoint expects,
// also used as the cache key for a date.
const DateLayout = "02.01.2006"

// headerLines is the number of metadata lines preceding the rate table.
const headerLines = 2

// FetcherOptions configures a Fetcher.
type FetcherOptions struct {
	// BaseURL is the export endpoint, without the date query parameter.
	BaseURL string
	// Currency is the 3-letter code of the rate row to extract.
	Currency string
	// Timeout bounds a single HTTP exchange. Zero means no timeout.
	Timeout time.Duration
	// RequestsPerMinute throttles fetches when positive.
	RequestsPerMinute int
}

// Fetcher retrieves the official exchange rate for a date from the BNM
// export endpoint, consulting the cache first. It is safe for concurrent use.
type Fetcher struct {
	client   *http.Client
	baseURL  string
	currency string
	limiter  *rate.Limiter
	cache    *Cache
	logger   logging.Logger
}

// NewFetcher creates a Fetcher backed by the given cache.
func NewFetcher(opts FetcherOptions, rateCache *Cache, logger logging.Logger) *Fetcher {
	if logger == nil {
		logger = logging.GetLogger()
	}
	var limiter *rate.Limiter
	if opts.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RequestsPerMinute)/60.0), 1)
	}
	return &Fetcher{
		client:   &http.Client{Timeout: opts.Timeout},
		baseURL:  opts.BaseURL,
		currency: opts.Currency,
		limiter:  limiter,
		cache:    rateCache,
		logger:   logger,
	}
}

// Rate returns the official exchange rate for day, fetching it over HTTP on
// the first request for that date and answering from the cache afterwards.
func (f *Fetcher) Rate(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	key := day.Format(DateLayout)
	return f.cache.GetOrFetch(key, func() (decimal.Decimal, error) {
		return f.fetch(ctx, key)
	})
}

// fetch performs the single HTTP GET for a date and extracts the rate from
// the semicolon-delimited response table.
func (f *Fetcher) fetch(ctx context.Context, formattedDate string) (decimal.Decimal, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return decimal.Decimal{}, &enricherror.NetworkError{URL: f.baseURL, Err: err}
		}
	}

	url := fmt.Sprintf("%s?date=%s", f.baseURL, formattedDate)
	f.logger.Debug("Fetching exchange rate",
		logging.Field{Key: logging.FieldURL, Value: url},
		logging.Field{Key: logging.FieldCurrency, Value: f.currency})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, &enricherror.NetworkError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, &enricherror.NetworkError{URL: url, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.logger.WithError(err).Warn("Failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		f.logger.Warn("Rate source returned unexpected status",
			logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode},
			logging.Field{Key: logging.FieldURL, Value: url})
		return decimal.Decimal{}, &enricherror.UnexpectedStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, &enricherror.NetworkError{URL: url, Err: err}
	}

	return f.extractRate(string(body), formattedDate)
}

// extractRate finds the currency row in the response table and parses its
// last field as the rate. The first two lines of the body are metadata.
func (f *Fetcher) extractRate(body, formattedDate string) (decimal.Decimal, error) {
	token := ";" + f.currency + ";"
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if i < headerLines {
			continue
		}
		if !strings.Contains(line, token) {
			continue
		}
		fields := strings.Split(line, ";")
		raw := strings.TrimSpace(fields[len(fields)-1])
		value, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return decimal.Decimal{}, &enricherror.MalformedResponseError{Token: raw, Err: err}
		}
		f.logger.Debug("Parsed exchange rate",
			logging.Field{Key: logging.FieldDate, Value: formattedDate},
			logging.Field{Key: logging.FieldRate, Value: value.String()})
		return value, nil
	}
	return decimal.Decimal{}, &enricherror.CurrencyNotFoundError{Currency: f.currency, Date: formattedDate}
}
