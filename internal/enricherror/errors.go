// Package enricherror defines the typed errors produced by the enrichment
// pipeline. Callers match on the concrete type to decide whether a failure is
// fatal, degradable, or per-row.
package enricherror

import "fmt"

// UnknownColumnError reports a column reference that does not appear in the
// header row.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("cannot find column %q in headers", e.Column)
}

// InvalidColumnIndexError reports a column reference that is not a
// non-negative integer when the input has no header row.
type InvalidColumnIndexError struct {
	Reference string
}

func (e *InvalidColumnIndexError) Error() string {
	return fmt.Sprintf("failed to parse column index %q", e.Reference)
}

// MalformedFilterError reports a filter expression without a '=' separator.
type MalformedFilterError struct {
	Expression string
}

func (e *MalformedFilterError) Error() string {
	return fmt.Sprintf("filter %q must be a column=regex pair", e.Expression)
}

// InvalidPatternError reports a filter pattern that does not compile as a
// regular expression.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// MissingDateFieldError reports a row too short to contain the date column.
type MissingDateFieldError struct {
	Column int
}

func (e *MissingDateFieldError) Error() string {
	return fmt.Sprintf("row has no field at date column %d", e.Column)
}

// DateParseError reports a date field that does not match the configured
// input format.
type DateParseError struct {
	Value  string
	Format string
	Err    error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse date %q with format %q: %v", e.Value, e.Format, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// NetworkError reports a failed HTTP exchange with the rate source.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError reports a non-success HTTP status from the rate source.
type UnexpectedStatusError struct {
	URL        string
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("got unexpected status %d from %s", e.StatusCode, e.URL)
}

// CurrencyNotFoundError reports a rate table without a row for the configured
// currency.
type CurrencyNotFoundError struct {
	Currency string
	Date     string
}

func (e *CurrencyNotFoundError) Error() string {
	return fmt.Sprintf("no %s rate in response for %s", e.Currency, e.Date)
}

// MalformedResponseError reports a rate table row whose rate token is not a
// number.
type MalformedResponseError struct {
	Token string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse rate value %q: %v", e.Token, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
