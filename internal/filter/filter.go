// Package filter compiles column=regex expressions and applies them to rows.
package filter

import (
	"regexp"
	"strings"

	"fjacquet/exchange-csv/internal/enricherror"
	"fjacquet/exchange-csv/internal/models"
	"fjacquet/exchange-csv/internal/schema"
)

// Filter is a compiled row predicate: a resolved column index and a regular
// expression matched anywhere within that column's value. Immutable once
// compiled and safe for concurrent use.
type Filter struct {
	column  int
	pattern *regexp.Regexp
}

// Compile builds a Filter from a column=regex expression. The column part is
// resolved against the header (or parsed as an index when header is nil), the
// pattern part must compile as a regular expression.
func Compile(expression string, header models.Record) (*Filter, error) {
	columnRef, pattern, found := strings.Cut(expression, "=")
	if !found {
		return nil, &enricherror.MalformedFilterError{Expression: expression}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &enricherror.InvalidPatternError{Pattern: pattern, Err: err}
	}

	column, err := schema.ResolveColumn(header, columnRef)
	if err != nil {
		return nil, err
	}

	return &Filter{column: column, pattern: re}, nil
}

// Matches reports whether the record's filter column matches the pattern.
// A row too short to contain the column never matches.
func (f *Filter) Matches(record models.Record) bool {
	value, ok := record.Get(f.column)
	if !ok {
		return false
	}
	return f.pattern.MatchString(value)
}
