// Package schema resolves user-supplied column references against the input
// schema and projects the output header.
//
// A reference is a header name when the input has a header row, otherwise a
// zero-based numeric index. Resolution never checks the reference against the
// width of actual data rows; rows too short to hold a resolved index are
// handled per row downstream.
package schema

import (
	"strconv"

	"fjacquet/exchange-csv/internal/enricherror"
	"fjacquet/exchange-csv/internal/logging"
	"fjacquet/exchange-csv/internal/models"
)

// ResolveColumn maps a column reference to a concrete field index.
// A nil header means the input has no header row and the reference is parsed
// as a non-negative integer.
func ResolveColumn(header models.Record, reference string) (int, error) {
	if header != nil {
		for i, name := range header {
			if name == reference {
				return i, nil
			}
		}
		return 0, &enricherror.UnknownColumnError{Column: reference}
	}

	index, err := strconv.Atoi(reference)
	if err != nil || index < 0 {
		return 0, &enricherror.InvalidColumnIndexError{Reference: reference}
	}
	return index, nil
}

// ResolveInsertPosition computes the single insertion index used by both the
// header projection and every enriched row, so the two stay positionally
// consistent. The returned index is the position the new field occupies,
// i.e. one past the referenced column. A nil result means append at the end:
// either insertAfter was empty, or it failed to resolve, which degrades to
// append with a logged warning.
func ResolveInsertPosition(header models.Record, insertAfter string, logger logging.Logger) *int {
	if insertAfter == "" {
		return nil
	}
	index, err := ResolveColumn(header, insertAfter)
	if err != nil {
		logger.WithError(err).Warn("Failed to resolve insert-after column, appending rate as last column",
			logging.Field{Key: logging.FieldColumn, Value: insertAfter})
		return nil
	}
	position := index + 1
	return &position
}

// ProjectHeader returns the output header: the original header with the new
// column name inserted at position, or appended when position is nil.
func ProjectHeader(header models.Record, columnName string, position *int) models.Record {
	if position == nil {
		return append(header.Clone(), columnName)
	}
	return header.Insert(*position, columnName)
}
