// Package dateutils handles the strftime-style date formats exposed on the
// command line, translating them to Go layouts for parsing and formatting.
package dateutils

import (
	"regexp"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// Common strftime formats.
const (
	FormatUS       = "%m/%d/%Y"
	FormatEuropean = "%d.%m.%Y"
	FormatISO      = "%Y-%m-%d"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Layout converts a strftime format to the equivalent Go time layout.
func Layout(format string) (string, error) {
	return strftime.Layout(format)
}

// Parse parses a date string using a strftime format.
func Parse(format, value string) (time.Time, error) {
	return strftime.Parse(format, CleanDateString(value))
}

// Format renders a time using a strftime format.
func Format(format string, t time.Time) string {
	return strftime.Format(format, t)
}

// CleanDateString trims and collapses whitespace in a raw date field.
func CleanDateString(value string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(value), " ")
}
