// Package root contains the root command for the application.
package root

import (
	"github.com/spf13/cobra"
)

// Flags holds the per-run options supplied on the command line.
type Flags struct {
	InFile        string
	InNoHeaders   bool
	InDateFormat  string
	InDelimiter   string
	InDateColumn  string
	OutFile       string
	OutDelimiter  string
	OutDateFormat string
	ExchangeCol   string
	InsertAfter   string
	Filter        string
}

var (
	// RunFlags are the flag values for the current invocation.
	RunFlags = Flags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "exchange-csv",
		Short: "Enrich a CSV file with official BNM exchange rates.",
		Long: `exchange-csv reads a CSV file with a date column, fetches the official
BNM exchange rate for each row's date and inserts it as a new column.
Rows can be filtered with a column=regex expression, and the date column
can be reformatted on the way out.

Column options are header names when the input has a header row, or
zero-based indexes when --in-no-headers is set.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Init registers all flags on the root command.
func Init() {
	Cmd.Flags().StringVarP(&RunFlags.InFile, "in-file", "i", "", "Path to the input CSV file")
	Cmd.Flags().BoolVar(&RunFlags.InNoHeaders, "in-no-headers", false, "Set when the input CSV file has no header row")
	Cmd.Flags().StringVar(&RunFlags.InDateFormat, "in-date-format", "%m/%d/%Y", "Date format of the input CSV file (strftime)")
	Cmd.Flags().StringVar(&RunFlags.InDelimiter, "in-column-delimiter", ",", "Column delimiter of the input CSV file")
	Cmd.Flags().StringVarP(&RunFlags.InDateColumn, "in-date-column", "d", "", "Date column of the input CSV file")
	Cmd.Flags().StringVarP(&RunFlags.OutFile, "out-file", "o", "", "Path to the output CSV file (stdout when omitted)")
	Cmd.Flags().StringVar(&RunFlags.OutDelimiter, "out-column-delimiter", "", "Column delimiter of the output CSV file (defaults to the input delimiter)")
	Cmd.Flags().StringVar(&RunFlags.OutDateFormat, "out-date-format", "", "Date format of the output file (defaults to the raw input value)")
	Cmd.Flags().StringVar(&RunFlags.ExchangeCol, "out-exchange-column", "Exchange Rate", "Column name of the exchange rate")
	Cmd.Flags().StringVar(&RunFlags.InsertAfter, "out-exchange-insert-after", "", "Column the exchange rate is inserted after (appended when omitted)")
	Cmd.Flags().StringVarP(&RunFlags.Filter, "filter", "f", "", "Row filter in column=regex format")

	if err := Cmd.MarkFlagRequired("in-file"); err != nil {
		panic(err)
	}
	if err := Cmd.MarkFlagRequired("in-date-column"); err != nil {
		panic(err)
	}
}
