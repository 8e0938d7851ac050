// Package output provides output formatting interfaces.
// This package produces human and machine-readable quote renderings.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"warequote/core/money"
	"warequote/core/quote"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, result *quote.QuoteResult) error
}

// New returns the formatter for the given format
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}

// CLIFormatter renders a quote as an aligned text table
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the quote as a table with messages and questions below
func (f *CLIFormatter) Render(w io.Writer, result *quote.QuoteResult) error {
	if len(result.MissingInformation) > 0 {
		fmt.Fprintf(w, "More information needed: %s\n", strings.Join(result.MissingInformation, ", "))
		for _, q := range result.FollowUpQuestions {
			fmt.Fprintf(w, "  ? %s\n", q)
		}
		return nil
	}

	width := 20
	for _, item := range result.LineItems {
		if len(item.Description) > width {
			width = len(item.Description)
		}
	}

	for _, item := range result.LineItems {
		fmt.Fprintf(w, "  %-*s  %12s\n", width, item.Description, money.Format(item.Amount))
	}
	fmt.Fprintf(w, "  %-*s  %12s\n", width, "TOTAL", money.Format(result.TotalAmount))

	for _, msg := range result.Messages {
		fmt.Fprintf(w, "  * %s\n", msg)
	}
	for _, q := range result.FollowUpQuestions {
		fmt.Fprintf(w, "  ? %s\n", q)
	}
	return nil
}

// JSONFormatter renders a quote as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the quote as JSON
func (f *JSONFormatter) Render(w io.Writer, result *quote.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
