package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/report"
)

const flatFormat = "flat"

// FlatConverter renders every row as one delimited line under a header line.
type FlatConverter struct {
	delimiter string
}

// NewFlatConverter creates a new flat converter.
func NewFlatConverter(delimiter string) *FlatConverter {
	return &FlatConverter{delimiter: delimiter}
}

// Format returns the output format name.
func (c *FlatConverter) Format() string {
	return flatFormat
}

// Write renders the report as a flat delimited table.
func (c *FlatConverter) Write(r *report.Report, output io.Writer) error {
	var b strings.Builder

	for _, line := range r.Table() {
		b.WriteString(joinLine(line, c.delimiter))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	writeSummary(&b, r.Summary(), fmt.Sprintf("%s로 구분된 CSV (한 행에 하나의 API)", delimiterName(c.delimiter)))

	if _, err := io.WriteString(output, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
