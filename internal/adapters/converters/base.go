// Package converters provides writers that render a report in various formats.
package converters

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/GabrielNunesIT/openapi-table/internal/report"
)

// DefaultDelimiter separates fields in the delimited formats.
const DefaultDelimiter = "|"

// Options configures the writers.
type Options struct {
	Delimiter string
	FontPath  string // UTF-8 TTF font for PDF output
}

// New returns the writer for a format name.
func New(format string, opts Options) (report.Writer, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}

	switch strings.ToLower(format) {
	case flatFormat, "csv", "txt":
		return NewFlatConverter(opts.Delimiter), nil
	case markdownFormat, "markdown", "md":
		return NewMarkdownConverter(opts.Delimiter), nil
	case adfFormat, "adf":
		return NewADFConverter(), nil
	case docxFormat, "word":
		return NewDocxConverter(), nil
	case FormatPDF:
		return NewPDFConverter(opts.FontPath), nil
	default:
		return nil, fmt.Errorf("%w: %s (supported: flat, transposed, confluence, docx, pdf)", domain.ErrUnsupportedFormat, format)
	}
}

// Extension returns the file extension used for a format's default output name.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case flatFormat, "csv", "txt":
		return ".txt"
	case adfFormat, "adf":
		return ".json"
	case docxFormat, "word":
		return ".docx"
	case FormatPDF:
		return ".pdf"
	default:
		return ".md"
	}
}

// delimiterName describes the delimiter in the report narrative.
func delimiterName(delimiter string) string {
	if delimiter == DefaultDelimiter {
		return fmt.Sprintf("파이프(%s)", delimiter)
	}

	return fmt.Sprintf("구분자(%s)", delimiter)
}

// formatTimestamp renders the generation time.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// summaryLines returns the generation block as "label: value" lines.
func summaryLines(s report.Summary, format string) []string {
	return []string{
		fmt.Sprintf("생성일시: %s", formatTimestamp(s.GeneratedAt)),
		fmt.Sprintf("생성 도구: %s", s.Tool),
		fmt.Sprintf("총 API 수: %d개", s.APICount),
		fmt.Sprintf("총 파일 수: %d개", s.FileCount),
		fmt.Sprintf("형식: %s", format),
	}
}

// writeSummary appends the markdown generation block.
func writeSummary(b *strings.Builder, s report.Summary, format string) {
	b.WriteString("## 생성 정보\n")

	for _, line := range summaryLines(s, format) {
		fmt.Fprintf(b, "- %s\n", line)
	}
}

// joinLine joins the fields of one table line.
func joinLine(fields []string, delimiter string) string {
	return strings.Join(fields, delimiter)
}

// endpointTitle returns the "METHOD /path" label of a row.
func endpointTitle(row domain.Row) string {
	return fmt.Sprintf("%s %s", row.Get(domain.ColMethod), row.Get(domain.ColPath))
}
