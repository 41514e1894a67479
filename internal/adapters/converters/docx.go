package converters

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/GabrielNunesIT/openapi-table/internal/report"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const docxFormat = "docx"

// DocxConverter renders the report as a Word (DOCX) document.
type DocxConverter struct{}

// NewDocxConverter creates a new DOCX converter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

// Format returns the output format name.
func (c *DocxConverter) Format() string {
	return docxFormat
}

// Write renders the report to DOCX format.
func (c *DocxConverter) Write(r *report.Report, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	_, _ = document.AddHeading("API 설계서", 0) // Level 0 = Title style
	document.AddEmptyParagraph()

	for _, group := range r.Groups() {
		c.addGroup(document, group)
	}

	c.addSummary(document, r.Summary())

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (c *DocxConverter) addGroup(document *docx.RootDoc, group report.Group) {
	_, _ = document.AddHeading(group.Service, 1)

	for _, row := range group.Rows {
		c.addRow(document, row)
	}
}

func (c *DocxConverter) addRow(document *docx.RootDoc, row domain.Row) {
	_, _ = document.AddHeading(endpointTitle(row), 2)

	for _, col := range domain.Columns() {
		value := row.Get(col)
		if value == "" {
			continue
		}

		document.AddParagraph(fmt.Sprintf("• %s: %s", col.Header(), value))
	}

	document.AddEmptyParagraph()
}

func (c *DocxConverter) addSummary(document *docx.RootDoc, s report.Summary) {
	_, _ = document.AddHeading("생성 정보", 1)

	for _, line := range summaryLines(s, "서비스별 API 명세 (Word)") {
		document.AddParagraph(fmt.Sprintf("• %s", line))
	}
}
