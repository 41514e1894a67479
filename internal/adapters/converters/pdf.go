package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/GabrielNunesIT/openapi-table/internal/report"
	"github.com/jung-kurt/gofpdf"
)

// FormatPDF is the format name of the PDF writer.
const FormatPDF = "pdf"

const (
	pdfPageWidth   = 190.0
	pdfPageBottom  = 280.0
	pdfMarginLeft  = 10.0
	pdfMarginTop   = 10.0
	pdfMarginRight = 10.0
	pdfLineHeight  = 5.0
	pdfHeaderWidth = 50.0
	pdfCoreFont    = "Arial"
	pdfUTF8Font    = "report"
)

var methodColors = map[string][3]int{
	string(domain.MethodGet):    {97, 175, 254}, // Blue
	string(domain.MethodPost):   {73, 204, 144}, // Green
	string(domain.MethodPut):    {252, 161, 48}, // Orange
	string(domain.MethodDelete): {249, 62, 62},  // Red
	string(domain.MethodPatch):  {80, 227, 194}, // Teal
}

// PDFConverter renders the report as a PDF with one section per service and
// a field/value block per API.
type PDFConverter struct {
	pdf      *gofpdf.Fpdf
	fontPath string
	family   string
}

// NewPDFConverter creates a new PDF converter. When fontPath names a TTF file
// it is embedded as a UTF-8 font; otherwise the core Arial font is used and
// non-Latin text will not render.
func NewPDFConverter(fontPath string) *PDFConverter {
	return &PDFConverter{fontPath: fontPath}
}

// Format returns the output format name.
func (c *PDFConverter) Format() string {
	return FormatPDF
}

// Write renders the report to PDF format.
func (c *PDFConverter) Write(r *report.Report, output io.Writer) error {
	c.pdf = gofpdf.New("P", "mm", "A4", "")
	c.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	c.pdf.SetDrawColor(180, 180, 180) // Light gray for all borders

	c.family = pdfCoreFont
	if c.fontPath != "" {
		c.pdf.AddUTF8Font(pdfUTF8Font, "", c.fontPath)
		c.pdf.AddUTF8Font(pdfUTF8Font, "B", c.fontPath)
		if err := c.pdf.Error(); err != nil {
			return fmt.Errorf("failed to load font %s: %w", c.fontPath, err)
		}
		c.family = pdfUTF8Font
	}

	groups := r.Groups()
	links := make([]int, len(groups))
	for i := range groups {
		links[i] = c.pdf.AddLink()
	}

	c.addTitlePage(r.Summary(), groups, links)

	for i, group := range groups {
		c.addGroup(group, links[i])
	}

	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	return c.pdf.Output(output)
}

func (c *PDFConverter) addTitlePage(s report.Summary, groups []report.Group, links []int) {
	c.pdf.AddPage()

	c.pdf.SetFont(c.family, "B", 24)
	c.pdf.Ln(30)
	c.pdf.CellFormat(pdfPageWidth, 12, "API 설계서", "", 1, "C", false, 0, "")
	c.pdf.Ln(10)

	// Table of contents
	c.pdf.SetFont(c.family, "B", 12)
	for i, group := range groups {
		title := fmt.Sprintf("%s (%d)", group.Service, len(group.Rows))
		c.pdf.CellFormat(pdfPageWidth, 7, title, "", 1, "", false, links[i], "")
	}

	c.pdf.Ln(10)

	c.pdf.SetFont(c.family, "", 9)
	c.pdf.SetTextColor(100, 100, 100)
	for _, line := range summaryLines(s, "서비스별 API 명세 (PDF)") {
		c.pdf.CellFormat(pdfPageWidth, pdfLineHeight, line, "", 1, "", false, 0, "")
	}
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *PDFConverter) addGroup(group report.Group, link int) {
	c.pdf.AddPage()
	c.pdf.SetLink(link, -1, -1)

	c.pdf.SetFont(c.family, "B", 16)
	c.pdf.SetFillColor(240, 240, 240)
	c.pdf.CellFormat(pdfPageWidth, 9, group.Service, "", 1, "", true, 0, "")
	c.pdf.Ln(4)

	for _, row := range group.Rows {
		c.addRow(row)
	}
}

func (c *PDFConverter) addRow(row domain.Row) {
	c.checkPageBreak(30)

	method := row.Get(domain.ColMethod)

	color, ok := methodColors[method]
	if !ok {
		color = [3]int{128, 128, 128}
	}

	c.pdf.SetFont(c.family, "B", 10)
	c.pdf.SetFillColor(color[0], color[1], color[2])
	c.pdf.SetTextColor(255, 255, 255)
	methodWidth := float64(len(method)*3) + 8
	c.pdf.CellFormat(methodWidth, 7, method, "", 0, "C", true, 0, "")

	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.CellFormat(pdfPageWidth-methodWidth, 7, " "+row.Get(domain.ColPath), "", 1, "", false, 0, "")
	c.pdf.Ln(1)

	for _, col := range domain.Columns() {
		c.checkPageBreak(pdfLineHeight)

		c.pdf.SetFont(c.family, "B", 8)
		c.pdf.SetTextColor(60, 60, 60)
		c.pdf.CellFormat(pdfHeaderWidth, pdfLineHeight, col.Header(), "", 0, "", false, 0, "")

		c.pdf.SetFont(c.family, "", 8)
		c.pdf.SetTextColor(0, 0, 0)
		c.pdf.MultiCell(pdfPageWidth-pdfHeaderWidth, pdfLineHeight, pdfValue(row, col), "", "", false)
	}

	c.pdf.Ln(2)
	c.pdf.SetDrawColor(220, 220, 220)
	c.pdf.Line(pdfMarginLeft, c.pdf.GetY(), pdfMarginLeft+pdfPageWidth, c.pdf.GetY())
	c.pdf.SetDrawColor(180, 180, 180)
	c.pdf.Ln(4)
}

func (c *PDFConverter) checkPageBreak(height float64) {
	if c.pdf.GetY()+height > pdfPageBottom {
		c.pdf.AddPage()
	}
}

// pdfValue returns the text printed for a field. Only the purpose comes from
// free-form descriptions that may carry markup.
func pdfValue(row domain.Row, col domain.Column) string {
	if col == domain.ColPurpose {
		return stripHTML(row.Get(col))
	}

	return row.Get(col)
}

func stripHTML(s string) string {
	// Simple HTML tag removal
	result := s
	for {
		start := strings.Index(result, "<")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], ">")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+1:]
	}
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	return strings.TrimSpace(result)
}
