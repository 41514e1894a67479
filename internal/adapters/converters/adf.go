package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/openapi-table/internal/report"
)

const adfFormat = "confluence"

// ADFConverter renders the report as Atlassian Document Format (ADF) for
// Confluence, one transposed table per service.
type ADFConverter struct{}

// NewADFConverter creates a new ADF converter.
func NewADFConverter() *ADFConverter {
	return &ADFConverter{}
}

// Format returns the output format name.
func (c *ADFConverter) Format() string {
	return adfFormat
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
}

type adfAttrs struct {
	Level  int    `json:"level,omitempty"`
	Layout string `json:"layout,omitempty"`
}

// Write renders the report as ADF JSON.
func (c *ADFConverter) Write(r *report.Report, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	adf.Content = append(adf.Content, c.heading("API 설계서", 1))

	for _, group := range r.Groups() {
		adf.Content = append(adf.Content, c.heading(group.Service, 2))
		adf.Content = append(adf.Content, c.table(group.Transpose()))
	}

	adf.Content = append(adf.Content, c.heading("생성 정보", 2))
	adf.Content = append(adf.Content, c.bulletList(summaryLines(r.Summary(), "서비스별 전치 테이블 (Confluence ADF)")))

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(adf); err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	return nil
}

func (c *ADFConverter) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

// paragraph returns a paragraph node. ADF rejects empty text nodes, so an
// empty value yields an empty paragraph.
func (c *ADFConverter) paragraph(text string) adfNode {
	node := adfNode{Type: "paragraph"}
	if text != "" {
		node.Content = []adfNode{{Type: "text", Text: text}}
	}

	return node
}

// table renders transposed lines: the first cell of each line is a header.
func (c *ADFConverter) table(lines [][]string) adfNode {
	rows := make([]adfNode, 0, len(lines))

	for _, line := range lines {
		cells := make([]adfNode, 0, len(line))

		for i, value := range line {
			cellType := "tableCell"
			if i == 0 {
				cellType = "tableHeader"
			}

			cells = append(cells, adfNode{
				Type:    cellType,
				Content: []adfNode{c.paragraph(value)},
			})
		}

		rows = append(rows, adfNode{Type: "tableRow", Content: cells})
	}

	return adfNode{
		Type:    "table",
		Attrs:   &adfAttrs{Layout: "full-width"},
		Content: rows,
	}
}

func (c *ADFConverter) bulletList(lines []string) adfNode {
	items := make([]adfNode, 0, len(lines))

	for _, line := range lines {
		items = append(items, adfNode{
			Type:    "listItem",
			Content: []adfNode{c.paragraph(line)},
		})
	}

	return adfNode{
		Type:    "bulletList",
		Content: items,
	}
}
