// Package report groups rows by service and derives the views the writers render.
package report

import (
	"io"
	"time"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
)

// Tool is the generator identity printed in the summary.
const Tool = "openapi-table"

// Writer renders a report in one output format.
type Writer interface {
	// Write renders the report to output.
	Write(r *Report, output io.Writer) error

	// Format returns the output format name (e.g., "flat", "pdf").
	Format() string
}

// Report is the aggregate of every row produced in one run.
type Report struct {
	rows        []domain.Row
	groups      []Group
	generatedAt time.Time
}

// Group holds the rows of one service, in input order.
type Group struct {
	Service string
	Rows    []domain.Row
}

// Summary describes a generated report.
type Summary struct {
	GeneratedAt time.Time
	Tool        string
	APICount    int
	FileCount   int
}

// New assembles a report. Groups are ordered by the first appearance of
// each service name.
func New(rows []domain.Row, generatedAt time.Time) *Report {
	r := &Report{
		rows:        rows,
		generatedAt: generatedAt,
	}

	index := make(map[string]int)

	for _, row := range rows {
		service := row.Service()

		i, ok := index[service]
		if !ok {
			i = len(r.groups)
			index[service] = i
			r.groups = append(r.groups, Group{Service: service})
		}

		r.groups[i].Rows = append(r.groups[i].Rows, row)
	}

	return r
}

// Rows returns every row in input order.
func (r *Report) Rows() []domain.Row {
	return r.rows
}

// Groups returns the service groups in first-seen order.
func (r *Report) Groups() []Group {
	return r.groups
}

// Summary is derived from the same rows the tables are rendered from.
func (r *Report) Summary() Summary {
	files := make(map[string]struct{})
	for _, row := range r.rows {
		files[row.Get(domain.ColMicroservice)] = struct{}{}
	}

	return Summary{
		GeneratedAt: r.generatedAt,
		Tool:        Tool,
		APICount:    len(r.rows),
		FileCount:   len(files),
	}
}

// Table returns the header line followed by one line per row.
func (r *Report) Table() [][]string {
	table := make([][]string, 0, len(r.rows)+1)
	table = append(table, domain.Headers())

	for _, row := range r.rows {
		table = append(table, row.Fields())
	}

	return table
}

// Transpose returns one line per column: the column header followed by that
// column's value for every row of the group.
func (g Group) Transpose() [][]string {
	lines := make([][]string, 0, domain.ColumnCount)

	for _, col := range domain.Columns() {
		line := make([]string, 0, len(g.Rows)+1)
		line = append(line, col.Header())

		for _, row := range g.Rows {
			line = append(line, row.Get(col))
		}

		lines = append(lines, line)
	}

	return lines
}
