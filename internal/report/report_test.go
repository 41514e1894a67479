package report

import (
	"testing"
	"time"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func makeRow(service, microservice, method, path string) domain.Row {
	var row domain.Row
	row[domain.ColService] = service
	row[domain.ColMicroservice] = microservice
	row[domain.ColMethod] = method
	row[domain.ColPath] = path
	row[domain.ColRequestIsArray] = "false"
	row[domain.ColResponseIsArray] = "false"

	return row
}

func sampleRows() []domain.Row {
	return []domain.Row{
		makeRow("여행 서비스", "trip-service-api", "GET", "/trips"),
		makeRow("사용자 서비스", "user-service-api", "POST", "/users"),
		makeRow("여행 서비스", "trip-service-api", "DELETE", "/trips/{id}"),
		makeRow("사용자 서비스", "user-service-api", "GET", "/users/{id}"),
		makeRow("Billing", "billing-api", "GET", "/invoices"),
	}
}

func TestNew_GroupsInFirstSeenOrder(t *testing.T) {
	r := New(sampleRows(), fixedTime)

	groups := r.Groups()
	require.Len(t, groups, 3)

	assert.Equal(t, "여행 서비스", groups[0].Service)
	assert.Equal(t, "사용자 서비스", groups[1].Service)
	assert.Equal(t, "Billing", groups[2].Service)

	require.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "/trips", groups[0].Rows[0].Get(domain.ColPath))
	assert.Equal(t, "/trips/{id}", groups[0].Rows[1].Get(domain.ColPath))

	assert.Len(t, r.Rows(), 5)
}

func TestSummary(t *testing.T) {
	s := New(sampleRows(), fixedTime).Summary()

	assert.Equal(t, fixedTime, s.GeneratedAt)
	assert.Equal(t, Tool, s.Tool)
	assert.Equal(t, 5, s.APICount)
	assert.Equal(t, 3, s.FileCount)
}

func TestTable(t *testing.T) {
	rows := sampleRows()
	table := New(rows, fixedTime).Table()

	require.Len(t, table, len(rows)+1)
	assert.Equal(t, domain.Headers(), table[0])

	for i, line := range table {
		assert.Len(t, line, domain.ColumnCount)
		if i > 0 {
			assert.Equal(t, rows[i-1].Fields(), line)
		}
	}
}

func TestTranspose_MatchesFlatColumns(t *testing.T) {
	r := New(sampleRows(), fixedTime)

	for _, group := range r.Groups() {
		lines := group.Transpose()
		require.Len(t, lines, domain.ColumnCount)

		for _, col := range domain.Columns() {
			line := lines[col]
			require.Len(t, line, len(group.Rows)+1)
			assert.Equal(t, col.Header(), line[0])

			for i, row := range group.Rows {
				assert.Equal(t, row.Get(col), line[i+1])
			}
		}
	}
}

func TestNew_Empty(t *testing.T) {
	r := New(nil, fixedTime)

	assert.Empty(t, r.Groups())
	assert.Equal(t, 0, r.Summary().APICount)
	assert.Equal(t, 0, r.Summary().FileCount)
	assert.Len(t, r.Table(), 1)
}
