package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/domain"
)

func TestRow_ColumnOrderMatchesHeader(t *testing.T) {
	rec := domain.JobRecord{
		Title:       "Senior ML Engineer",
		URL:         "https://a.com/1",
		Description: "Remote, machine learning platform",
		Salary:      "€100k-€140k",
		Location:    "Remote, Eu",
		Score:       93,
		DateFound:   "2026-01-15",
		Source:      "RemoteOK",
		Status:      domain.StatusNew,
	}

	row := Row(rec)
	assert.Len(t, row, len(Header))
	assert.Equal(t, []string{
		"2026-01-15", "93", "Senior ML Engineer", "", "Remote, Eu",
		"€100k-€140k", "RemoteOK", "new", "https://a.com/1",
		"Remote, machine learning platform",
	}, row)
}

func TestRows(t *testing.T) {
	recs := []domain.JobRecord{
		{Title: "a", URL: "https://a.com/1", DateFound: "2026-01-15", Status: domain.StatusNew},
		{Title: "b", URL: "https://a.com/2", DateFound: "2026-01-15", Status: domain.StatusNew},
	}
	rows := Rows(recs)
	assert.Len(t, rows, 2)
	assert.Equal(t, "https://a.com/1", rows[0][8])
	assert.Equal(t, "https://a.com/2", rows[1][8])
}
