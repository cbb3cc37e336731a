package export

import (
	"strconv"

	"jobtrack/internal/domain"
)

// Column order in the sheet. Company stays empty for now (the core does not
// extract it) but the slot is reserved so the sheet layout never shifts.
var Header = []string{
	"Date Found", "Score", "Title", "Company", "Location", "Salary",
	"Source", "Status", "URL", "Description",
}

func Row(rec domain.JobRecord) []string {
	return []string{
		rec.DateFound,
		strconv.Itoa(rec.Score),
		rec.Title,
		"", // company
		rec.Location,
		rec.Salary,
		rec.Source,
		rec.Status,
		rec.URL,
		rec.Description,
	}
}

func Rows(records []domain.JobRecord) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		out = append(out, Row(rec))
	}
	return out
}
