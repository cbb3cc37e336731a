package export

import (
	"context"
	"log"

	"jobtrack/internal/domain"
)

// Exporter appends records to some tabular destination and reports how many
// rows it wrote. The concrete transport (API CLI, local database, ...) is
// swappable without touching pipeline logic.
type Exporter interface {
	Append(ctx context.Context, records []domain.JobRecord) (int, error)
}

// Fanout writes to a primary destination plus best-effort mirrors. The
// returned count and error are the primary's; mirror failures are only
// logged.
type Fanout struct {
	Primary Exporter
	Mirrors []Exporter
}

func (f Fanout) Append(ctx context.Context, records []domain.JobRecord) (int, error) {
	for _, m := range f.Mirrors {
		if _, err := m.Append(ctx, records); err != nil {
			log.Printf("[export] mirror append failed: %v", err)
		}
	}
	return f.Primary.Append(ctx, records)
}
