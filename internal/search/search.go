package search

import (
	"context"

	"jobtrack/internal/domain"
)

// Source produces raw results for the pipeline. A source that fails mid-run
// should log and return what it has; the run continues with the rest.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RawResult, error)
}
