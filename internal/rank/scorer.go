package rank

import "jobtrack/internal/domain"

type Scorer interface {
	Score(r domain.RawResult) int
}
