package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobtrack/internal/domain"
)

func testScorer() KeywordScorer {
	return NewKeywordScorer(map[string]int{
		"senior":           10,
		"machine learning": 15,
		"ml engineer":      20,
		"remote":           8,
		"150k":             20,
		"€150":             20,
		"junior":           -30,
		"entry level":      -25,
	}, []string{"on-site only", "us only"})
}

func TestScore_WeightedSum(t *testing.T) {
	s := testScorer()

	tests := []struct {
		name   string
		result domain.RawResult
		want   int
	}{
		{
			name: "seniority plus role plus salary plus remote",
			result: domain.RawResult{
				Title:       "Senior ML Engineer",
				Description: "Remote, €150k, machine learning platform",
			},
			want: 10 + 20 + 8 + 20 + 20 + 15,
		},
		{
			name: "junior penalty goes negative",
			result: domain.RawResult{
				Title:       "Junior ML Engineer",
				Description: "Entry level machine learning position",
			},
			want: -30 + 20 - 25 + 15,
		},
		{
			name:   "no keyword matches",
			result: domain.RawResult{Title: "Gardener wanted", Description: "Plant things"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.result))
		})
	}
}

func TestScore_KeywordCountsOnce(t *testing.T) {
	s := testScorer()
	got := s.Score(domain.RawResult{
		Title:       "Senior senior SENIOR engineer",
		Description: "senior senior",
	})
	assert.Equal(t, 10, got, "presence test, not occurrence count")
}

func TestScore_RejectPhraseForcesZero(t *testing.T) {
	s := testScorer()

	// every positive keyword present, still zero
	got := s.Score(domain.RawResult{
		Title:       "Senior ML Engineer, machine learning, remote",
		Description: "€150k, 150k. On-Site Only.",
	})
	assert.Equal(t, 0, got)
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := testScorer()
	assert.Equal(t, 10, s.Score(domain.RawResult{Title: "SENIOR Engineer"}))
	assert.Equal(t, 0, s.Score(domain.RawResult{Description: "senior role, US ONLY"}))
}
