package rank

import (
	"strings"

	"jobtrack/internal/domain"
)

// KeywordScorer scores a result by naive substring matching over the
// lower-cased title + description. Tables come from config; there is no
// ambient/global lookup so tests can pass their own.
type KeywordScorer struct {
	// Weights keys must be lower case. Negative weights are penalties.
	Weights map[string]int
	// RejectPhrases force the score to 0 regardless of positive signal.
	RejectPhrases []string
}

func NewKeywordScorer(weights map[string]int, rejectPhrases []string) KeywordScorer {
	w := make(map[string]int, len(weights))
	for k, v := range weights {
		w[strings.ToLower(strings.TrimSpace(k))] = v
	}
	ps := make([]string, 0, len(rejectPhrases))
	for _, p := range rejectPhrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			ps = append(ps, p)
		}
	}
	return KeywordScorer{Weights: w, RejectPhrases: ps}
}

// Score returns the sum of weights of every keyword present in the search
// text. A keyword counts once no matter how often it occurs. A reject-phrase
// hit short-circuits everything and returns exactly 0.
func (s KeywordScorer) Score(r domain.RawResult) int {
	text := strings.ToLower(r.Title + " " + r.Description)

	for _, p := range s.RejectPhrases {
		if strings.Contains(text, p) {
			return 0
		}
	}

	score := 0
	for kw, weight := range s.Weights {
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			score += weight
		}
	}
	return score
}
