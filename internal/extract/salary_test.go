package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"euro range with k", "Salary: €100k - €150k per year", "€100k - €150k"},
		{"dollar range", "$120k - $160k plus equity", "$120k - $160k"},
		{"numeric range with currency code", "We pay 100,000 - 150,000 EUR annually", "100,000 - 150,000 EUR"},
		{"up to", "Compensation up to €150k for the right person", "up to €150k"},
		{"plus suffix", "Base from $140k+ depending on level", "$140k+"},
		{"nothing", "Great opportunity in Berlin", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Salary(tt.text))
		})
	}
}

func TestSalary_FirstRuleWins(t *testing.T) {
	// both a euro range and an "up to" amount present; the range rule is
	// earlier in the priority order
	got := Salary("€90k - €120k, or up to €150k with equity")
	assert.Equal(t, "€90k - €120k", got)
}

func TestSalary_SpecExamples(t *testing.T) {
	assert.Contains(t, Salary("Salary: €100k - €150k per year"), "€100k")
	assert.Empty(t, Salary("Great opportunity in Berlin"))
}
