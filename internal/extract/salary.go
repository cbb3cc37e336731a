package extract

import "regexp"

// Salary rules are tried in order; the first hit wins. No attempt to find
// the "best" or longest match.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)€\s*\d+[k,]?\s*[-–]\s*€?\s*\d+k?`),                     // €100k - €150k
	regexp.MustCompile(`(?i)\$\s*\d+[k,]?\s*[-–]\s*\$?\s*\d+k?`),                   // $100k - $150k
	regexp.MustCompile(`(?i)\d+[,.]?\d*\s*[-–]\s*\d+[,.]?\d*\s*(?:EUR|USD|GBP|PLN)`), // 100,000 - 150,000 EUR
	regexp.MustCompile(`(?i)up to\s*[€$]\d+k?`),                                    // up to €150k
	regexp.MustCompile(`(?i)[€$]\d+k?\+`),                                          // €100k+
}

// Salary returns the first salary-looking substring verbatim, or "".
func Salary(text string) string {
	for _, re := range salaryPatterns {
		if m := re.FindString(text); m != "" {
			return CleanText(m)
		}
	}
	return ""
}
