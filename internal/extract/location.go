package extract

import "strings"

// LocationUnknown is returned when nothing in the text places the job.
const LocationUnknown = "Unknown"

// Scanned in order; the first hit wins and scanning stops.
var regions = []string{
	"eu", "europe", "uk", "germany", "netherlands", "poland",
	"portugal", "spain", "france", "amsterdam", "berlin",
	"warsaw", "london", "lisbon", "madrid",
}

// Location infers a coarse location label from free text: a "Remote" flag,
// optionally joined with the first matching region name, or "Unknown".
func Location(text string) string {
	low := strings.ToLower(text)

	var labels []string
	if strings.Contains(low, "fully remote") || strings.Contains(low, "100% remote") ||
		strings.Contains(low, "remote") {
		labels = append(labels, "Remote")
	}

	for _, region := range regions {
		if strings.Contains(low, region) {
			labels = append(labels, titleCase(region))
			break
		}
	}

	if len(labels) == 0 {
		return LocationUnknown
	}
	return strings.Join(labels, ", ")
}

// strings.Title is deprecated and these labels are plain ASCII words.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
