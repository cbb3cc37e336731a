package domain

// StatusNew marks a record as newly discovered. Downstream consumers
// (the sheet, mostly) may flip it to applied/rejected/etc; this core never does.
const StatusNew = "new"

// RawResult is a single unprocessed hit from a search source.
// No identity beyond the URL; never persisted.
type RawResult struct {
	Title       string
	URL         string
	Description string
}

// JobRecord is a scored, enriched posting that passed admission.
// Title and URL are always non-empty; that is checked at parse time.
type JobRecord struct {
	Title       string
	URL         string
	Description string // truncated for the sheet
	Salary      string // best-effort extracted substring, or ""
	Location    string // "Remote", a region, comma-joined, or "Unknown"
	Score       int    // sum of matched keyword weights, may be negative
	DateFound   string // UTC calendar date, YYYY-MM-DD
	Source      string // coarse job-board label from the URL, or "Web"
	Status      string
}
