package extract

import "strings"

type sourceRule struct {
	substr string
	label  string
}

// Checked in priority order against the lower-cased URL.
var sourceRules = []sourceRule{
	{"linkedin.com", "LinkedIn"},
	{"remoteok", "RemoteOK"},
	{"weworkremotely", "WeWorkRemotely"},
	{"indeed.com", "Indeed"},
	{"glassdoor", "Glassdoor"},
	{"ycombinator", "YC Jobs"},
	{"workatastartup", "YC Jobs"},
	{"wellfound.com", "Wellfound"},
	{"angel.co", "Wellfound"},
}

// Source identifies the job board from a URL, falling back to "Web".
func Source(url string) string {
	low := strings.ToLower(url)
	for _, r := range sourceRules {
		if strings.Contains(low, r.substr) {
			return r.label
		}
	}
	return "Web"
}
