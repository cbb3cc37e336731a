package extract

import (
	"net/url"
	"strings"
)

// NonJobFilter drops pages that rank well on keywords but are not actual
// postings: salary calculators, listicles, course platforms, explainer pages.
type NonJobFilter struct {
	URLParts   []string
	TitleParts []string
}

func DefaultNonJobFilter() NonJobFilter {
	return NonJobFilter{
		URLParts: []string{
			"/salaries", "salary-calculator", "/salary/",
			"/blog/", "/articles/", "/guide", "/advice/",
			"coursera.org", "udemy.com", "udacity.com", "/courses",
			"wikipedia.org", "/wiki/",
			"glassdoor.com/reviews", "/interview-questions",
			"upwork.com", "fiverr.com", "freelancer.com",
		},
		TitleParts: []string{
			"how to", "guide to", "complete guide", "ultimate guide",
			" vs ", "top 10", "top 20", "best companies",
			"job description template", "what does a", "interview questions",
			"salary guide", "average salary",
		},
	}
}

// IsNonJob reports whether the pair looks like something other than an
// individual job posting. Any single blocklist hit is enough.
func (f NonJobFilter) IsNonJob(title, rawURL string) bool {
	lowURL := strings.ToLower(rawURL)
	for _, part := range f.URLParts {
		if strings.Contains(lowURL, part) {
			return true
		}
	}

	lowTitle := strings.ToLower(title)
	for _, part := range f.TitleParts {
		if strings.Contains(lowTitle, part) {
			return true
		}
	}

	return isRemoteOKListing(lowURL)
}

// RemoteOK category and tag pages (remoteok.com/remote-ml-jobs and friends)
// outrank the postings themselves; only /remote-jobs/<slug> is an individual
// posting.
func isRemoteOKListing(lowURL string) bool {
	if !strings.Contains(lowURL, "remoteok.com") {
		return false
	}
	u, err := url.Parse(lowURL)
	if err != nil {
		return true
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" || path == "/" {
		return true
	}
	return !strings.HasPrefix(path, "/remote-jobs/")
}
