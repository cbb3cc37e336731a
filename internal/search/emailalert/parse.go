package emailalert

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobtrack/internal/domain"
)

var reJobID = regexp.MustCompile(`/jobs/view/(\d+)`)

// ParseAlertHTML pulls individual job links out of an alert email body.
// Multiple anchors pointing at the same job id (logo, title, "view job")
// are merged, keeping the longest anchor text as the title. The email
// subject becomes the description so the scorer has something to chew on.
func ParseAlertHTML(htmlBody, subject string) []domain.RawResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return nil
	}

	titles := map[string]string{} // job id -> best anchor text
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		low := strings.ToLower(href)
		if !strings.Contains(low, "linkedin.com") {
			return
		}
		m := reJobID.FindStringSubmatch(unwrapRedirect(href))
		if m == nil {
			return
		}
		id := m[1]

		if _, seen := titles[id]; !seen {
			order = append(order, id)
		}

		text := strings.Join(strings.Fields(a.Text()), " ")
		if looksLikeJunkTitle(text) {
			text = ""
		}
		if len(text) > len(titles[id]) {
			titles[id] = text
		}
	})

	out := make([]domain.RawResult, 0, len(order))
	for _, id := range order {
		out = append(out, domain.RawResult{
			Title:       titles[id],
			URL:         "https://www.linkedin.com/jobs/view/" + id,
			Description: subject,
		})
	}
	return out
}

// Alert emails route clicks through a tracking URL with the real target in a
// query parameter.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	for _, key := range []string{"url", "originalReferer", "session_redirect"} {
		if v := u.Query().Get(key); strings.Contains(v, "/jobs/view/") {
			return v
		}
	}
	return href
}

func looksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return l == "" || strings.Contains(l, "view job") || strings.Contains(l, "see all") ||
		strings.Contains(l, "apply")
}
