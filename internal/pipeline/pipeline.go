package pipeline

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"jobtrack/internal/domain"
	"jobtrack/internal/export"
	"jobtrack/internal/extract"
	"jobtrack/internal/rank"
	"jobtrack/internal/search"
)

// Deduper filters a batch against the cross-run seen set.
type Deduper interface {
	FilterNew(batch []domain.JobRecord) ([]domain.JobRecord, error)
}

// Policy bundles the tuning knobs that used to be hard-coded.
type Policy struct {
	MinScore         int
	DescriptionChars int
	NonJob           extract.NonJobFilter
	Now              func() time.Time // defaults to time.Now
}

// Pipeline wires sources, scorer, deduplicator and exporter into one run:
// fetch -> admit -> dedupe -> rank -> truncate -> export.
type Pipeline struct {
	Sources  []search.Source
	Scorer   rank.Scorer
	Deduper  Deduper
	Exporter export.Exporter
	Policy   Policy
}

type RunOptions struct {
	DryRun bool
	Top    int // max records exported per run
}

// Run executes one full pass and returns the final ranked record list.
// A nil error means the run produced a list (possibly empty); only
// dedup-state persistence failure is fatal mid-run.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) ([]domain.JobRecord, error) {
	var raw []domain.RawResult
	for _, src := range p.Sources {
		results, err := src.Fetch(ctx)
		if err != nil {
			log.Printf("[pipeline] source %s failed: %v (continuing with %d results)",
				src.Name(), err, len(results))
		}
		raw = append(raw, results...)
	}
	log.Printf("[pipeline] raw results: %d", len(raw))

	jobs := p.admit(raw)

	fresh, err := p.Deduper.FilterNew(jobs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(fresh, func(i, j int) bool {
		return fresh[i].Score > fresh[j].Score
	})
	if opts.Top > 0 && len(fresh) > opts.Top {
		fresh = fresh[:opts.Top]
	}
	log.Printf("[pipeline] new jobs after deduplication: %d", len(fresh))

	if opts.DryRun {
		log.Printf("[pipeline] dry run, skipping export")
		return fresh, nil
	}

	written, err := p.Exporter.Append(ctx, fresh)
	if err != nil {
		// the run still produced its list; a failed export costs nothing
		// but a re-report on some future sheet
		log.Printf("[pipeline] export failed: %v", err)
	}
	log.Printf("[pipeline] exported %d rows", written)

	return fresh, nil
}

// admit turns raw results into scored records, dropping anything without a
// title or URL, below the score threshold, or caught by non-job detection.
func (p *Pipeline) admit(raw []domain.RawResult) []domain.JobRecord {
	now := p.Policy.Now
	if now == nil {
		now = time.Now
	}
	date := now().UTC().Format("2006-01-02")

	var jobs []domain.JobRecord
	for _, r := range raw {
		title := strings.TrimSpace(r.Title)
		rawURL := strings.TrimSpace(r.URL)
		desc := strings.TrimSpace(r.Description)

		if title == "" || rawURL == "" {
			continue
		}

		score := p.Scorer.Score(r)
		if score < p.Policy.MinScore {
			continue
		}
		if p.Policy.NonJob.IsNonJob(title, rawURL) {
			log.Printf("[pipeline] non-job dropped (score=%d): %.60s", score, title)
			continue
		}

		fullText := title + " " + desc
		jobs = append(jobs, domain.JobRecord{
			Title:       title,
			URL:         rawURL,
			Description: truncate(desc, p.Policy.DescriptionChars),
			Salary:      extract.Salary(fullText),
			Location:    extract.Location(fullText),
			Score:       score,
			DateFound:   date,
			Source:      extract.Source(rawURL),
			Status:      domain.StatusNew,
		})
	}

	log.Printf("[pipeline] admitted %d of %d raw results", len(jobs), len(raw))
	return jobs
}

// truncate caps s at max characters. Descriptions regularly carry currency
// symbols, so the cut must land on a rune boundary, not a byte offset.
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
