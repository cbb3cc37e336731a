package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"jobtrack/internal/domain"
)

const DefaultBraveEndpoint = "https://api.search.brave.com/res/v1/web/search"

type BraveConfig struct {
	APIKey             string
	Endpoint           string // DefaultBraveEndpoint when empty
	Queries            []string
	MaxResultsPerQuery int
	Freshness          string        // e.g. "pm" = past month
	Delay              time.Duration // minimum gap between consecutive queries
}

// Brave runs the configured queries against the Brave Search API, strictly
// one at a time, paced by a fixed-interval limiter.
type Brave struct {
	cfg     BraveConfig
	hc      *http.Client
	limiter *rate.Limiter
}

func NewBrave(cfg BraveConfig) (*Brave, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("brave: API key not set (BRAVE_API_KEY or keyring)")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultBraveEndpoint
	}
	if cfg.MaxResultsPerQuery <= 0 {
		cfg.MaxResultsPerQuery = 10
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 1100 * time.Millisecond
	}
	return &Brave{
		cfg: cfg,
		hc:  &http.Client{Timeout: 15 * time.Second},
		// burst 1: first query goes immediately, every later one waits out
		// the full interval
		limiter: rate.NewLimiter(rate.Every(cfg.Delay), 1),
	}, nil
}

func (b *Brave) Name() string { return "brave" }

// Fetch runs every query in order and concatenates the results. A failing
// query degrades to zero results for that query; the run continues.
func (b *Brave) Fetch(ctx context.Context) ([]domain.RawResult, error) {
	var all []domain.RawResult
	for i, query := range b.cfg.Queries {
		if err := b.limiter.Wait(ctx); err != nil {
			return all, err
		}

		log.Printf("[brave] query %d/%d", i+1, len(b.cfg.Queries))
		results, err := b.search(ctx, query)
		if err != nil {
			log.Printf("[brave] query failed: %v (q=%.40s)", err, query)
			continue
		}
		log.Printf("[brave] %d results for %.60s", len(results), query)
		all = append(all, results...)
	}
	log.Printf("[brave] total raw results: %d", len(all))
	return all, nil
}

// Wire shape of the one response slice we care about.
type braveResponse struct {
	Web struct {
		Results []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

func (b *Brave) search(ctx context.Context, query string) ([]domain.RawResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(b.cfg.MaxResultsPerQuery))
	params.Set("search_lang", "en")
	params.Set("country", "ALL")
	if b.cfg.Freshness != "" {
		params.Set("freshness", b.cfg.Freshness)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.cfg.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.cfg.APIKey)

	res, err := b.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave get: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
		return nil, fmt.Errorf("brave status %d", res.StatusCode)
	}

	var body braveResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("brave decode: %w", err)
	}

	out := make([]domain.RawResult, 0, len(body.Web.Results))
	for _, item := range body.Web.Results {
		out = append(out, domain.RawResult{
			Title:       stripMarkup(item.Title),
			URL:         strings.TrimSpace(item.URL),
			Description: stripMarkup(item.Description),
		})
	}
	return out, nil
}

// Brave embeds <strong> highlighting in titles and snippets.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
