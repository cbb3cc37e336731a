package config

import (
	"errors"
	"fmt"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if len(cfg.Search.Queries) == 0 && !cfg.Email.Enabled {
		errs = append(errs, "search.queries is empty and email is disabled: nothing to fetch")
	}
	for i, q := range cfg.Search.Queries {
		if strings.TrimSpace(q) == "" {
			errs = append(errs, fmt.Sprintf("search.queries[%d] is blank", i))
		}
	}
	if cfg.Search.MaxResultsPerQuery <= 0 {
		errs = append(errs, "search.max_results_per_query must be > 0")
	}
	if cfg.Search.DelayMillis <= 0 {
		errs = append(errs, "search.delay_millis must be > 0 (the search API rate limit is real)")
	}

	if len(cfg.Scoring.Weights) == 0 {
		errs = append(errs, "scoring.weights must have at least 1 keyword")
	}
	for kw := range cfg.Scoring.Weights {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, "scoring.weights contains a blank keyword")
		}
	}
	if cfg.Scoring.MinScore < 1 {
		errs = append(errs, "scoring.min_score must be >= 1 (hard-rejected postings score exactly 0)")
	}
	for i, p := range cfg.Scoring.RejectPhrases {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Sprintf("scoring.reject_phrases[%d] is blank", i))
		}
	}

	if cfg.Limits.DescriptionChars <= 0 {
		errs = append(errs, "limits.description_chars must be > 0")
	}
	if cfg.Limits.TopPerRun <= 0 {
		errs = append(errs, "limits.top_per_run must be > 0")
	}

	if cfg.Email.Enabled {
		if strings.TrimSpace(cfg.Email.IMAPHost) == "" {
			errs = append(errs, "email.imap_host is required when email.enabled=true")
		}
		if cfg.Email.IMAPPort == 0 {
			errs = append(errs, "email.imap_port is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.Username) == "" {
			errs = append(errs, "email.username is required when email.enabled=true")
		}
		if strings.TrimSpace(cfg.Email.Mailbox) == "" {
			errs = append(errs, "email.mailbox is required when email.enabled=true")
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}
