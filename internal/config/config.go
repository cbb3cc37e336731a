package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Search struct {
		Queries            []string `yaml:"queries"`
		MaxResultsPerQuery int      `yaml:"max_results_per_query"`
		Freshness          string   `yaml:"freshness"` // Brave freshness hint: pd/pw/pm/py
		DelayMillis        int      `yaml:"delay_millis"`
	} `yaml:"search"`

	Scoring struct {
		// Weights maps a lower-cased keyword to its contribution. Negative
		// weights are penalties (junior, intern, ...).
		Weights map[string]int `yaml:"weights"`
		// RejectPhrases zero the score unconditionally when present.
		RejectPhrases []string `yaml:"reject_phrases"`
		MinScore      int      `yaml:"min_score"`
	} `yaml:"scoring"`

	Filters struct {
		// Non-job detection blocklists. Empty means the built-in tables.
		NonJobURLParts   []string `yaml:"non_job_url_parts"`
		NonJobTitleParts []string `yaml:"non_job_title_parts"`
	} `yaml:"filters"`

	Limits struct {
		DescriptionChars int `yaml:"description_chars"`
		TopPerRun        int `yaml:"top_per_run"`
	} `yaml:"limits"`

	Export struct {
		SheetID    string `yaml:"sheet_id"`
		Account    string `yaml:"account"`
		OwnerEmail string `yaml:"owner_email"`
		Tab        string `yaml:"tab"`
		// ArchiveDB is a local SQLite mirror of everything exported.
		// Empty disables it.
		ArchiveDB string `yaml:"archive_db"`
	} `yaml:"export"`

	Email struct {
		Enabled     bool   `yaml:"enabled"`
		IMAPHost    string `yaml:"imap_host"`
		IMAPPort    int    `yaml:"imap_port"`
		Username    string `yaml:"username"`
		Mailbox     string `yaml:"mailbox"`
		MaxMessages int    `yaml:"max_messages"`
	} `yaml:"email"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

// Env names kept compatible with the old tracker scripts.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHEET_ID"); v != "" {
		c.Export.SheetID = v
	}
	if v := os.Getenv("GOG_ACCOUNT"); v != "" {
		c.Export.Account = v
	}
	if v := os.Getenv("FRESHNESS"); v != "" {
		c.Search.Freshness = v
	}
	if v := os.Getenv("MAX_RESULTS_PER_QUERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Search.MaxResultsPerQuery = n
		}
	}
	if v := os.Getenv("JOBTRACK_DATA_DIR"); v != "" {
		c.App.DataDir = v
	}
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.App.DataDir == "" {
		c.App.DataDir = d.App.DataDir
	}
	if c.Search.MaxResultsPerQuery == 0 {
		c.Search.MaxResultsPerQuery = d.Search.MaxResultsPerQuery
	}
	if c.Search.DelayMillis == 0 {
		c.Search.DelayMillis = d.Search.DelayMillis
	}
	if c.Scoring.MinScore == 0 {
		// a 0 threshold would admit hard-rejected postings (they score
		// exactly 0), so 0 is never a usable value
		c.Scoring.MinScore = d.Scoring.MinScore
	}
	if c.Limits.DescriptionChars == 0 {
		c.Limits.DescriptionChars = d.Limits.DescriptionChars
	}
	if c.Limits.TopPerRun == 0 {
		c.Limits.TopPerRun = d.Limits.TopPerRun
	}
	if c.Export.Tab == "" {
		c.Export.Tab = d.Export.Tab
	}
	if c.Email.Mailbox == "" {
		c.Email.Mailbox = d.Email.Mailbox
	}
	if c.Email.MaxMessages == 0 {
		c.Email.MaxMessages = d.Email.MaxMessages
	}
}

// Default is the configuration written to disk on first run.
// The tables target senior AI/ML roles, EU/remote friendly.
func Default() Config {
	var cfg Config

	cfg.App.DataDir = "data"

	cfg.Search.Queries = []string{
		`site:remoteok.com "machine learning" OR "ML engineer" OR "AI engineer" senior`,
		`site:remoteok.com "backend" "AI" OR "LLM" OR "RAG" senior engineer`,
		`site:workatastartup.com "machine learning" OR "AI" senior engineer remote`,
		`"senior machine learning engineer" OR "senior ML engineer" remote EU hiring`,
		`"senior AI engineer" "LLM" OR "RAG" OR "GenAI" remote Europe "apply" OR "job" OR "position"`,
		`"ML platform engineer" OR "MLOps engineer" senior remote Europe hiring`,
		`"backend engineer" "machine learning" OR "LLM" OR "RAG" senior remote Europe contract`,
		`site:euremotejobs.com OR site:remote.io "machine learning" OR "AI engineer" senior`,
	}
	cfg.Search.MaxResultsPerQuery = 10
	cfg.Search.Freshness = "pm"
	cfg.Search.DelayMillis = 1100 // Brave free tier is 1 req/sec

	cfg.Scoring.Weights = map[string]int{
		// seniority
		"senior": 10, "principal": 15, "staff": 12, "lead": 10, "head of": 15,
		// role
		"machine learning": 15, "ml engineer": 20, "ai engineer": 15,
		"llm": 12, "rag": 12, "generative ai": 12, "nlp": 10,
		"mlops": 12, "ml platform": 15, "model serving": 10,
		// salary
		"150k": 20, "€150": 20, "120k": 15, "€120": 15,
		"100k": 10, "€100": 10, "$150": 20, "$120": 15,
		// location / type
		"remote": 8, "eu": 5, "europe": 5, "contract": 5,
		// backend crossover
		"java": 8, "spring": 5, "aws": 5, "backend": 5, "api": 3,
		// penalties
		"intern": -30, "junior": -30, "entry level": -25,
		"data scientist": -5, "research": -5,
	}
	cfg.Scoring.RejectPhrases = []string{
		"on-site only", "onsite only", "on site only",
		"hybrid (", "hybrid role", "hybrid working", "days in office",
		"must be located in the us", "us only", "usa only", "us-based only",
		"united states only", "within the united states",
		"must be based in", "relocation required",
	}
	cfg.Scoring.MinScore = 5

	cfg.Limits.DescriptionChars = 300
	cfg.Limits.TopPerRun = 50

	cfg.Export.Tab = "Jobs"

	cfg.Email.Mailbox = "INBOX"
	cfg.Email.IMAPPort = 993
	cfg.Email.MaxMessages = 50

	return cfg
}
