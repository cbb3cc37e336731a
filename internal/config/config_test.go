package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  data_dir: /tmp/jt
search:
  queries:
    - '"senior ml engineer" remote'
  freshness: pw
scoring:
  weights:
    senior: 10
    remote: 8
  min_score: 12
limits:
  description_chars: 200
export:
  sheet_id: abc123
  account: me@example.com
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaultsForMissingFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/jt", cfg.App.DataDir)
	assert.Equal(t, []string{`"senior ml engineer" remote`}, cfg.Search.Queries)
	assert.Equal(t, "pw", cfg.Search.Freshness)
	assert.Equal(t, 12, cfg.Scoring.MinScore)
	assert.Equal(t, 200, cfg.Limits.DescriptionChars)

	// not present in the file, filled from defaults
	assert.Equal(t, 10, cfg.Search.MaxResultsPerQuery)
	assert.Equal(t, 1100, cfg.Search.DelayMillis)
	assert.Equal(t, 50, cfg.Limits.TopPerRun)
	assert.Equal(t, "Jobs", cfg.Export.Tab)
	assert.Equal(t, "INBOX", cfg.Email.Mailbox)
}

func TestLoad_MinScoreDefaultsWhenOmitted(t *testing.T) {
	// min_score 0 would let hard-rejected postings (score exactly 0) through
	cfg, err := Load(writeConfig(t, `
search:
  queries:
    - '"senior ml engineer" remote'
scoring:
  weights:
    senior: 10
`))
	require.NoError(t, err)
	assert.Equal(t, Default().Scoring.MinScore, cfg.Scoring.MinScore)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SHEET_ID", "env-sheet")
	t.Setenv("GOG_ACCOUNT", "env@example.com")
	t.Setenv("FRESHNESS", "pd")
	t.Setenv("MAX_RESULTS_PER_QUERY", "3")
	t.Setenv("JOBTRACK_DATA_DIR", "/tmp/override")

	cfg, err := Load(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "env-sheet", cfg.Export.SheetID)
	assert.Equal(t, "env@example.com", cfg.Export.Account)
	assert.Equal(t, "pd", cfg.Search.Freshness)
	assert.Equal(t, 3, cfg.Search.MaxResultsPerQuery)
	assert.Equal(t, "/tmp/override", cfg.App.DataDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate_DefaultsPass(t *testing.T) {
	assert.NoError(t, Validate(Default()))
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	var cfg Config // everything zero
	cfg.Email.Enabled = true

	err := Validate(cfg)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "scoring.weights")
	assert.Contains(t, msg, "scoring.min_score")
	assert.Contains(t, msg, "search.delay_millis")
	assert.Contains(t, msg, "limits.top_per_run")
	assert.Contains(t, msg, "email.imap_host")
	assert.Contains(t, msg, "email.username")
}

func TestValidate_NegativeMinScore(t *testing.T) {
	cfg := Default()
	cfg.Scoring.MinScore = -10

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scoring.min_score")
}

func TestValidate_NoSourcesConfigured(t *testing.T) {
	cfg := Default()
	cfg.Search.Queries = nil
	cfg.Email.Enabled = false

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to fetch")
}

func TestEnsureUserConfig_WritesDefaultsOnce(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Scoring.MinScore, cfg.Scoring.MinScore)
	assert.NotEmpty(t, cfg.Search.Queries)

	// a hand-edited file survives the second call
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	_, err = EnsureUserConfig(dir)
	require.NoError(t, err)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scoring.MinScore)
}
