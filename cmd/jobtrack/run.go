package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"jobtrack/internal/config"
	"jobtrack/internal/dedup"
	"jobtrack/internal/export"
	"jobtrack/internal/extract"
	"jobtrack/internal/pipeline"
	"jobtrack/internal/rank"
	"jobtrack/internal/search"
	"jobtrack/internal/search/emailalert"
	"jobtrack/internal/secrets"
)

var runFlags struct {
	configPath string
	dryRun     bool
	sheetID    string
	top        int
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one full search/score/dedupe/export pass",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	runCmd.Flags().StringVar(&runFlags.configPath, "config", "", "config file (default <data dir>/config.yml, created on first run)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "print results without writing to the sheet")
	runCmd.Flags().StringVar(&runFlags.sheetID, "sheet-id", "", "existing Google Sheet ID to append to")
	runCmd.Flags().IntVar(&runFlags.top, "top", 0, "maximum rows to write this run (default from config)")
	rootCmd.AddCommand(runCmd)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if runFlags.sheetID != "" {
		cfg.Export.SheetID = runFlags.sheetID
	}
	top := cfg.Limits.TopPerRun
	if runFlags.top > 0 {
		top = runFlags.top
	}

	sources, err := buildSources(cfg)
	if err != nil {
		return err
	}

	deduper, err := dedup.New(cfg.App.DataDir)
	if err != nil {
		return err
	}
	defer deduper.Close()

	sheet := &export.GogWriter{
		Account:    cfg.Export.Account,
		OwnerEmail: cfg.Export.OwnerEmail,
		SheetID:    cfg.Export.SheetID,
		Tab:        cfg.Export.Tab,
	}
	exporter, cleanup, err := buildExporter(ctx, cfg, sheet)
	if err != nil {
		return err
	}
	defer cleanup()

	nonJob := extract.DefaultNonJobFilter()
	if len(cfg.Filters.NonJobURLParts) > 0 || len(cfg.Filters.NonJobTitleParts) > 0 {
		nonJob = extract.NonJobFilter{
			URLParts:   cfg.Filters.NonJobURLParts,
			TitleParts: cfg.Filters.NonJobTitleParts,
		}
	}

	p := &pipeline.Pipeline{
		Sources:  sources,
		Scorer:   rank.NewKeywordScorer(cfg.Scoring.Weights, cfg.Scoring.RejectPhrases),
		Deduper:  deduper,
		Exporter: exporter,
		Policy: pipeline.Policy{
			MinScore:         cfg.Scoring.MinScore,
			DescriptionChars: cfg.Limits.DescriptionChars,
			NonJob:           nonJob,
		},
	}

	jobs, err := p.Run(ctx, pipeline.RunOptions{DryRun: runFlags.dryRun, Top: top})
	if err != nil {
		return err
	}

	printSummary(os.Stdout, jobs)
	if !runFlags.dryRun && sheet.URL() != "" {
		fmt.Printf("Sheet: %s\n", sheet.URL())
	}
	return nil
}

func loadConfig() (config.Config, error) {
	path := runFlags.configPath
	if path == "" {
		dataDir := os.Getenv("JOBTRACK_DATA_DIR")
		if dataDir == "" {
			dataDir = "data"
		}
		var err error
		path, err = config.EnsureUserConfig(dataDir)
		if err != nil {
			return config.Config{}, fmt.Errorf("config bootstrap: %w", err)
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config load (%s): %w", path, err)
	}
	return cfg, nil
}

func buildSources(cfg config.Config) ([]search.Source, error) {
	var sources []search.Source

	if len(cfg.Search.Queries) > 0 {
		apiKey, err := secrets.BraveAPIKey()
		if err != nil {
			return nil, err
		}
		brave, err := search.NewBrave(search.BraveConfig{
			APIKey:             apiKey,
			Queries:            cfg.Search.Queries,
			MaxResultsPerQuery: cfg.Search.MaxResultsPerQuery,
			Freshness:          cfg.Search.Freshness,
			Delay:              time.Duration(cfg.Search.DelayMillis) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		sources = append(sources, brave)
	}

	if cfg.Email.Enabled {
		password, err := secrets.IMAPPassword(cfg.Email.Username, cfg.Email.IMAPHost)
		if err != nil {
			return nil, err
		}
		alerts, err := emailalert.New(emailalert.Config{
			Host:        cfg.Email.IMAPHost,
			Port:        cfg.Email.IMAPPort,
			Username:    cfg.Email.Username,
			Password:    password,
			Mailbox:     cfg.Email.Mailbox,
			MaxMessages: cfg.Email.MaxMessages,
		})
		if err != nil {
			return nil, err
		}
		sources = append(sources, alerts)
	}

	return sources, nil
}

// buildExporter resolves the sheet id (flag > env/config > saved file >
// create new) and wires the optional SQLite mirror. On dry runs the sheet
// is never touched.
func buildExporter(ctx context.Context, cfg config.Config, sheet *export.GogWriter) (export.Exporter, func(), error) {
	cleanup := func() {}

	if !runFlags.dryRun && sheet.SheetID == "" {
		idFile := filepath.Join(cfg.App.DataDir, "sheet_id.txt")
		if b, err := os.ReadFile(idFile); err == nil && strings.TrimSpace(string(b)) != "" {
			sheet.SheetID = strings.TrimSpace(string(b))
			log.Printf("[sheets] using saved sheet id %s", sheet.SheetID)
		} else {
			id, err := sheet.EnsureSheet(ctx, "Job Search Tracker")
			if err != nil {
				return nil, cleanup, err
			}
			if err := os.WriteFile(idFile, []byte(id+"\n"), 0o644); err != nil {
				log.Printf("[sheets] cannot save sheet id: %v", err)
			}
		}
	}

	if cfg.Export.ArchiveDB == "" {
		return sheet, cleanup, nil
	}

	archive, err := export.OpenSQLiteArchive(cfg.Export.ArchiveDB)
	if err != nil {
		log.Printf("[export] archive disabled: %v", err)
		return sheet, cleanup, nil
	}
	cleanup = func() { _ = archive.Close() }
	return export.Fanout{Primary: sheet, Mirrors: []export.Exporter{archive}}, cleanup, nil
}
