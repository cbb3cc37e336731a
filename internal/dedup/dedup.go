package dedup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"

	"jobtrack/internal/domain"
)

const stateFileName = "seen_urls.json"

// Deduplicator tracks seen job URLs so each posting is reported only once
// across runs. State is a sorted JSON array of URL strings, rewritten in
// full after every filtering pass. The set only ever grows.
type Deduplicator struct {
	statePath string
	lock      *flock.Flock
	seen      map[string]struct{}
}

// New loads (or initializes) the seen set under dataDir. An advisory file
// lock is held for the lifetime of the Deduplicator; a second concurrent run
// fails here instead of silently racing on the state file.
func New(dataDir string) (*Deduplicator, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("dedup: create data dir: %w", err)
	}

	lock := flock.New(filepath.Join(dataDir, stateFileName+".lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("dedup: acquire state lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("dedup: another run holds %s", lock.Path())
	}

	d := &Deduplicator{
		statePath: filepath.Join(dataDir, stateFileName),
		lock:      lock,
		seen:      make(map[string]struct{}),
	}
	d.load()
	return d, nil
}

func (d *Deduplicator) Close() error {
	return d.lock.Unlock()
}

// Len reports how many URLs have ever been accepted.
func (d *Deduplicator) Len() int { return len(d.seen) }

// Corrupt or missing state is not fatal: we lose history, not correctness.
func (d *Deduplicator) load() {
	b, err := os.ReadFile(d.statePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[dedup] cannot read %s: %v (starting fresh)", d.statePath, err)
		}
		return
	}

	var urls []string
	if err := json.Unmarshal(b, &urls); err != nil {
		log.Printf("[dedup] cannot parse %s: %v (starting fresh)", d.statePath, err)
		return
	}
	for _, u := range urls {
		d.seen[u] = struct{}{}
	}
	log.Printf("[dedup] loaded %d previously seen URLs", len(d.seen))
}

func (d *Deduplicator) save() error {
	urls := make([]string, 0, len(d.seen))
	for u := range d.seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)

	b, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return fmt.Errorf("dedup: marshal seen set: %w", err)
	}

	tmp := d.statePath + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("dedup: write seen set: %w", err)
	}
	if err := os.Rename(tmp, d.statePath); err != nil {
		return fmt.Errorf("dedup: replace seen set: %w", err)
	}
	return nil
}

// FilterNew returns the records whose URL has not been seen in any prior run
// or earlier in this batch, preserving input order. Records with an empty URL
// are dropped silently. Accepted URLs are persisted before returning; a
// persistence failure is fatal for the run (the next run just re-reports).
func (d *Deduplicator) FilterNew(batch []domain.JobRecord) ([]domain.JobRecord, error) {
	var fresh []domain.JobRecord
	accepted := make(map[string]struct{})

	for _, rec := range batch {
		if rec.URL == "" {
			continue
		}
		if _, dup := d.seen[rec.URL]; dup {
			continue
		}
		if _, dup := accepted[rec.URL]; dup {
			continue
		}
		fresh = append(fresh, rec)
		accepted[rec.URL] = struct{}{}
	}

	log.Printf("[dedup] %d records -> %d new", len(batch), len(fresh))

	if len(accepted) == 0 {
		// nothing accepted, state on disk is already current
		return fresh, nil
	}

	for u := range accepted {
		d.seen[u] = struct{}{}
	}
	if err := d.save(); err != nil {
		return nil, err
	}
	return fresh, nil
}
