package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"time"

	"jobtrack/internal/domain"
)

// GogWriter pushes rows to a Google Sheet through the gog CLI.
type GogWriter struct {
	Account    string
	OwnerEmail string
	SheetID    string
	Tab        string
	Timeout    time.Duration
}

func (w *GogWriter) timeout() time.Duration {
	if w.Timeout > 0 {
		return w.Timeout
	}
	return 30 * time.Second
}

// EnsureSheet creates a spreadsheet (shared with the owner, header written)
// unless a sheet id is already set, and returns the id.
func (w *GogWriter) EnsureSheet(ctx context.Context, name string) (string, error) {
	if w.SheetID != "" {
		return w.SheetID, nil
	}

	log.Printf("[sheets] creating new spreadsheet %q", name)
	out, err := w.runGog(ctx,
		"spreadsheet", "create",
		"--account="+w.Account,
		"--title="+name,
	)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) == 0 {
		return "", errors.New("create sheet: gog printed no id")
	}
	// gog prints the sheet id last on stdout
	w.SheetID = fields[len(fields)-1]

	if w.OwnerEmail != "" {
		if _, err := w.runGog(ctx,
			"spreadsheet", "share",
			"--account="+w.Account,
			"--spreadsheet-id="+w.SheetID,
			"--email="+w.OwnerEmail,
			"--role=writer",
		); err != nil {
			log.Printf("[sheets] share with %s failed: %v", w.OwnerEmail, err)
		}
	}

	if err := w.writeHeader(ctx); err != nil {
		log.Printf("[sheets] header write failed: %v", err)
	}
	return w.SheetID, nil
}

func (w *GogWriter) writeHeader(ctx context.Context) error {
	data, err := json.Marshal(map[string][][]string{"values": {Header}})
	if err != nil {
		return err
	}
	_, err = w.runGog(ctx,
		"spreadsheet", "update",
		"--account="+w.Account,
		"--spreadsheet-id="+w.SheetID,
		"--range=Sheet1!A1:J1",
		"--value-input-option=USER_ENTERED",
		"--data", string(data),
	)
	return err
}

// Append writes the records below the current last row. On failure it
// reports zero rows and the error; the caller decides whether that kills
// the run.
func (w *GogWriter) Append(ctx context.Context, records []domain.JobRecord) (int, error) {
	if len(records) == 0 {
		log.Printf("[sheets] no new rows to append")
		return 0, nil
	}
	if w.SheetID == "" {
		return 0, errors.New("sheets: sheet id not set, call EnsureSheet first")
	}

	data, err := json.Marshal(map[string][][]string{"values": Rows(records)})
	if err != nil {
		return 0, fmt.Errorf("sheets: marshal rows: %w", err)
	}

	tab := w.Tab
	if tab == "" {
		tab = "Jobs"
	}
	if _, err := w.runGog(ctx,
		"spreadsheet", "append",
		"--account="+w.Account,
		"--spreadsheet-id="+w.SheetID,
		fmt.Sprintf("--range=%s!A:J", tab),
		"--value-input-option=USER_ENTERED",
		"--data", string(data),
	); err != nil {
		return 0, fmt.Errorf("sheets: append: %w", err)
	}

	log.Printf("[sheets] appended %d rows", len(records))
	return len(records), nil
}

func (w *GogWriter) URL() string {
	if w.SheetID == "" {
		return ""
	}
	return "https://docs.google.com/spreadsheets/d/" + w.SheetID
}

func (w *GogWriter) runGog(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout())
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "gog", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("gog %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}
