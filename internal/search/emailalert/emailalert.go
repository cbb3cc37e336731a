// Package emailalert turns job-alert emails (LinkedIn-style digests) into
// raw results, as an optional second source next to the web search API.
package emailalert

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net/mail"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"jobtrack/internal/domain"
)

type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Mailbox     string
	MaxMessages int
}

type Source struct {
	cfg Config
}

func New(cfg Config) (*Source, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("emailalert: host, username and password are required")
	}
	if cfg.Port == 0 {
		cfg.Port = 993
	}
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 50
	}
	return &Source{cfg: cfg}, nil
}

func (s *Source) Name() string { return "email" }

// Fetch pulls unseen alert emails, parses job links out of their HTML bodies
// and marks the processed messages as seen.
func (s *Source) Fetch(ctx context.Context) ([]domain.RawResult, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: s.cfg.Host},
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}
	defer func() { _ = c.Close() }()

	// Best-effort close on context cancel.
	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(s.cfg.Username, s.cfg.Password).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}
	defer func() {
		if err := c.Logout().Wait(); err != nil {
			log.Printf("[email] imap logout: %v", err)
		}
	}()

	if _, err := c.Select(s.cfg.Mailbox, &imap.SelectOptions{ReadOnly: false}).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", s.cfg.Mailbox, err)
	}

	searchData, err := c.UIDSearch(&imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
	}, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap uid search unseen: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}
	// newest first
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}
	if len(uids) > s.cfg.MaxMessages {
		uids = uids[:s.cfg.MaxMessages]
	}

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var results []domain.RawResult
	var processed []imap.UID

	for {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return results, fmt.Errorf("imap fetch collect: %w", err)
		}

		subject := ""
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
		}

		raw := buf.FindBodySection(bodyAll)
		if len(raw) == 0 {
			continue
		}

		htmlBody := htmlPartOf(raw)
		if htmlBody == "" {
			continue
		}

		jobs := ParseAlertHTML(htmlBody, subject)
		if len(jobs) > 0 {
			log.Printf("[email] %d job links in %q", len(jobs), subject)
			results = append(results, jobs...)
		}
		processed = append(processed, buf.UID)
	}

	if err := fetchCmd.Close(); err != nil {
		return results, fmt.Errorf("imap fetch close: %w", err)
	}

	if len(processed) > 0 {
		cmd := c.Store(imap.UIDSetNum(processed...), &imap.StoreFlags{
			Op:     imap.StoreFlagsAdd,
			Silent: true,
			Flags:  []imap.Flag{imap.FlagSeen},
		}, nil)
		if err := cmd.Close(); err != nil {
			log.Printf("[email] mark seen: %v", err)
		}
	}

	return results, nil
}

// htmlPartOf digs the text/html part out of a raw RFC822 message.
func htmlPartOf(raw []byte) string {
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	body, _ := io.ReadAll(io.LimitReader(msg.Body, 6<<20))
	return extractHTMLPart(msg.Header, body)
}
