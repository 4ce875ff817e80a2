package mailscan

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/config"
	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/events"
	"hirepath-engine/internal/store"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	"github.com/rs/zerolog"
)

// Scanner polls an IMAP mailbox and turns messages from companies the user
// is tracking into communication log entries on the matching application.
// Everything here is best-effort: a failed scan logs and waits for the next
// tick.
type Scanner struct {
	apps     *apps.Repo
	store    store.DocStore
	hub      *events.Hub
	log      zerolog.Logger
	password func() (string, error)
}

// state survives restarts so the same message is never imported twice.
type state struct {
	LastUID uint32 `json:"last_uid"`
}

func New(repo *apps.Repo, ds store.DocStore, hub *events.Hub, log zerolog.Logger, password func() (string, error)) *Scanner {
	return &Scanner{
		apps:     repo,
		store:    ds,
		hub:      hub,
		log:      log.With().Str("component", "mailscan").Logger(),
		password: password,
	}
}

// RunOnce scans new messages and appends matching communications.
// Returns the number of entries added.
func (s *Scanner) RunOnce(ctx context.Context, cfg config.Config) (int, error) {
	ms := cfg.MailScan
	if !ms.Enabled {
		return 0, nil
	}

	pw, err := s.password()
	if err != nil {
		return 0, fmt.Errorf("imap password: %w", err)
	}

	st, err := s.loadState(ctx)
	if err != nil {
		return 0, err
	}

	msgs, lastUID, err := fetchNew(ctx, ms, pw, st.LastUID)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, m := range msgs {
		if len(ms.SubjectAny) > 0 && !subjectMatches(m.Subject, ms.SubjectAny) {
			continue
		}
		appID, ok := s.matchApplication(m)
		if !ok {
			continue
		}
		err := s.apps.AddCommunication(ctx, appID, apps.CommInput{
			Date:    m.Date.Format("2006-01-02"),
			Type:    domain.CommEmail,
			Content: fmt.Sprintf("From %s: %s", m.From, m.Subject),
		})
		if err != nil {
			s.log.Error().Err(err).Str("app_id", appID).Msg("append imported communication")
			continue
		}
		added++
	}

	if lastUID > st.LastUID {
		st.LastUID = lastUID
		if err := s.saveState(ctx, st); err != nil {
			return added, err
		}
	}

	if added > 0 {
		s.hub.Publish(events.MakeEvent("", events.MailScanFinished, map[string]any{"added": added}))
	}
	s.log.Info().Int("messages", len(msgs)).Int("added", added).Msg("mail scan done")
	return added, nil
}

// matchApplication looks for a tracked company name in the sender or the
// subject. First match wins; company names shorter than three characters
// are skipped to avoid pairing everything with "GE"-style names.
func (s *Scanner) matchApplication(m message) (string, bool) {
	haystack := strings.ToLower(m.From + " " + m.Subject)
	for _, app := range s.apps.List() {
		company := strings.ToLower(strings.TrimSpace(app.Company))
		if len(company) < 3 {
			continue
		}
		if strings.Contains(haystack, company) {
			return app.ID, true
		}
	}
	return "", false
}

func subjectMatches(subject string, any []string) bool {
	low := strings.ToLower(subject)
	for _, term := range any {
		if strings.Contains(low, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

func (s *Scanner) loadState(ctx context.Context) (state, error) {
	var st state
	raw, err := s.store.Get(ctx, store.KeyMailScan)
	if err != nil {
		return st, fmt.Errorf("load mailscan state: %w", err)
	}
	if raw == nil {
		return st, nil
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return st, fmt.Errorf("decode mailscan state: %w", err)
	}
	return st, nil
}

func (s *Scanner) saveState(ctx context.Context, st state) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode mailscan state: %w", err)
	}
	return s.store.Put(ctx, store.KeyMailScan, b)
}

type message struct {
	UID     uint32
	From    string
	Subject string
	Date    time.Time
}

// fetchNew pulls envelopes for messages newer than sinceUID, capped at
// cfg.MaxMessages and a three-month age cutoff.
func fetchNew(ctx context.Context, cfg config.MailScanConfig, password string, sinceUID uint32) ([]message, uint32, error) {
	addr := fmt.Sprintf("%s:%d", cfg.IMAPHost, cfg.IMAPPort)

	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: cfg.IMAPHost},
	})
	if err != nil {
		return nil, sinceUID, fmt.Errorf("imap dial tls: %w", err)
	}
	defer func() { _ = c.Close() }()

	// Best-effort close on context cancel; the done channel lets the
	// watcher exit once the call returns on its own.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()

	if err := c.Login(cfg.Username, password).Wait(); err != nil {
		return nil, sinceUID, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select(cfg.Mailbox, &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return nil, sinceUID, fmt.Errorf("imap select %s: %w", cfg.Mailbox, err)
	}

	criteria := &imap.SearchCriteria{
		Since: time.Now().AddDate(0, -3, 0),
	}
	if sinceUID > 0 {
		var set imap.UIDSet
		set.AddRange(imap.UID(sinceUID+1), 0) // 0 means "*"
		criteria.UID = []imap.UIDSet{set}
	}

	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, sinceUID, fmt.Errorf("imap uid search: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, sinceUID, nil
	}

	max := cfg.MaxMessages
	if max <= 0 {
		max = 50
	}
	if len(uids) > max {
		uids = uids[len(uids)-max:] // keep the newest
	}

	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:          true,
		Envelope:     true,
		InternalDate: true,
	})
	defer func() { _ = fetchCmd.Close() }()

	var out []message
	last := sinceUID
	for {
		select {
		case <-ctx.Done():
			return nil, sinceUID, ctx.Err()
		default:
		}

		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return nil, sinceUID, fmt.Errorf("imap fetch collect: %w", err)
		}

		m := message{UID: uint32(buf.UID), Date: buf.InternalDate}
		if buf.Envelope != nil {
			m.Subject = buf.Envelope.Subject
			m.From = formatFrom(buf.Envelope.From)
			if !buf.Envelope.Date.IsZero() {
				m.Date = buf.Envelope.Date
			}
		}
		if m.UID > last {
			last = m.UID
		}
		out = append(out, m)
	}

	return out, last, nil
}

func formatFrom(addrs []imap.Address) string {
	if len(addrs) == 0 {
		return ""
	}
	a := addrs[0]
	email := a.Mailbox + "@" + a.Host
	if a.Name != "" {
		return fmt.Sprintf("%s <%s>", a.Name, email)
	}
	return email
}
