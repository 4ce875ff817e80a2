package mailscan

import (
	"context"
	"testing"
	"time"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/config"
	"hirepath-engine/internal/events"
	"hirepath-engine/internal/store"

	"github.com/rs/zerolog"
)

func newScanner(t *testing.T) (*Scanner, *apps.Repo, store.DocStore) {
	t.Helper()
	ds, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo, err := apps.New(context.Background(), ds, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	s := New(repo, ds, events.NewHub(), zerolog.Nop(), func() (string, error) { return "pw", nil })
	return s, repo, ds
}

func TestMatchApplicationByCompany(t *testing.T) {
	s, repo, _ := newScanner(t)
	ctx := context.Background()

	a, err := repo.Add(ctx, apps.AddInput{Company: "Northwind Labs", Position: "Dev"})
	if err != nil {
		t.Fatal(err)
	}

	id, ok := s.matchApplication(message{
		From:    "Recruiting <talent@northwind-labs.io>",
		Subject: "Northwind Labs: interview availability",
	})
	if !ok || id != a.ID {
		t.Fatalf("got (%q, %v), want application %q", id, ok, a.ID)
	}

	if _, ok := s.matchApplication(message{From: "noreply@unrelated.com", Subject: "Weekly digest"}); ok {
		t.Fatal("unrelated mail must not match")
	}
}

func TestMatchApplicationSkipsShortNames(t *testing.T) {
	s, repo, _ := newScanner(t)
	if _, err := repo.Add(context.Background(), apps.AddInput{Company: "GE", Position: "Dev"}); err != nil {
		t.Fatal(err)
	}

	if _, ok := s.matchApplication(message{From: "anyone@general.com", Subject: "generic message"}); ok {
		t.Fatal("two-letter company names must not match everything")
	}
}

func TestSubjectMatches(t *testing.T) {
	if !subjectMatches("Your Interview Schedule", []string{"interview", "offer"}) {
		t.Fatal("case-insensitive term should match")
	}
	if subjectMatches("Weekly newsletter", []string{"interview"}) {
		t.Fatal("non-matching subject should not match")
	}
}

func TestStateRoundTrip(t *testing.T) {
	s, _, _ := newScanner(t)
	ctx := context.Background()

	st, err := s.loadState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.LastUID != 0 {
		t.Fatalf("fresh state: %+v", st)
	}

	if err := s.saveState(ctx, state{LastUID: 4242}); err != nil {
		t.Fatal(err)
	}
	st, err = s.loadState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.LastUID != 4242 {
		t.Fatalf("got %d, want 4242", st.LastUID)
	}
}

func TestRunOnceDisabledIsNoOp(t *testing.T) {
	s, _, _ := newScanner(t)

	var cfg config.Config
	cfg.MailScan.Enabled = false

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	added, err := s.RunOnce(ctx, cfg)
	if err != nil || added != 0 {
		t.Fatalf("disabled scan: added=%d err=%v", added, err)
	}
}
