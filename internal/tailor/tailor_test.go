package tailor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func okRequest() Request {
	return Request{
		MasterResume:   "# Jane Doe\n\n## Experience\n- Built things",
		JobDescription: "We need a Go engineer.",
		JobTitle:       "Go Engineer",
		Company:        "Acme",
	}
}

func staticKey(k string) Credential {
	return func() (string, error) { return k, nil }
}

func TestTailorRejectsMissingCredentialBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	g := New(Config{APIBase: srv.URL}, staticKey(""), srv.Client())
	_, err := g.Tailor(context.Background(), okRequest())
	if !errors.Is(err, ErrNoCredential) {
		t.Fatalf("got %v, want ErrNoCredential", err)
	}
	if called {
		t.Fatal("no request may leave the process without a credential")
	}

	g = New(Config{APIBase: srv.URL}, func() (string, error) { return "", errors.New("keyring locked") }, srv.Client())
	if _, err := g.Tailor(context.Background(), okRequest()); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("credential lookup failure: got %v, want ErrNoCredential", err)
	}
}

func TestTailorSendsChatCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  # Jane Doe (tailored)\n\nAchieved great things.  "}},
			},
		})
	}))
	defer srv.Close()

	g := New(Config{APIBase: srv.URL, Model: "test-model"}, staticKey("sk-test"), srv.Client())
	res, err := g.Tailor(context.Background(), okRequest())
	if err != nil {
		t.Fatalf("tailor: %v", err)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", gotBody["messages"])
	}

	if res.TailoredResume != "# Jane Doe (tailored)\n\nAchieved great things." {
		t.Errorf("result not trimmed: %q", res.TailoredResume)
	}
	if len(res.Changes) == 0 {
		t.Error("change summary should never be empty on success")
	}
}

func TestTailorPropagatesAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Rate limit reached for model"},
		})
	}))
	defer srv.Close()

	g := New(Config{APIBase: srv.URL}, staticKey("k"), srv.Client())
	_, err := g.Tailor(context.Background(), okRequest())
	if err == nil || err.Error() != "Rate limit reached for model" {
		t.Fatalf("got %v, want the remote message verbatim", err)
	}
}

func TestTailorStatusFallbackWhenNoErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := New(Config{APIBase: srv.URL}, staticKey("k"), srv.Client())
	_, err := g.Tailor(context.Background(), okRequest())
	if err == nil || !strings.Contains(err.Error(), "tailoring API error") {
		t.Fatalf("got %v, want status fallback error", err)
	}
}

func TestTailorEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	g := New(Config{APIBase: srv.URL}, staticKey("k"), srv.Client())
	_, err := g.Tailor(context.Background(), okRequest())
	if err == nil || err.Error() != "no response from model" {
		t.Fatalf("got %v, want no-response error", err)
	}
}

func TestChangeSummaryHeuristics(t *testing.T) {
	base := strings.Repeat("word ", 100)

	got := changeSummary(base, base+strings.Repeat("more ", 30))
	if got[0] != "Expanded descriptions to highlight relevant experience" {
		t.Errorf("expanded case: %v", got)
	}

	got = changeSummary(base, base[:len(base)/2])
	if got[0] != "Condensed resume to focus on key qualifications" {
		t.Errorf("condensed case: %v", got)
	}

	got = changeSummary("built a system", "Achieved 40% latency reduction")
	found := false
	for _, c := range got {
		if c == "Enhanced achievement statements" {
			found = true
		}
	}
	if !found {
		t.Errorf("achievement probe missing: %v", got)
	}

	// The boilerplate entries always trail.
	if got[len(got)-1] != "Adjusted professional summary for this role" {
		t.Errorf("boilerplate tail missing: %v", got)
	}
}
