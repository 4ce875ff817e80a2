package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"hirepath-engine/internal/domain"
)

func testCreds() Credentials {
	return func() (string, string, error) { return "test-id", "test-key", nil }
}

func adzunaPage(results ...map[string]any) []byte {
	b, _ := json.Marshal(map[string]any{"results": results})
	return b
}

func TestAdzunaSearchMapsResults(t *testing.T) {
	var gotQuery atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/jobs/ca/search/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(adzunaPage(
			map[string]any{
				"id":    4000123456,
				"title": "Go Developer",
				"company": map[string]any{
					"display_name": "Northwind",
				},
				"location": map[string]any{
					"display_name": "Toronto, ON",
				},
				"description":   "<p>Build &amp; ship services</p>",
				"redirect_url":  "https://example.com/j/1",
				"created":       "2026-02-01T00:00:00Z",
				"salary_min":    100000,
				"salary_max":    130000,
				"contract_time": "part_time",
			},
			map[string]any{"id": "str-id-2"},
		))
	}))
	defer srv.Close()

	a := NewAdzuna(AdzunaConfig{BaseURL: srv.URL, Country: "ca", Pages: 1}, testCreds())
	jobs, err := a.Search(context.Background(), domain.JobFilters{Search: "golang", Location: "Toronto"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs", len(jobs))
	}

	j := jobs[0]
	if j.ID != "4000123456" {
		t.Errorf("numeric id mangled: %q", j.ID)
	}
	if j.Description != "Build & ship services" {
		t.Errorf("html not flattened: %q", j.Description)
	}
	if j.JobType != "part-time" {
		t.Errorf("contract_time not normalized: %q", j.JobType)
	}
	if j.SalaryRange.Min != 100000 || j.SalaryRange.Max != 130000 {
		t.Errorf("salary: %+v", j.SalaryRange)
	}

	// Sparse results fall back to placeholders instead of empty strings.
	sparse := jobs[1]
	if sparse.ID != "str-id-2" {
		t.Errorf("string id: %q", sparse.ID)
	}
	if sparse.Title != "Untitled job" || sparse.Company != "Unknown company" ||
		sparse.Location != "Unknown location" || sparse.Description != "No description available." {
		t.Errorf("fallbacks not applied: %+v", sparse)
	}

	q := gotQuery.Load().(url.Values)
	if q.Get("app_id") != "test-id" || q.Get("app_key") != "test-key" {
		t.Errorf("credentials not sent: %v", q)
	}
	if q.Get("what") != "golang" || q.Get("where") != "Toronto" {
		t.Errorf("search params: %v", q)
	}
}

func TestAdzunaSearchDefaultsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("what"); got != "software engineer" {
			t.Errorf("default what = %q", got)
		}
		_, _ = w.Write(adzunaPage())
	}))
	defer srv.Close()

	a := NewAdzuna(AdzunaConfig{BaseURL: srv.URL}, testCreds())
	if _, err := a.Search(context.Background(), domain.JobFilters{}); err != nil {
		t.Fatal(err)
	}
}

func TestAdzunaMultiPageKeepsOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := strings.TrimPrefix(r.URL.Path, "/jobs/ca/search/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(adzunaPage(map[string]any{"id": "page-" + page, "title": "t"}))
	}))
	defer srv.Close()

	a := NewAdzuna(AdzunaConfig{BaseURL: srv.URL, Country: "ca", Pages: 3, RatePerSec: 1000, RateBurst: 10}, testCreds())
	jobs, err := a.Search(context.Background(), domain.JobFilters{})
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 3 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	for i, j := range jobs {
		want := "page-" + string(rune('1'+i))
		if j.ID != want {
			t.Errorf("jobs[%d].ID = %q, want %q: pages must assemble in order", i, j.ID, want)
		}
	}
}

func TestAdzunaErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := NewAdzuna(AdzunaConfig{BaseURL: srv.URL}, testCreds())
	if _, err := a.Search(context.Background(), domain.JobFilters{}); err == nil {
		t.Fatal("non-2xx must surface as an error")
	}
}

func TestAdzunaCredentialFailure(t *testing.T) {
	a := NewAdzuna(AdzunaConfig{BaseURL: "http://127.0.0.1:0"}, func() (string, string, error) {
		return "", "", errors.New("keychain locked")
	})
	if _, err := a.Search(context.Background(), domain.JobFilters{}); err == nil {
		t.Fatal("credential failure must abort before any request")
	}
}

func TestFlattenHTML(t *testing.T) {
	cases := map[string]string{
		"plain text stays":          "plain text stays",
		"<p>Hello <b>world</b></p>": "Hello world",
		"a &amp; b":                 "a & b",
	}
	for in, want := range cases {
		if got := flattenHTML(in); got != want {
			t.Errorf("flattenHTML(%q) = %q, want %q", in, got, want)
		}
	}
}
