package feed

import (
	"context"
	"testing"

	"hirepath-engine/internal/domain"
)

func sampleJob() domain.Job {
	return domain.Job{
		ID:          "j1",
		Title:       "Senior Go Developer",
		Company:     "Northwind Labs",
		Description: "Build streaming pipelines in Go and Kafka.",
		Location:    "Toronto, ON",
		Remote:      domain.RemoteHybrid,
		JobType:     "full-time",
		Level:       "senior",
		SalaryRange: domain.SalaryRange{Min: 120000, Max: 150000, Currency: "CAD"},
		Tags:        []string{"go", "kafka"},
	}
}

func TestMatchesNoFilters(t *testing.T) {
	if !Matches(sampleJob(), domain.JobFilters{}) {
		t.Fatal("empty filters must match everything")
	}
}

func TestMatchesSearchIsCaseInsensitive(t *testing.T) {
	j := sampleJob()
	for _, q := range []string{"go developer", "NORTHWIND", "kafka"} {
		if !Matches(j, domain.JobFilters{Search: q}) {
			t.Fatalf("search %q should match title/company/description", q)
		}
	}
	if Matches(j, domain.JobFilters{Search: "haskell"}) {
		t.Fatal("search with no occurrence should not match")
	}
}

func TestMatchesLocationSubstring(t *testing.T) {
	j := sampleJob()
	if !Matches(j, domain.JobFilters{Location: "toronto"}) {
		t.Fatal("location substring should match case-insensitively")
	}
	if Matches(j, domain.JobFilters{Location: "Berlin"}) {
		t.Fatal("wrong location should not match")
	}
}

func TestMatchesFacetSets(t *testing.T) {
	j := sampleJob()

	cases := []struct {
		name string
		f    domain.JobFilters
		want bool
	}{
		{"remote member", domain.JobFilters{Remote: []string{"hybrid", "remote"}}, true},
		{"remote excluded", domain.JobFilters{Remote: []string{"on-site"}}, false},
		{"jobType member", domain.JobFilters{JobType: []string{"full-time"}}, true},
		{"jobType excluded", domain.JobFilters{JobType: []string{"internship"}}, false},
		{"level member", domain.JobFilters{Level: []string{"senior"}}, true},
		{"level excluded", domain.JobFilters{Level: []string{"entry"}}, false},
	}
	for _, tc := range cases {
		if got := Matches(j, tc.f); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesSalaryBounds(t *testing.T) {
	j := sampleJob() // 120k..150k

	if !Matches(j, domain.JobFilters{SalaryMin: 140000}) {
		t.Fatal("job max above requested min should match")
	}
	if Matches(j, domain.JobFilters{SalaryMin: 160000}) {
		t.Fatal("job max below requested min should not match")
	}
	if Matches(j, domain.JobFilters{SalaryMax: 100000}) {
		t.Fatal("job min above requested max should not match")
	}

	// Unknown salary imposes nothing.
	unknown := sampleJob()
	unknown.SalaryRange = domain.SalaryRange{}
	if !Matches(unknown, domain.JobFilters{SalaryMin: 200000, SalaryMax: 10}) {
		t.Fatal("jobs without salary data must pass salary filters")
	}
}

func TestMatchesTagsRequireAll(t *testing.T) {
	j := sampleJob()
	if !Matches(j, domain.JobFilters{Tags: []string{"go", "KAFKA"}}) {
		t.Fatal("all requested tags present should match")
	}
	if Matches(j, domain.JobFilters{Tags: []string{"go", "rust"}}) {
		t.Fatal("missing tag should not match")
	}
}

func TestMatchesFiltersIntersect(t *testing.T) {
	j := sampleJob()
	f := domain.JobFilters{
		Search:   "go",
		Location: "Toronto",
		Remote:   []string{"hybrid"},
		JobType:  []string{"full-time"},
	}
	if !Matches(j, f) {
		t.Fatal("all dimensions satisfied should match")
	}
	f.JobType = []string{"contract"}
	if Matches(j, f) {
		t.Fatal("one failing dimension must fail the whole filter")
	}
}

func TestClientNarrowsProviderResults(t *testing.T) {
	fx, err := NewFixture()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	c := NewClient(fx)

	all, err := c.Fetch(context.Background(), domain.JobFilters{})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(all) != 10 {
		t.Fatalf("unfiltered fixture fetch: got %d jobs, want 10", len(all))
	}

	interns, err := c.Fetch(context.Background(), domain.JobFilters{JobType: []string{"internship"}})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(interns) != 1 || interns[0].ID != "fx-1003" {
		t.Fatalf("internship filter: got %+v, want only fx-1003", interns)
	}
	for _, j := range interns {
		if j.JobType != "internship" {
			t.Fatalf("job %s leaked through jobType filter", j.ID)
		}
	}
}

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }
func (failingProvider) Search(context.Context, domain.JobFilters) ([]domain.Job, error) {
	return nil, context.DeadlineExceeded
}

func TestClientFetchErrorYieldsEmptySlice(t *testing.T) {
	c := NewClient(failingProvider{})
	jobs, err := c.Fetch(context.Background(), domain.JobFilters{})
	if err == nil {
		t.Fatal("expected provider error")
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("failed fetch must return empty non-nil slice, got %#v", jobs)
	}
}
