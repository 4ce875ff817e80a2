package feed

import (
	"context"
	"fmt"

	"hirepath-engine/internal/domain"
)

// Provider is a source of job postings: the live Adzuna API or the built-in
// fixture set. Providers may pre-filter (Adzuna takes search/location as
// query params) but the Client re-applies the full predicate set so filter
// semantics never depend on the data source.
type Provider interface {
	Name() string
	Search(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error)
}

// Client fronts a provider and owns the filter semantics.
type Client struct {
	provider Provider
}

func NewClient(p Provider) *Client {
	return &Client{provider: p}
}

// Fetch returns the provider's postings narrowed by filters, in feed order.
// Failures yield an empty slice plus the error; callers surface it as a
// non-fatal notification.
func (c *Client) Fetch(ctx context.Context, filters domain.JobFilters) ([]domain.Job, error) {
	jobs, err := c.provider.Search(ctx, filters)
	if err != nil {
		return []domain.Job{}, fmt.Errorf("%s search: %w", c.provider.Name(), err)
	}

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if Matches(j, filters) {
			out = append(out, j)
		}
	}
	return out, nil
}
