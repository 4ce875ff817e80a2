package feed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"hirepath-engine/internal/domain"
)

//go:embed fixtures/jobs.json
var fixtureJSON []byte

// Fixture serves the embedded posting set. It backs the job board when no
// feed credentials are configured and keeps the filter contract testable
// offline.
type Fixture struct {
	jobs []domain.Job
}

func NewFixture() (*Fixture, error) {
	var jobs []domain.Job
	if err := json.Unmarshal(fixtureJSON, &jobs); err != nil {
		return nil, fmt.Errorf("decode job fixtures: %w", err)
	}
	return &Fixture{jobs: jobs}, nil
}

func (f *Fixture) Name() string { return "fixture" }

// Search returns the full set in feed order; the Client narrows it.
func (f *Fixture) Search(_ context.Context, _ domain.JobFilters) ([]domain.Job, error) {
	out := make([]domain.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}
