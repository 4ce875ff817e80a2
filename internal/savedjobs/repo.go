package savedjobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/store"

	"github.com/rs/zerolog"
)

// Repo owns the saved-jobs collection: the subset of feed postings the user
// has bookmarked. Same whole-collection persistence as the applications repo.
type Repo struct {
	mu    sync.Mutex
	store store.DocStore
	jobs  []domain.SavedJob
	log   zerolog.Logger
	now   func() time.Time
}

func New(ctx context.Context, ds store.DocStore, log zerolog.Logger) (*Repo, error) {
	r := &Repo{
		store: ds,
		log:   log.With().Str("component", "savedjobs").Logger(),
		now:   time.Now,
	}

	raw, err := ds.Get(ctx, store.KeySavedJobs)
	if err != nil {
		return nil, fmt.Errorf("load saved jobs: %w", err)
	}
	if raw == nil {
		r.jobs = []domain.SavedJob{}
		return r, nil
	}
	if err := json.Unmarshal(raw, &r.jobs); err != nil {
		return nil, fmt.Errorf("decode saved jobs: %w", err)
	}
	return r, nil
}

func (r *Repo) List() []domain.SavedJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SavedJob, len(r.jobs))
	copy(out, r.jobs)
	return out
}

// Save bookmarks a job. Idempotent by job id: a repeated save neither
// duplicates the entry nor overwrites the notes from the first save.
func (r *Repo) Save(ctx context.Context, job domain.Job, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index(job.ID) >= 0 {
		return nil
	}
	r.jobs = append(r.jobs, domain.SavedJob{
		Job:     job,
		SavedAt: r.now().UTC(),
		Notes:   notes,
	})
	return r.persist(ctx)
}

// Remove drops the bookmark. No error if absent.
func (r *Repo) Remove(ctx context.Context, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(jobID)
	if i < 0 {
		return nil
	}
	r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
	return r.persist(ctx)
}

// UpdateNotes replaces the notes on the matching entry; no-op if absent.
func (r *Repo) UpdateNotes(ctx context.Context, jobID, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(jobID)
	if i < 0 {
		return nil
	}
	r.jobs[i].Notes = notes
	return r.persist(ctx)
}

func (r *Repo) Saved(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index(jobID) >= 0
}

func (r *Repo) index(jobID string) int {
	for i := range r.jobs {
		if r.jobs[i].ID == jobID {
			return i
		}
	}
	return -1
}

func (r *Repo) persist(ctx context.Context) error {
	b, err := json.Marshal(r.jobs)
	if err != nil {
		return fmt.Errorf("encode saved jobs: %w", err)
	}
	if err := r.store.Put(ctx, store.KeySavedJobs, b); err != nil {
		r.log.Error().Err(err).Msg("persist saved jobs")
		return err
	}
	return nil
}
