package apps

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repo owns the applications collection. Memory is the source of truth while
// the process is alive; the store is a passive mirror rewritten wholesale on
// every mutation.
type Repo struct {
	mu    sync.Mutex
	store store.DocStore
	apps  []domain.Application
	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

// AddInput carries the caller-supplied fields of a new application. The
// repository assigns id, timestamps and the empty communications log itself.
type AddInput struct {
	Company       string        `json:"company"`
	Position      string        `json:"position"`
	Location      string        `json:"location"`
	Salary        string        `json:"salary"`
	Status        domain.Status `json:"status"`
	DateApplied   string        `json:"dateApplied"`
	FollowUpDate  string        `json:"followUpDate"`
	JobURL        string        `json:"jobUrl"`
	Notes         string        `json:"notes"`
	ResumeVersion string        `json:"resumeVersion"`
}

// Patch is a partial update; nil fields are left untouched.
type Patch struct {
	Company       *string        `json:"company"`
	Position      *string        `json:"position"`
	Location      *string        `json:"location"`
	Salary        *string        `json:"salary"`
	Status        *domain.Status `json:"status"`
	DateApplied   *string        `json:"dateApplied"`
	FollowUpDate  *string        `json:"followUpDate"`
	JobURL        *string        `json:"jobUrl"`
	Notes         *string        `json:"notes"`
	ResumeVersion *string        `json:"resumeVersion"`
}

// CommInput is a new communication entry; the repository assigns the id.
type CommInput struct {
	Date    string          `json:"date"`
	Type    domain.CommType `json:"type"`
	Content string          `json:"content"`
}

// New loads the collection from the store, seeding sample data on first run.
func New(ctx context.Context, ds store.DocStore, log zerolog.Logger) (*Repo, error) {
	r := &Repo{
		store: ds,
		log:   log.With().Str("component", "apps").Logger(),
		now:   time.Now,
		newID: uuid.NewString,
	}

	raw, err := ds.Get(ctx, store.KeyApplications)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}
	if raw == nil {
		r.apps = seedApplications()
		if err := r.persist(ctx); err != nil {
			return nil, fmt.Errorf("seed applications: %w", err)
		}
		r.log.Info().Int("count", len(r.apps)).Msg("seeded applications")
		return r, nil
	}

	if err := json.Unmarshal(raw, &r.apps); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}
	return r, nil
}

// List returns a snapshot copy, most-recently-created first after Add.
func (r *Repo) List() []domain.Application {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Application, len(r.apps))
	copy(out, r.apps)
	return out
}

// Add prepends a new application and persists the full collection.
// Required-field validation (company, position) happens at the HTTP boundary.
func (r *Repo) Add(ctx context.Context, in AddInput) (domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := in.Status
	if !status.Valid() {
		status = domain.StatusSaved
	}

	now := r.now().UTC()
	app := domain.Application{
		ID:             r.newID(),
		Company:        in.Company,
		Position:       in.Position,
		Location:       in.Location,
		Salary:         in.Salary,
		Status:         status,
		DateApplied:    in.DateApplied,
		FollowUpDate:   in.FollowUpDate,
		JobURL:         in.JobURL,
		Notes:          in.Notes,
		Communications: []domain.Communication{},
		ResumeVersion:  in.ResumeVersion,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	r.apps = append([]domain.Application{app}, r.apps...)
	if err := r.persist(ctx); err != nil {
		return app, err
	}
	return app, nil
}

// Update merges a partial patch into the matching application. An unknown id
// is a silent no-op: the caller may be racing a delete and must tolerate it.
func (r *Repo) Update(ctx context.Context, id string, p Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil
	}
	r.applyPatch(&r.apps[i], p)
	r.apps[i].UpdatedAt = r.now().UTC()
	return r.persist(ctx)
}

// Delete removes the matching application. No error if absent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return nil
	}
	r.apps = append(r.apps[:i], r.apps[i+1:]...)
	return r.persist(ctx)
}

// AddCommunication appends one entry to the application's log and follows the
// same merge/persist path as Update. Silent no-op when the application is
// gone — the deliberate design gap the callers tolerate.
func (r *Repo) AddCommunication(ctx context.Context, appID string, in CommInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(appID)
	if i < 0 {
		return nil
	}

	comm := domain.Communication{
		ID:      r.newID(),
		Date:    in.Date,
		Type:    in.Type,
		Content: in.Content,
	}
	r.apps[i].Communications = append(r.apps[i].Communications, comm)
	r.apps[i].UpdatedAt = r.now().UTC()
	return r.persist(ctx)
}

// Get returns the application and whether it exists.
func (r *Repo) Get(id string) (domain.Application, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.Application{}, false
	}
	return r.apps[i], true
}

func (r *Repo) index(id string) int {
	for i := range r.apps {
		if r.apps[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repo) applyPatch(app *domain.Application, p Patch) {
	if p.Company != nil {
		app.Company = *p.Company
	}
	if p.Position != nil {
		app.Position = *p.Position
	}
	if p.Location != nil {
		app.Location = *p.Location
	}
	if p.Salary != nil {
		app.Salary = *p.Salary
	}
	if p.Status != nil && p.Status.Valid() {
		app.Status = *p.Status
	}
	if p.DateApplied != nil {
		app.DateApplied = *p.DateApplied
	}
	if p.FollowUpDate != nil {
		app.FollowUpDate = *p.FollowUpDate
	}
	if p.JobURL != nil {
		app.JobURL = *p.JobURL
	}
	if p.Notes != nil {
		app.Notes = *p.Notes
	}
	if p.ResumeVersion != nil {
		app.ResumeVersion = *p.ResumeVersion
	}
}

// persist writes the whole collection. The in-memory mutation stands even if
// the write fails; callers get the error, the mirror catches up on the next
// successful write.
func (r *Repo) persist(ctx context.Context) error {
	b, err := json.Marshal(r.apps)
	if err != nil {
		return fmt.Errorf("encode applications: %w", err)
	}
	if err := r.store.Put(ctx, store.KeyApplications, b); err != nil {
		r.log.Error().Err(err).Msg("persist applications")
		return err
	}
	return nil
}
