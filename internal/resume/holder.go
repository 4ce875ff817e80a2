package resume

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

// Holder owns the singleton master resume. Saves overwrite the stored
// document wholesale.
type Holder struct {
	mu     sync.Mutex
	store  store.DocStore
	resume domain.MasterResume
	log    zerolog.Logger
	now    func() time.Time
}

func NewHolder(ctx context.Context, ds store.DocStore, log zerolog.Logger) (*Holder, error) {
	h := &Holder{
		store: ds,
		log:   log.With().Str("component", "resume").Logger(),
		now:   time.Now,
	}

	raw, err := ds.Get(ctx, store.KeyResume)
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}
	if raw == nil {
		h.resume = domain.MasterResume{Content: defaultResume, LastUpdated: h.now().UTC()}
		if err := h.persist(ctx); err != nil {
			return nil, fmt.Errorf("seed resume: %w", err)
		}
		return h, nil
	}
	if err := json.Unmarshal(raw, &h.resume); err != nil {
		return nil, fmt.Errorf("decode resume: %w", err)
	}
	return h, nil
}

func (h *Holder) Get() domain.MasterResume {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resume
}

func (h *Holder) Save(ctx context.Context, content string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resume = domain.MasterResume{Content: content, LastUpdated: h.now().UTC()}
	return h.persist(ctx)
}

func (h *Holder) persist(ctx context.Context) error {
	b, err := json.Marshal(h.resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := h.store.Put(ctx, store.KeyResume, b); err != nil {
		h.log.Error().Err(err).Msg("persist resume")
		return err
	}
	return nil
}

const defaultResume = `# Your Name
your.email@example.com | (555) 123-4567 | LinkedIn | GitHub

## Summary
Experienced software developer with expertise in modern web technologies...

## Experience
### Senior Developer | Company Name | 2022 - Present
- Led development of key features...
- Mentored junior developers...

### Developer | Previous Company | 2019 - 2022
- Built and maintained web applications...
- Collaborated with cross-functional teams...

## Education
### Bachelor of Science in Computer Science
University Name | 2019

## Skills
JavaScript, TypeScript, React, Node.js, Python, SQL, Git, AWS`
