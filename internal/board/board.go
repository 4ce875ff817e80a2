package board

import (
	"context"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/domain"
)

// Column is one lane of the kanban board.
type Column struct {
	Status       domain.Status        `json:"status"`
	Applications []domain.Application `json:"applications"`
}

// Columns partitions applications into the five fixed-order lanes. Every
// application lands in exactly one column; anything with a status outside
// the known set is treated as saved so the per-column counts always sum to
// the collection size.
func Columns(list []domain.Application) []Column {
	byStatus := make(map[domain.Status][]domain.Application, len(domain.Statuses))
	for _, app := range list {
		s := app.Status
		if !s.Valid() {
			s = domain.StatusSaved
		}
		byStatus[s] = append(byStatus[s], app)
	}

	out := make([]Column, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		col := Column{Status: s, Applications: byStatus[s]}
		if col.Applications == nil {
			col.Applications = []domain.Application{}
		}
		out = append(out, col)
	}
	return out
}

// Transition commits a drag-drop (or form edit) status change. Dropping a
// card onto its current column is a no-op; everything else is a plain
// repository update — any state may move to any other state.
func Transition(ctx context.Context, repo *apps.Repo, id string, status domain.Status) (bool, error) {
	app, ok := repo.Get(id)
	if !ok || app.Status == status {
		return false, nil
	}
	s := status
	if err := repo.Update(ctx, id, apps.Patch{Status: &s}); err != nil {
		return false, err
	}
	return true, nil
}
