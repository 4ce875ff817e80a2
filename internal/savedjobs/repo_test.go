package savedjobs

import (
	"context"
	"testing"

	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repo, store.DocStore) {
	t.Helper()
	ds, err := store.OpenFile(t.TempDir())
	require.NoError(t, err)
	r, err := New(context.Background(), ds, zerolog.Nop())
	require.NoError(t, err)
	return r, ds
}

func job(id string) domain.Job {
	return domain.Job{ID: id, Title: "Backend Engineer", Company: "Acme"}
}

func TestSaveIsIdempotent(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, job("j1"), "first notes"))
	require.NoError(t, r.Save(ctx, job("j1"), "second notes"))

	list := r.List()
	require.Len(t, list, 1)
	require.Equal(t, "first notes", list[0].Notes)
	require.False(t, list[0].SavedAt.IsZero())
	require.True(t, r.Saved("j1"))
}

func TestRemove(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, job("j1"), ""))
	require.NoError(t, r.Remove(ctx, "j1"))
	require.False(t, r.Saved("j1"))
	require.Empty(t, r.List())

	// Absent id is a no-op, not an error.
	require.NoError(t, r.Remove(ctx, "j1"))
}

func TestUpdateNotes(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, job("j1"), "old"))
	require.NoError(t, r.UpdateNotes(ctx, "j1", "new"))
	require.Equal(t, "new", r.List()[0].Notes)

	require.NoError(t, r.UpdateNotes(ctx, "missing", "ignored"))
	require.Len(t, r.List(), 1)
}

func TestSavedJobsSurviveReload(t *testing.T) {
	r, ds := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, job("j1"), "keep me"))

	r2, err := New(ctx, ds, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, r2.Saved("j1"))
	require.Equal(t, "keep me", r2.List()[0].Notes)
}
