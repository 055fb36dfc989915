package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mayrii101/Project-D-Lafeber-sub000/internal/models"
)

func TestStickyNoteCreatesSingletonOnFirstGet(t *testing.T) {
	db := newTestDB(t)
	svc := NewStickyNoteService(db, nil)
	ctx := context.Background()

	note, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotZero(t, note.ID)
	require.Empty(t, note.Content)

	// Repeated reads return the same row.
	again, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, note.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.StickyNote{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestStickyNoteSaveOverwritesContent(t *testing.T) {
	db := newTestDB(t)
	svc := NewStickyNoteService(db, nil)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "call carrier about friday slots")
	require.NoError(t, err)
	require.Equal(t, "call carrier about friday slots", saved.Content)
	require.False(t, saved.LastModified.IsZero())

	saved, err = svc.Save(ctx, "done")
	require.NoError(t, err)
	require.Equal(t, "done", saved.Content)

	var count int64
	require.NoError(t, db.Model(&models.StickyNote{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
