package sqlite_test

import (
	"context"
	"testing"

	"github.com/dexter-zone/nftmeta"
	"github.com/dexter-zone/nftmeta/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func saveFrames(t *testing.T, store *sqlite.FrameStore, frames ...*nftmeta.FrameRecord) {
	t.Helper()
	for _, f := range frames {
		require.NoError(t, store.Save(context.Background(), f))
	}
}

func TestFrameStore_Commit(t *testing.T) {
	t.Parallel()

	t.Run("persists frames with export metadata", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewFrameStore(db, "file-key", 3)
		saveFrames(t, store,
			&nftmeta.FrameRecord{FrameID: 0, Name: "Frame 1", Attributes: []nftmeta.Trait{{TraitType: "Hat", Value: "Cap"}}},
			&nftmeta.FrameRecord{FrameID: 1, Name: "Frame 2"},
		)

		require.NoError(t, store.Commit())

		frames, err := sqlite.NewFrameService(db).FindFrames(context.Background(), nftmeta.FrameFilter{})
		require.NoError(t, err)
		require.Len(t, frames, 2)

		first := frames[0]
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, store.ExportID(), first.ExportID)
		assert.Equal(t, "file-key", first.FileKey)
		assert.Equal(t, 3, first.PageIndex)
		assert.Equal(t, nftmeta.FrameRecord{
			FrameID:    0,
			Name:       "Frame 1",
			Attributes: []nftmeta.Trait{{TraitType: "Hat", Value: "Cap"}},
		}, first.Frame)
		assert.Len(t, first.ContentHash, 16)
		assert.False(t, first.ExportedAt.IsZero())

		assert.Equal(t, 1, frames[1].Frame.FrameID)
		assert.Equal(t, []nftmeta.Trait{}, frames[1].Frame.Attributes)
		assert.NotEqual(t, first.ContentHash, frames[1].ContentHash)
	})

	t.Run("commit without saves is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewFrameStore(db, "file-key", 0)

		require.NoError(t, store.Commit())
		require.NoError(t, store.Abort())
	})

	t.Run("rejects nil frame", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewFrameStore(setupTestDB(t), "file-key", 0)

		err := store.Save(context.Background(), nil)
		assert.Equal(t, nftmeta.EINVALID, nftmeta.ErrorCode(err))
	})

	t.Run("duplicate frame id fails the save", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewFrameStore(db, "file-key", 0)
		saveFrames(t, store, &nftmeta.FrameRecord{FrameID: 0, Name: "A"})

		err := store.Save(context.Background(), &nftmeta.FrameRecord{FrameID: 0, Name: "B"})
		require.Error(t, err)
		require.NoError(t, store.Abort())
	})
}

func TestFrameStore_Abort(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	store := sqlite.NewFrameStore(db, "file-key", 0)
	saveFrames(t, store, &nftmeta.FrameRecord{FrameID: 0, Name: "Frame 1"})

	require.NoError(t, store.Abort())

	frames, err := sqlite.NewFrameService(db).FindFrames(context.Background(), nftmeta.FrameFilter{})
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestFrameService_FindFrames(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	older := sqlite.NewFrameStore(db, "key-a", 1)
	saveFrames(t, older,
		&nftmeta.FrameRecord{FrameID: 0, Name: "A0"},
		&nftmeta.FrameRecord{FrameID: 1, Name: "A1"},
	)
	require.NoError(t, older.Commit())

	newer := sqlite.NewFrameStore(db, "key-b", 2)
	saveFrames(t, newer, &nftmeta.FrameRecord{FrameID: 0, Name: "B0"})
	require.NoError(t, newer.Commit())

	svc := sqlite.NewFrameService(db)
	ctx := context.Background()

	t.Run("newest export first", func(t *testing.T) {
		frames, err := svc.FindFrames(ctx, nftmeta.FrameFilter{})
		require.NoError(t, err)
		require.Len(t, frames, 3)
		assert.Equal(t, "B0", frames[0].Frame.Name)
		assert.Equal(t, "A0", frames[1].Frame.Name)
		assert.Equal(t, "A1", frames[2].Frame.Name)
	})

	t.Run("filters by file key", func(t *testing.T) {
		frames, err := svc.FindFrames(ctx, nftmeta.FrameFilter{FileKey: ptr("key-a")})
		require.NoError(t, err)
		require.Len(t, frames, 2)
		for _, f := range frames {
			assert.Equal(t, "key-a", f.FileKey)
		}
	})

	t.Run("filters by export id", func(t *testing.T) {
		frames, err := svc.FindFrames(ctx, nftmeta.FrameFilter{ExportID: ptr(newer.ExportID())})
		require.NoError(t, err)
		require.Len(t, frames, 1)
		assert.Equal(t, "B0", frames[0].Frame.Name)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		frames, err := svc.FindFrames(ctx, nftmeta.FrameFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, frames, 1)
		assert.Equal(t, "A0", frames[0].Frame.Name)

		frames, err = svc.FindFrames(ctx, nftmeta.FrameFilter{Offset: 2})
		require.NoError(t, err)
		require.Len(t, frames, 1)
		assert.Equal(t, "A1", frames[0].Frame.Name)
	})
}
