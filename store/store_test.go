package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/store/storetest"
	"github.com/oliverisaac/jotter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insert(t *testing.T, s store.NoteStore, n types.Note) types.Note {
	t.Helper()
	require.NoError(t, s.Insert(context.Background(), &n))
	require.NotZero(t, n.ID)
	return n
}

func TestInsertAssignsIDAndTimestamps(t *testing.T) {
	s := storetest.New(t)

	n := insert(t, s, types.Note{Title: "Groceries", Content: "milk,\neggs", UserID: "u1"})

	assert.False(t, n.CreatedAt.IsZero())
	assert.False(t, n.UpdatedAt.IsZero())
	assert.False(t, n.IsPublic)

	own, err := s.ListByOwner(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "milk,\neggs", own[0].Content)
}

func TestListByOwnerNewestFirst(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	old := insert(t, s, types.Note{Title: "old", Content: "c", UserID: "u1", CreatedAt: base})
	mid := insert(t, s, types.Note{Title: "mid", Content: "c", UserID: "u1", CreatedAt: base.Add(time.Minute)})
	insert(t, s, types.Note{Title: "other", Content: "c", UserID: "u2", CreatedAt: base.Add(2 * time.Minute)})
	newest := insert(t, s, types.Note{Title: "new", Content: "c", UserID: "u1", IsPublic: true, CreatedAt: base.Add(3 * time.Minute)})

	own, err := s.ListByOwner(ctx, "u1")
	require.NoError(t, err)

	ids := []uint{}
	for _, n := range own {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []uint{newest.ID, mid.ID, old.ID}, ids)

	none, err := s.ListByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPublicVisibility(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	private := insert(t, s, types.Note{Title: "secret", Content: "c", UserID: "u1"})
	public := insert(t, s, types.Note{Title: "shared", Content: "c", UserID: "u1", IsPublic: true})

	list, err := s.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, public.ID, list[0].ID)

	got, err := s.GetPublic(ctx, public.ID)
	require.NoError(t, err)
	assert.Equal(t, "shared", got.Title)

	_, err = s.GetPublic(ctx, private.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.GetPublic(ctx, 9999)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDeleteOwned(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	keep := insert(t, s, types.Note{Title: "keep", Content: "c", UserID: "u1", IsPublic: true})
	drop := insert(t, s, types.Note{Title: "drop", Content: "c", UserID: "u1", IsPublic: true})

	deleted, err := s.DeleteOwned(ctx, drop.ID, "u2")
	require.NoError(t, err)
	assert.False(t, deleted, "other users cannot delete")

	deleted, err = s.DeleteOwned(ctx, drop.ID, "u1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteOwned(ctx, drop.ID, "u1")
	require.NoError(t, err)
	assert.False(t, deleted, "deleting twice is a no-op")

	own, err := s.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, keep.ID, own[0].ID)

	public, err := s.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, keep.ID, public[0].ID)
}

func TestUsers(t *testing.T) {
	s := storetest.New(t)
	ctx := context.Background()

	a := storetest.NewUser(t, s, "a@x.com")
	b := storetest.NewUser(t, s, "b@x.com")
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	found, err := s.FindUserByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Equal(t, b.ID, found.ID)

	_, err = s.FindUserByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, types.ErrNotFound)

	dup := types.User{Email: "a@x.com", Password: "x"}
	assert.Error(t, s.CreateUser(ctx, &dup), "emails are unique")

	emails, err := s.LookupEmails(ctx, []string{a.ID, b.ID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{a.ID: "a@x.com", b.ID: "b@x.com"}, emails)

	emails, err = s.LookupEmails(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, emails)
}

func TestPing(t *testing.T) {
	s := storetest.New(t)
	assert.NoError(t, s.Ping(context.Background()))
}
