package notes

import (
	"context"
	"testing"

	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/store/storetest"
	"github.com/oliverisaac/jotter/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T, opts ...Option) (*Service, *store.GormStore) {
	t.Helper()
	s := storetest.New(t)
	return NewService(s, s, opts...), s
}

func sessionFor(u types.User) types.Session {
	return u.Session()
}

func noteIDs(notes []types.Note) []uint {
	ret := []uint{}
	for _, n := range notes {
		ret = append(ret, n.ID)
	}
	return ret
}

func TestPrivateNoteOnlyVisibleToOwner(t *testing.T) {
	svc, s := setupService(t)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))
	bob := sessionFor(storetest.NewUser(t, s, "b@x.com"))

	note, err := svc.Create(ctx, alice, types.NoteInput{Title: "Groceries", Content: "milk, eggs"})
	require.NoError(t, err)
	assert.False(t, note.IsPublic)
	assert.Equal(t, alice.UserID, note.UserID)

	own, err := svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{note.ID}, noteIDs(own))

	others, err := svc.ListOwn(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, others)

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = svc.GetPublic(ctx, note.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPublicNoteVisibleToEveryone(t *testing.T) {
	svc, s := setupService(t)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))

	note, err := svc.Create(ctx, alice, types.NoteInput{Title: "Recipe", Content: "flour, water", IsPublic: true})
	require.NoError(t, err)

	own, err := svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{note.ID}, noteIDs(own))

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, note.ID, public[0].ID)
	assert.Equal(t, "a@x.com", public[0].AuthorLabel)

	got, err := svc.GetPublic(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Recipe", got.Title)
	assert.Equal(t, "flour, water", got.Content)
	assert.Equal(t, "a@x.com", got.AuthorLabel)
}

func TestListOwnWithoutSessionIsEmpty(t *testing.T) {
	svc, s := setupService(t)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))
	_, err := svc.Create(ctx, alice, types.NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	notes, err := svc.ListOwn(ctx, types.Session{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

// countingStore records writes so tests can check validation happens first.
type countingStore struct {
	store.NoteStore
	inserts int
}

func (c *countingStore) Insert(ctx context.Context, n *types.Note) error {
	c.inserts++
	return c.NoteStore.Insert(ctx, n)
}

func TestCreateValidatesBeforeWriting(t *testing.T) {
	s := storetest.New(t)
	counting := &countingStore{NoteStore: s}
	svc := NewService(counting, s)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))

	for _, in := range []types.NoteInput{
		{Title: "", Content: "c"},
		{Title: "t", Content: ""},
		{Title: "   ", Content: "c"},
		{Title: "", Content: "", IsPublic: true},
	} {
		_, err := svc.Create(ctx, alice, in)
		assert.ErrorIs(t, err, types.ErrValidation, "%+v", in)
	}

	// Validation wins over the missing session.
	_, err := svc.Create(ctx, types.Session{}, types.NoteInput{})
	assert.ErrorIs(t, err, types.ErrValidation)

	assert.Zero(t, counting.inserts)
}

func TestCreateRequiresSession(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), types.Session{}, types.NoteInput{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
	assert.ErrorIs(t, err, types.ErrAuth)
}

func TestCreatePreservesNewlines(t *testing.T) {
	svc, s := setupService(t)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))

	_, err := svc.Create(ctx, alice, types.NoteInput{Title: "List", Content: "one\ntwo\n\nthree"})
	require.NoError(t, err)

	own, err := svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "one\ntwo\n\nthree", own[0].Content)
}

func TestDelete(t *testing.T) {
	svc, s := setupService(t)
	ctx := context.Background()
	alice := sessionFor(storetest.NewUser(t, s, "a@x.com"))
	bob := sessionFor(storetest.NewUser(t, s, "b@x.com"))

	keep, err := svc.Create(ctx, alice, types.NoteInput{Title: "keep", Content: "c", IsPublic: true})
	require.NoError(t, err)
	drop, err := svc.Create(ctx, alice, types.NoteInput{Title: "drop", Content: "c", IsPublic: true})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, alice, drop.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	own, err := svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, noteIDs(own))

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, noteIDs(public))

	// Absent ids are not an error.
	deleted, err = svc.Delete(ctx, alice, drop.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
	deleted, err = svc.Delete(ctx, alice, 424242)
	assert.NoError(t, err)
	assert.False(t, deleted)

	// Another user cannot remove alice's note.
	deleted, err = svc.Delete(ctx, bob, keep.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
	own, err = svc.ListOwn(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, noteIDs(own))

	_, err = svc.Delete(ctx, types.Session{}, keep.ID)
	assert.ErrorIs(t, err, types.ErrUnauthenticated)
}
