// Package notes decides who may read and write which notes.
//
// Every call takes the caller's session explicitly. Owners see all of their
// own notes. Everyone else sees a note only when it is public, and public
// notes carry the owner's email as an author label.
package notes

import (
	"context"
	"time"

	"github.com/oliverisaac/jotter/cache"
	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/types"
	"github.com/sirupsen/logrus"
)

const DefaultAuthorCacheTTL = 5 * time.Minute

type Service struct {
	notes   store.NoteStore
	authors *AuthorResolver
}

type Option func(*Service)

// WithAuthorCache puts c in front of the author lookup.
func WithAuthorCache(c cache.AuthorCache, ttl time.Duration) Option {
	return func(s *Service) {
		s.authors.cache = c
		s.authors.ttl = ttl
	}
}

func NewService(notes store.NoteStore, users store.UserStore, opts ...Option) *Service {
	s := &Service{
		notes:   notes,
		authors: &AuthorResolver{users: users, ttl: DefaultAuthorCacheTTL},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListOwn returns the caller's notes, newest first. Without a session the list is empty.
func (s *Service) ListOwn(ctx context.Context, sess types.Session) ([]types.Note, error) {
	if !sess.IsSet() {
		return []types.Note{}, nil
	}
	return s.notes.ListByOwner(ctx, sess.UserID)
}

// ListPublic returns all public notes with their author labels filled in.
func (s *Service) ListPublic(ctx context.Context) ([]types.Note, error) {
	notes, err := s.notes.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	s.authors.Label(ctx, notes)
	return notes, nil
}

// GetPublic returns note id if it is public, or types.ErrNotFound.
func (s *Service) GetPublic(ctx context.Context, id uint) (types.Note, error) {
	note, err := s.notes.GetPublic(ctx, id)
	if err != nil {
		return types.Note{}, err
	}
	labelled := []types.Note{note}
	s.authors.Label(ctx, labelled)
	return labelled[0], nil
}

// Create validates in and stores it as a note owned by the caller.
func (s *Service) Create(ctx context.Context, sess types.Session, in types.NoteInput) (types.Note, error) {
	if err := types.Validate(in); err != nil {
		return types.Note{}, err
	}
	if !sess.IsSet() {
		return types.Note{}, types.ErrUnauthenticated
	}

	note := in.NewNote(sess)
	if err := s.notes.Insert(ctx, &note); err != nil {
		return types.Note{}, err
	}

	notesCreated.WithLabelValues(visibility(note)).Inc()
	logrus.Debugf("User %s created note %d", sess.Email, note.ID)
	return note, nil
}

// Delete removes note id if the caller owns it and reports whether a row went.
// Deleting an absent note, or another user's, changes nothing and is not an error.
func (s *Service) Delete(ctx context.Context, sess types.Session, id uint) (bool, error) {
	if !sess.IsSet() {
		return false, types.ErrUnauthenticated
	}

	deleted, err := s.notes.DeleteOwned(ctx, id, sess.UserID)
	if err != nil {
		return false, err
	}
	if deleted {
		notesDeleted.Inc()
		logrus.Debugf("User %s deleted note %d", sess.Email, id)
	} else {
		logrus.Infof("User %s asked to delete note %d which they do not own", sess.Email, id)
	}
	return deleted, nil
}

func visibility(n types.Note) string {
	if n.IsPublic {
		return "public"
	}
	return "private"
}
