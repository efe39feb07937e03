// Package store persists notes and users with GORM.
//
// NoteStore is the typed repository the access layer talks to. It exposes the
// handful of queries the application needs and nothing else. UserStore is the
// account table owned by the session provider, and also answers batched
// author lookups for public notes.
package store

import (
	"context"

	"github.com/oliverisaac/jotter/types"
)

type NoteStore interface {
	// ListByOwner returns userID's notes, newest first.
	ListByOwner(ctx context.Context, userID string) ([]types.Note, error)
	// ListPublic returns every public note, newest first.
	ListPublic(ctx context.Context) ([]types.Note, error)
	// GetPublic returns the note with id if it is public, or types.ErrNotFound.
	GetPublic(ctx context.Context, id uint) (types.Note, error)
	// Insert stores note and fills in its ID and timestamps.
	Insert(ctx context.Context, note *types.Note) error
	// DeleteOwned removes note id if userID owns it. Deleting nothing is not an error.
	DeleteOwned(ctx context.Context, id uint, userID string) (bool, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) error
	// FindUserByEmail returns types.ErrNotFound when no user has email.
	FindUserByEmail(ctx context.Context, email string) (types.User, error)
	// LookupEmails maps each known user id to its email. Unknown ids are absent from the result.
	LookupEmails(ctx context.Context, userIDs []string) (map[string]string, error)
}
