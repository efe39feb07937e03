// Package storetest opens throwaway in-memory stores for tests.
package storetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/oliverisaac/jotter/store"
	"github.com/oliverisaac/jotter/types"
	"github.com/stretchr/testify/require"
)

// New returns a migrated store backed by a private in-memory SQLite database.
func New(t testing.TB) *store.GormStore {
	t.Helper()

	cfg := types.Config{
		DBDriver: types.DBDriverSQLite,
		DBPath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	s, err := store.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

// NewUser inserts a user with a placeholder password hash.
func NewUser(t testing.TB, s store.UserStore, email string) types.User {
	t.Helper()

	u := types.User{Email: email, Password: "x"}
	require.NoError(t, s.CreateUser(context.Background(), &u))
	return u
}
