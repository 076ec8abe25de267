package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/blog/internal/blog/service"
	"github.com/aussiebroadwan/blog/internal/blog/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

type services struct {
	store   *sqlite.Store
	users   *service.UserService
	authors *service.AuthorService
	posts   *service.PostService
}

func newServices(t *testing.T) services {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	return services{
		store:   st,
		users:   &service.UserService{Store: st},
		authors: &service.AuthorService{Store: st},
		posts:   &service.PostService{Store: st},
	}
}

// register creates a user and returns its id and author id (0 when not an
// author).
func (s services) register(t *testing.T, username string, isAuthor bool) (int64, int64) {
	t.Helper()

	acc, err := s.users.Register(context.Background(), service.RegisterParams{
		Username: username,
		Password: "pw-" + username,
		IsAuthor: isAuthor,
	})
	require.NoError(t, err)
	if acc.Author == nil {
		return acc.User.ID, 0
	}
	return acc.User.ID, acc.Author.ID
}

func strPtr(s string) *string { return &s }
