package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pulsehire/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db)
}

func TestCreateUserAndVerify(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.CreateUser(ctx, "ops@example.com", "Ops", "recruiter", "s3cret"))

	u, err := s.Verify(ctx, "ops@example.com", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "recruiter", u.Role)

	u, err = s.Verify(ctx, "ops@example.com", "wrong")
	require.NoError(t, err)
	require.Nil(t, u)

	u, err = s.Verify(ctx, "nobody@example.com", "s3cret")
	require.NoError(t, err)
	require.Nil(t, u)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := newTestService(t)
	err := s.CreateUser(context.Background(), "x@example.com", "X", "superuser", "pw")
	require.Error(t, err)
}

func TestSeedAdminIfEmpty(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	require.NoError(t, s.SeedAdminIfEmpty(ctx))

	u, err := s.Verify(ctx, DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "admin", u.Role)

	// Second call is a no-op once any user exists.
	require.NoError(t, s.SeedAdminIfEmpty(ctx))
	n, err := s.db.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestHashPasswordUsesSalt(t *testing.T) {
	h1 := hashPassword("pw", []byte("salt-one........"))
	h2 := hashPassword("pw", []byte("salt-two........"))
	require.NotEqual(t, h1, h2)
	require.Equal(t, h1, hashPassword("pw", []byte("salt-one........")))
}
