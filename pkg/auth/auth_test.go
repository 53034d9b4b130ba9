package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrin/vitrin-cli/pkg/store"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	dir := t.TempDir()
	s, err := store.OpenSQLite(filepath.Join(dir, "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewService(s, []byte("test-secret"), filepath.Join(dir, "session.json"), ttl)
}

func TestSignupLoginSessionRoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Ada", "555-0100", "Ada@Example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email, "email is normalized")
	assert.NotEmpty(t, user.ID)

	// No session before login.
	session, err := svc.GetSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	session, err = svc.Login(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)

	// The persisted token round-trips.
	session, err = svc.GetSession()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "ada@example.com", session.Email)

	require.NoError(t, svc.Logout())
	session, err = svc.GetSession()
	require.NoError(t, err)
	assert.Nil(t, session)

	// Logging out twice is not an error.
	require.NoError(t, svc.Logout())
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "", "ada@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "", "ada@example.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Other", "", "ada@example.com", "pw2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestExpiredSessionIsNoSession(t *testing.T) {
	// A negative TTL issues a token that is already expired.
	svc := newTestService(t, -time.Hour)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ada", "", "ada@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	session, err := svc.GetSession()
	require.NoError(t, err)
	assert.Nil(t, session, "expired token must read as no session")
}
