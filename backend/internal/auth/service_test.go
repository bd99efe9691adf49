package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sirms/backend/internal/shared"
)

// fakeVerifier accepts a fixed set of id/password pairs.
type fakeVerifier struct {
	accounts map[string]string
	err      error
	calls    []string
}

func (f *fakeVerifier) VerifyCredentials(_ context.Context, id, password string) (bool, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return false, f.err
	}
	pw, ok := f.accounts[id]
	return ok && pw == password, nil
}

func newTestAuthenticator(t *testing.T, cfg shared.SecurityConfig) (*Authenticator, *fakeVerifier) {
	t.Helper()
	v := &fakeVerifier{accounts: map[string]string{"2024/001": "123"}}
	return NewAuthenticator(cfg, v, zap.NewNop()), v
}

func TestAuthenticator_Admin(t *testing.T) {
	a, v := newTestAuthenticator(t, shared.SecurityConfig{AdminPassword: "admin123"})
	ctx := context.Background()

	t.Run("Correct Password", func(t *testing.T) {
		id, err := a.Authenticate(ctx, "admin", "anything", "admin123")
		require.NoError(t, err)
		assert.True(t, id.IsAdmin())
	})

	t.Run("Wrong Password", func(t *testing.T) {
		id, err := a.Authenticate(ctx, "admin", "", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.True(t, id.IsAnonymous())
	})

	assert.Empty(t, v.calls, "admin logins must not consult the record store")
}

func TestAuthenticator_AdminBcrypt(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	require.NoError(t, err)

	a, _ := newTestAuthenticator(t, shared.SecurityConfig{AdminPassword: "admin123", AdminPasswordHash: hash})

	_, err = a.Authenticate(context.Background(), "admin", "", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "plaintext password is ignored once a hash is configured")

	id, err := a.Authenticate(context.Background(), "admin", "", "s3cret")
	require.NoError(t, err)
	assert.True(t, id.IsAdmin())
}

func TestAuthenticator_Student(t *testing.T) {
	a, v := newTestAuthenticator(t, shared.SecurityConfig{AdminPassword: "admin123"})
	ctx := context.Background()

	id, err := a.Authenticate(ctx, "student", "2024/001", "123")
	require.NoError(t, err)
	assert.Equal(t, shared.StudentIdentity("2024/001"), id)

	_, err = a.Authenticate(ctx, "student", "2024/001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate(ctx, "student", "", "123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown roles fall through to the student check.
	_, err = a.Authenticate(ctx, "", "2024/001", "123")
	assert.NoError(t, err)

	assert.Equal(t, []string{"2024/001", "2024/001", "2024/001"}, v.calls)
}

func TestAuthenticator_StudentIDIsUppercased(t *testing.T) {
	a, v := newTestAuthenticator(t, shared.SecurityConfig{AdminPassword: "admin123"})
	v.accounts["2024/ABC"] = "pw"

	id, err := a.Authenticate(context.Background(), "student", "2024/abc", "pw")
	require.NoError(t, err)
	assert.Equal(t, "2024/ABC", id.StudentID)
}

func TestAuthenticator_BackendError(t *testing.T) {
	a, v := newTestAuthenticator(t, shared.SecurityConfig{AdminPassword: "admin123"})
	v.err = errors.New("records service unavailable")

	_, err := a.Authenticate(context.Background(), "student", "2024/001", "123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentials(t *testing.T) {
	assert.True(t, PlaintextCredential{}.Verify("123", "123"))
	assert.False(t, PlaintextCredential{}.Verify("123", "1234"))
	assert.False(t, PlaintextCredential{}.Verify("123", ""))

	hash, err := HashPassword("pw", 4)
	require.NoError(t, err)
	assert.True(t, BcryptCredential{}.Verify(hash, "pw"))
	assert.False(t, BcryptCredential{}.Verify(hash, "other"))
	assert.False(t, BcryptCredential{}.Verify("not-a-hash", "pw"))
}

func TestSessionManager_RoundTrip(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	for _, identity := range []shared.Identity{shared.AdminIdentity(), shared.StudentIdentity("2024/001")} {
		token, expires, err := m.Issue(identity)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

		got, err := m.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, identity, got)
	}
}

func TestSessionManager_UniqueTokens(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	t1, _, err := m.Issue(shared.AdminIdentity())
	require.NoError(t, err)
	t2, _, err := m.Issue(shared.AdminIdentity())
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}

func TestSessionManager_Rejects(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	token, _, err := m.Issue(shared.StudentIdentity("2024/001"))
	require.NoError(t, err)

	t.Run("Anonymous Issue", func(t *testing.T) {
		_, _, err := m.Issue(shared.Anonymous)
		assert.Error(t, err)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		other := NewSessionManager("other-secret", time.Hour)
		id, err := other.Parse(token)
		assert.Error(t, err)
		assert.True(t, id.IsAnonymous())
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewSessionManager("test-secret", time.Minute)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, _, err := expired.Issue(shared.AdminIdentity())
		require.NoError(t, err)

		_, err = m.Parse(old)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.Error(t, err)
	})
}
