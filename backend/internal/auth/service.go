package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sirms/backend/internal/shared"
)

// ErrInvalidCredentials is returned when a login does not match any account.
var ErrInvalidCredentials = errors.New("invalid identification or password")

const tokenIssuer = "sirms"

// StudentVerifier checks a student's password against the record store.
type StudentVerifier interface {
	VerifyCredentials(ctx context.Context, studentID, password string) (bool, error)
}

// ============================================================================
// Authenticator
// ============================================================================

// Authenticator resolves login attempts to an Identity.
type Authenticator struct {
	adminSecret string
	admin       Credential
	students    StudentVerifier
	logger      *zap.Logger
}

// NewAuthenticator builds an Authenticator from the gateway security settings.
// A configured AdminPasswordHash switches the admin check to bcrypt.
func NewAuthenticator(cfg shared.SecurityConfig, students StudentVerifier, logger *zap.Logger) *Authenticator {
	a := &Authenticator{
		adminSecret: cfg.AdminPassword,
		admin:       PlaintextCredential{},
		students:    students,
		logger:      logger,
	}
	if cfg.AdminPasswordHash != "" {
		a.adminSecret = cfg.AdminPasswordHash
		a.admin = BcryptCredential{}
	}
	return a
}

// Authenticate checks a login attempt. The admin role ignores username; any
// other role is treated as a student login keyed by the uppercased username.
func (a *Authenticator) Authenticate(ctx context.Context, role, username, password string) (shared.Identity, error) {
	if shared.Role(role) == shared.RoleAdmin {
		if a.admin.Verify(a.adminSecret, password) {
			return shared.AdminIdentity(), nil
		}
		a.logger.Warn("admin login rejected")
		return shared.Anonymous, ErrInvalidCredentials
	}

	id := shared.NormalizeID(username)
	if id == "" || password == "" {
		return shared.Anonymous, ErrInvalidCredentials
	}

	ok, err := a.students.VerifyCredentials(ctx, id, password)
	if err != nil {
		return shared.Anonymous, fmt.Errorf("verify credentials: %w", err)
	}
	if !ok {
		a.logger.Warn("student login rejected", zap.String("student_id", id))
		return shared.Anonymous, ErrInvalidCredentials
	}
	return shared.StudentIdentity(id), nil
}

// ============================================================================
// Sessions
// ============================================================================

// SessionClaims are the JWT claims carried in the session cookie.
type SessionClaims struct {
	Role      string `json:"role"`
	StudentID string `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and parses signed session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a SessionManager signing with secret.
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed token for the identity.
func (m *SessionManager) Issue(identity shared.Identity) (string, time.Time, error) {
	if identity.IsAnonymous() {
		return "", time.Time{}, fmt.Errorf("cannot issue a session for an anonymous caller")
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := SessionClaims{
		Role:      string(identity.Role),
		StudentID: identity.StudentID,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps tokens unique even when issued in the same second
			ID:        uuid.NewString(),
			Subject:   subject(identity),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse validates the token signature and expiry and returns its identity.
func (m *SessionManager) Parse(tokenString string) (shared.Identity, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return shared.Anonymous, err
	}
	if !token.Valid {
		return shared.Anonymous, fmt.Errorf("invalid session token")
	}

	switch shared.Role(claims.Role) {
	case shared.RoleAdmin:
		return shared.AdminIdentity(), nil
	case shared.RoleStudent:
		if claims.StudentID == "" {
			return shared.Anonymous, fmt.Errorf("student session without id")
		}
		return shared.StudentIdentity(claims.StudentID), nil
	default:
		return shared.Anonymous, fmt.Errorf("unknown session role %q", claims.Role)
	}
}

func subject(identity shared.Identity) string {
	if identity.IsAdmin() {
		return string(shared.RoleAdmin)
	}
	return identity.StudentID
}
