// Package auth implements the portal's basic credential check:
// PBKDF2-HMAC-SHA256 with a per-user random salt. Nothing beyond
// login-or-not; role-based restrictions are a UI concern.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"pulsehire/internal/storage"
)

const (
	pbkdfIterations = 100_000
	keyLength       = 32
	saltLength      = 16
)

// Default first-run admin. Operators are expected to change it immediately.
const (
	DefaultAdminEmail    = "admin@pulsehire.local"
	DefaultAdminPassword = "admin"
)

var validRoles = map[string]bool{"admin": true, "recruiter": true, "hr": true, "viewer": true}

type Service struct {
	db *storage.DB
}

func NewService(db *storage.DB) *Service {
	return &Service{db: db}
}

func hashPassword(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, pbkdfIterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// CreateUser registers a login with a fresh random salt.
func (s *Service) CreateUser(ctx context.Context, email, name, role, password string) error {
	if !validRoles[role] {
		return fmt.Errorf("invalid role: %q", role)
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	return s.db.CreateUser(ctx, email, name, role,
		hashPassword(password, salt), base64.StdEncoding.EncodeToString(salt))
}

// Verify checks the credentials and returns the user, or nil when either
// the login is unknown or the password is wrong. The comparison is
// constant-time.
func (s *Service) Verify(ctx context.Context, email, password string) (*storage.User, error) {
	rec, err := s.db.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	salt, err := base64.StdEncoding.DecodeString(rec.Salt)
	if err != nil {
		return nil, fmt.Errorf("corrupt salt for %s: %w", email, err)
	}
	if !hmac.Equal([]byte(hashPassword(password, salt)), []byte(rec.PasswordHash)) {
		return nil, nil
	}
	u := rec.User
	return &u, nil
}

// SeedAdminIfEmpty creates the default admin the first time the portal
// starts with no users at all.
func (s *Service) SeedAdminIfEmpty(ctx context.Context) error {
	n, err := s.db.CountUsers(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.CreateUser(ctx, DefaultAdminEmail, "Admin", "admin", DefaultAdminPassword)
}
