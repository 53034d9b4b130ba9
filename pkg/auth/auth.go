// Package auth implements local accounts and session tokens. Protected admin
// views ask for the current session once per navigation; the absence of a
// session is the only trigger for routing to the login view.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitrin/vitrin-cli/internal/logging"
	"github.com/vitrin/vitrin-cli/pkg/models"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// Session is the decoded state of a valid session token.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type sessionFile struct {
	Token string `json:"token"`
}

// Service issues and validates sessions against the user store.
type Service struct {
	store       store.Store
	secret      []byte
	sessionPath string
	ttl         time.Duration
}

func NewService(s store.Store, secret []byte, sessionPath string, ttl time.Duration) *Service {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Service{store: s, secret: secret, sessionPath: sessionPath, ttl: ttl}
}

// Signup creates a new account. The password is salted and hashed with
// bcrypt; the plaintext never reaches the store.
func (s *Service) Signup(ctx context.Context, name, phone, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.store.CreateUser(ctx, models.User{
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if store.IsPermissionDenied(err) {
			return models.User{}, err
		}
		// A unique-constraint failure on email is the common case.
		return models.User{}, ErrEmailTaken
	}

	logging.L().Info("account created", zap.String("email", email))
	return user, nil
}

// Login verifies the credentials, issues a session token, and persists it.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   user.ID,
		Audience:  user.Email,
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("cannot issue token: %w", err)
	}

	content, err := json.Marshal(sessionFile{Token: signed})
	if err != nil {
		return nil, fmt.Errorf("cannot encode session: %w", err)
	}
	if err := os.WriteFile(s.sessionPath, content, 0600); err != nil {
		return nil, fmt.Errorf("cannot persist session: %w", err)
	}

	logging.L().Info("login", zap.String("email", email))
	return &Session{UserID: user.ID, Email: user.Email, ExpiresAt: expiresAt}, nil
}

// GetSession returns the active session, or (nil, nil) when there is none.
// Expired or tampered tokens count as no session, not as an error.
func (s *Service) GetSession() (*Session, error) {
	content, err := os.ReadFile(s.sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("cannot read session: %w", err)
	}

	var sf sessionFile
	if err := json.Unmarshal(content, &sf); err != nil {
		return nil, nil
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(sf.Token, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, nil
	}

	return &Session{
		UserID:    claims.Subject,
		Email:     claims.Audience,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// Logout discards the persisted session. Logging out twice is fine.
func (s *Service) Logout() error {
	if err := os.Remove(s.sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove session: %w", err)
	}
	return nil
}
