package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"bellator/internal/auth"
	apperrors "bellator/internal/errors"
	"bellator/internal/model"
	"bellator/internal/repository"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, credential checks and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password, phone string) (uint, error)
	// Login authenticates the credentials, opens a session and issues a token
	// bound to it. Unknown email and wrong password fail identically.
	Login(ctx context.Context, email, password string) (user *model.User, token, sessionID string, err error)
	Logout(ctx context.Context, sessionID string) (bool, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// LiveSession returns the session if it exists and is unexpired, nil
	// otherwise. Expired rows are deleted lazily on lookup.
	LiveSession(ctx context.Context, sessionID string) (*model.Session, error)
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	jwt      *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, jwt *auth.JWTService) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
	}
}

// NormalizeEmail lowercases and trims an address; uniqueness is enforced on
// the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates and creates a member account, returning its id.
func (s *authService) Register(ctx context.Context, name, email, password, phone string) (uint, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return 0, apperrors.ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return 0, apperrors.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return 0, apperrors.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         model.RoleMember,
		Phone:        strings.TrimSpace(phone),
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// ErrDuplicateEmail passes through from the unique index.
		return 0, err
	}
	return user.ID, nil
}

// authenticate resolves active-user credentials to a user, or
// ErrInvalidCredentials. Lookup miss and hash mismatch are indistinguishable.
func (s *authService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindActiveByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, string, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}

	sessionID, err := auth.NewSessionID()
	if err != nil {
		return nil, "", "", fmt.Errorf("generate session id: %w", err)
	}
	session := &model.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(auth.TokenExpiry),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", "", fmt.Errorf("create session: %w", err)
	}

	token, err := s.jwt.Issue(user, sessionID)
	if err != nil {
		return nil, "", "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, sessionID, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *authService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindActiveByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) LiveSession(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if session.Expired(time.Now()) {
		// Lazy expiry: the row is inert either way, reclaim it now.
		_, _ = s.sessions.Delete(ctx, sessionID)
		return nil, nil
	}
	return session, nil
}
