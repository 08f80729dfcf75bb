package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"bellator/internal/auth"
	apperrors "bellator/internal/errors"
	"bellator/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindActiveByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestAuthService(users *MockUserRepository, sessions *MockSessionRepository) AuthService {
	return NewAuthService(users, sessions, auth.NewJWTService("test-secret"))
}

func activeUser(password string) *model.User {
	hash, _ := auth.HashPassword(password)
	return &model.User{
		ID:           42,
		Email:        "ann@example.com",
		Name:         "Ann",
		PasswordHash: hash,
		Role:         model.RoleMember,
		Active:       true,
	}
}

func TestRegister_Success(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(users, sessions)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "ann@example.com" &&
			u.Name == "Ann" &&
			u.Role == model.RoleMember &&
			u.Active &&
			auth.CheckPassword("secret123", u.PasswordHash)
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 42
	}).Return(nil)

	id, err := svc.Register(context.Background(), " Ann ", " Ann@Example.COM ", "secret123", "")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
	users.AssertExpectations(t)
}

func TestRegister_ValidationFailures(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionRepository))
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "ann@example.com", "secret123", "")
	assert.ErrorIs(t, err, apperrors.ErrMissingFields)

	_, err = svc.Register(ctx, "Ann", "not-an-email", "secret123", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = svc.Register(ctx, "Ann", "ann@example.com", "short", "")
	assert.ErrorIs(t, err, apperrors.ErrPasswordTooShort)

	// Nothing touched storage.
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionRepository))

	users.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "secret123", "")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(users, sessions)

	stored := activeUser("secret123")
	users.On("FindActiveByEmail", mock.Anything, "ann@example.com").Return(stored, nil)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.UserID == stored.ID && len(s.ID) == 64 && s.ExpiresAt.After(time.Now())
	})).Return(nil)

	user, token, sessionID, err := svc.Login(context.Background(), "Ann@Example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.NotEmpty(t, sessionID)

	// The token carries the identity and is bound to the session.
	claims := auth.NewJWTService("test-secret").Verify(token)
	assert.NotNil(t, claims)
	assert.Equal(t, stored.ID, claims.UserID)
	assert.Equal(t, stored.Email, claims.Email)
	assert.Equal(t, sessionID, claims.ID)
	sessions.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(users, sessions)

	users.On("FindActiveByEmail", mock.Anything, "ann@example.com").Return(activeUser("secret123"), nil)

	_, _, _, err := svc.Login(context.Background(), "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionRepository))

	users.On("FindActiveByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123")
	// Same failure as a wrong password; callers cannot tell them apart.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(new(MockUserRepository), sessions)

	sessions.On("Delete", mock.Anything, "session-1").Return(true, nil).Once()
	sessions.On("Delete", mock.Anything, "session-2").Return(false, nil).Once()

	existed, err := svc.Logout(context.Background(), "session-1")
	assert.NoError(t, err)
	assert.True(t, existed)

	existed, err = svc.Logout(context.Background(), "session-2")
	assert.NoError(t, err)
	assert.False(t, existed)
}

func TestLiveSession(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(new(MockUserRepository), sessions)
	ctx := context.Background()

	live := &model.Session{ID: "live", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}
	sessions.On("FindByID", ctx, "live").Return(live, nil)

	got, err := svc.LiveSession(ctx, "live")
	assert.NoError(t, err)
	assert.Equal(t, live, got)
}

func TestLiveSession_ExpiredIsAbsent(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(new(MockUserRepository), sessions)
	ctx := context.Background()

	expired := &model.Session{ID: "old", UserID: 42, ExpiresAt: time.Now().Add(-time.Minute)}
	sessions.On("FindByID", ctx, "old").Return(expired, nil)
	sessions.On("Delete", ctx, "old").Return(true, nil)

	got, err := svc.LiveSession(ctx, "old")
	assert.NoError(t, err)
	assert.Nil(t, got)
	// Lazy expiry reclaims the row.
	sessions.AssertCalled(t, "Delete", ctx, "old")
}

func TestLiveSession_Missing(t *testing.T) {
	sessions := new(MockSessionRepository)
	svc := newTestAuthService(new(MockUserRepository), sessions)
	ctx := context.Background()

	sessions.On("FindByID", ctx, "gone").Return(nil, gorm.ErrRecordNotFound)

	got, err := svc.LiveSession(ctx, "gone")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUser_InactiveBehavesAsAbsent(t *testing.T) {
	users := new(MockUserRepository)
	svc := newTestAuthService(users, new(MockSessionRepository))

	// The repository only surfaces active users; a deactivated account comes
	// back as record-not-found and the service reports nil, not an error.
	users.On("FindActiveByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	user, err := svc.GetUser(context.Background(), 9)
	assert.NoError(t, err)
	assert.Nil(t, user)
}
