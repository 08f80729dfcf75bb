package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"bellator/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:    42,
		Email: "ann@example.com",
		Name:  "Ann",
		Role:  model.RoleMember,
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue(testUser(), "session-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims := svc.Verify(token)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, model.RoleMember, claims.Role)
	assert.Equal(t, "session-1", claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_VerifyTampered(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue(testUser(), "session-1")
	assert.NoError(t, err)

	assert.Nil(t, svc.Verify(token+"x"))
	assert.Nil(t, svc.Verify("not.a.token"))
	assert.Nil(t, svc.Verify(""))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Issue(testUser(), "session-1")
	assert.NoError(t, err)

	assert.Nil(t, NewJWTService("secret-b").Verify(token))
}

func TestJWTService_VerifyExpired(t *testing.T) {
	svc := NewJWTService("test-secret")

	claims := &Claims{
		UserID: 42,
		Email:  "ann@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "session-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	assert.Nil(t, svc.Verify(expired))
}

func TestNewSessionID(t *testing.T) {
	first, err := NewSessionID()
	assert.NoError(t, err)
	second, err := NewSessionID()
	assert.NoError(t, err)

	// 32 random bytes, hex encoded.
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
