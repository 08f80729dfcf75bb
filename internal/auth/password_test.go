package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, CheckPassword("secret123", digest))
	assert.False(t, CheckPassword("secret124", digest))
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("secret123")
	assert.NoError(t, err)
	second, err := HashPassword("secret123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("secret123", first))
	assert.True(t, CheckPassword("secret123", second))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	// A garbage digest is a mismatch, never a panic or error.
	assert.False(t, CheckPassword("secret123", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("secret123", ""))
}
