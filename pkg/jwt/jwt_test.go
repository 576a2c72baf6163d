package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "access", time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = ParseToken(secret, "refresh", token)
	assert.Error(t, err)

	_, err = ParseToken([]byte("other"), "access", token)
	assert.Error(t, err)
}
