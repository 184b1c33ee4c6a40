package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.NotContains(t, hash, "correct horse")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw1")
	require.NoError(t, err)
	second, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	ok, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("pw2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_BadFormat(t *testing.T) {
	_, err := VerifyPassword("pw", "not-a-hash")
	assert.Error(t, err)

	_, err = VerifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$abc$def")
	assert.Error(t, err)
}
