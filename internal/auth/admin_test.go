package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))

	ok, err := VerifyPassword("correct horse battery staple", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "each digest has its own salt")
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-digest")
	assert.Error(t, err)
}

func TestAdminCredentialsVerify(t *testing.T) {
	digest, err := HashPassword("s3cret")
	require.NoError(t, err)

	creds := AdminCredentials{Username: "admin", PasswordHash: digest}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{name: "valid", username: "admin", password: "s3cret", want: true},
		{name: "wrong username", username: "root", password: "s3cret", want: false},
		{name: "wrong password", username: "admin", password: "guess", want: false},
		{name: "empty", username: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := creds.Verify(tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
