package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/go-crypt/crypt"
	"github.com/go-crypt/crypt/algorithm/argon2"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword returns an encoded argon2id digest of password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hasher, err := argon2.New(
		argon2.WithProfileRFC9106LowMemory(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create argon2 hasher: %w", err)
	}

	digest, err := hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return digest.Encode(), nil
}

// VerifyPassword reports whether password matches the encoded argon2id digest.
func VerifyPassword(password, encodedDigest string) (bool, error) {
	decoder := crypt.NewDecoder()
	if err := argon2.RegisterDecoderArgon2id(decoder); err != nil {
		return false, fmt.Errorf("failed to register argon2 decoder: %w", err)
	}

	digest, err := decoder.Decode(encodedDigest)
	if err != nil {
		return false, fmt.Errorf("failed to decode password digest: %w", err)
	}

	return digest.MatchAdvanced(password)
}

// AdminCredentials checks HTTP basic auth credentials against the configured admin account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

func (c AdminCredentials) Verify(username, password string) (bool, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1

	passwordOK, err := VerifyPassword(password, c.PasswordHash)
	if err != nil {
		return false, err
	}

	return usernameOK && passwordOK, nil
}
