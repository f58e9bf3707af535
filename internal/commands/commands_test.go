package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"certportal/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashPasswordFromArgument(t *testing.T) {
	out, err := execute(t, "", "hash-password", "s3cret")
	require.NoError(t, err)

	digest := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"), digest)

	ok, err := auth.VerifyPassword("s3cret", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPasswordFromStdin(t *testing.T) {
	out, err := execute(t, "from-stdin\n", "hash-password")
	require.NoError(t, err)

	ok, err := auth.VerifyPassword("from-stdin", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := execute(t, "\n", "hash-password")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "certportal version dev"), out)
}

func TestServeRejectsMissingConfigFile(t *testing.T) {
	_, err := execute(t, "", "serve", "--config", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
