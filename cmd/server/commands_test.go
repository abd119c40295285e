package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/medkeeper/internal/server/handlers"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "--secret", "k", "--user-id", "12", "--ttl", "1h")
	require.NoError(t, err)

	claims, err := handlers.ValidateAccessToken(handlers.JWTConfig{Secret: []byte("k")}, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, int64(12), claims.UserID)
	assert.Equal(t, handlers.DefaultIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenCommand_SecretFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(`jwt_secret = "from-file"`), 0o600))

	out, err := run(t, "token", "--config", path, "--user-id", "3")
	require.NoError(t, err)

	_, err = handlers.ValidateAccessToken(handlers.JWTConfig{Secret: []byte("from-file")}, strings.TrimSpace(out))
	require.NoError(t, err)
}

func TestTokenCommand_Errors(t *testing.T) {
	_, err := run(t, "token", "--user-id", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")

	_, err = run(t, "token", "--secret", "k", "--user-id", "0")
	require.Error(t, err)

	_, err = run(t, "token", "--secret", "k")
	require.Error(t, err, "--user-id is required")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "medkeeper server")
	assert.Contains(t, out, "Version:    dev")
}

func TestServeCommand_BadConfig(t *testing.T) {
	_, err := run(t, "serve", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
