package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/priyanshujain/buildsource/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleClientOptions_NoCredentials(t *testing.T) {
	opts, err := auth.GoogleClientOptions(context.Background(), auth.GoogleAuthOptions{})
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestGoogleClientOptions_EmptyEnvVar(t *testing.T) {
	t.Setenv("BUILDSOURCE_TEST_CREDS", "")

	opts, err := auth.GoogleClientOptions(context.Background(), auth.GoogleAuthOptions{CredentialsEnvVar: "BUILDSOURCE_TEST_CREDS"})
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestGoogleClientOptions_MissingFile(t *testing.T) {
	_, err := auth.GoogleClientOptions(context.Background(), auth.GoogleAuthOptions{
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestGoogleClientOptions_InvalidJSON(t *testing.T) {
	_, err := auth.GoogleClientOptions(context.Background(), auth.GoogleAuthOptions{
		CredentialsJSON: []byte("not json"),
	})
	assert.Error(t, err)
}
