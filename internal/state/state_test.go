package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/state"
	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "cfn/app/template.json", state.Key("cfn/", "app", template.FormatJSON))
	assert.Equal(t, "app/template.yaml", state.Key("", "app", template.FormatYAML))
}

func TestLocalBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b := state.NewLocalBackend(t.TempDir())
	defer b.Close()

	_, err := b.Get(ctx, "app/template.json")
	assert.True(t, errors.Is(err, state.ErrNotFound))

	require.NoError(t, b.Put(ctx, "app/template.json", []byte(`{"Resources":{}}`)))
	data, err := b.Get(ctx, "app/template.json")
	require.NoError(t, err)
	assert.Equal(t, `{"Resources":{}}`, string(data))
}

func TestNew_LocalAndUnsupported(t *testing.T) {
	ctx := context.Background()

	b, err := state.New(ctx, providers.Backend{Type: providers.BackendTypeLocal}, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &state.LocalBackend{}, b)

	_, err = state.New(ctx, providers.Backend{Type: "ftp"}, t.TempDir())
	assert.Error(t, err)
}
