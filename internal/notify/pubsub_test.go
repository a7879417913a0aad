package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	msg, err := newMessage(Event{Name: "app", Key: "cfn/app/template.json", Digest: "sha256:abc"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "app", "key": "cfn/app/template.json", "digest": "sha256:abc"}`, string(msg.Data))
	assert.Equal(t, map[string]string{"name": "app", "digest": "sha256:abc"}, msg.Attributes)
}
