package state

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/priyanshujain/buildsource/internal/auth"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/template"
)

var ErrNotFound = errors.New("template not found")

// Backend stores published templates.
type Backend interface {
	// Get returns ErrNotFound when nothing was published under key.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Close() error
}

// Key is the object key a template named name is published under.
func Key(prefix, name string, f template.Format) string {
	return fmt.Sprintf("%s%s/template.%s", prefix, name, f)
}

func New(ctx context.Context, b providers.Backend, root string) (Backend, error) {
	switch b.Type {
	case providers.BackendTypeS3:
		return NewS3Backend(ctx, b.Bucket, auth.AWSAuthOptions{Region: b.Region, Profile: b.Profile})
	case providers.BackendTypeGCS:
		return NewGCSBackend(ctx, auth.GoogleAuthOptions{CredentialsFile: b.Credentials}, b.Bucket)
	case providers.BackendTypeLocal, "":
		return NewLocalBackend(root), nil
	}
	return nil, fmt.Errorf("unsupported backend: %s", b.Type)
}

func contentType(key string) string {
	if strings.HasSuffix(key, ".yaml") {
		return "application/x-yaml"
	}
	return "application/json"
}
