package buildsource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/priyanshujain/buildsource/internal/auth"
	"github.com/priyanshujain/buildsource/internal/config"
	"github.com/priyanshujain/buildsource/internal/drift"
	"github.com/priyanshujain/buildsource/internal/notify"
	"github.com/priyanshujain/buildsource/internal/state"
	"github.com/priyanshujain/buildsource/internal/synth"
	"github.com/priyanshujain/buildsource/internal/template"
)

// Client is the main buildsource client
type Client struct {
	Config config.Config
	logger *slog.Logger
}

// NewClient creates a new client with the provided configuration
func NewClient(cfg config.Config) *Client {
	return &Client{
		Config: cfg,
		logger: slog.Default(),
	}
}

// DefaultClient creates a client with configuration loaded from the default path
func DefaultClient() (*Client, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewClient(cfg), nil
}

// WithLogger replaces the logger used by the client
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// Synthesize builds the template for every configured project
func (c *Client) Synthesize(ctx context.Context, format template.Format) (*synth.Result, error) {
	svc := synth.NewService(synth.Options{Config: c.Config, Format: format}, c.logger)
	return svc.Run(ctx)
}

// Write synthesizes and writes the template into the configured output path
func (c *Client) Write(ctx context.Context, format template.Format) (string, error) {
	result, err := c.Synthesize(ctx, format)
	if err != nil {
		return "", err
	}

	absOutputPath, err := filepath.Abs(c.Config.ProjectPath())
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	if err := os.MkdirAll(absOutputPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(absOutputPath, fmt.Sprintf("%s.template.%s", c.Config.Name, result.Format))
	if err := os.WriteFile(path, result.Rendered, 0644); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}

	c.logger.Info("Template written", "path", path, "digest", result.Digest)
	return path, nil
}

// Publish synthesizes the template, stores it in the configured backend and
// announces it on the notification topic when one is configured
func (c *Client) Publish(ctx context.Context, format template.Format) (string, error) {
	result, err := c.Synthesize(ctx, format)
	if err != nil {
		return "", err
	}

	backend, err := c.backend(ctx)
	if err != nil {
		return "", err
	}
	defer backend.Close()

	key := state.Key(c.Config.Backend.Prefix, c.Config.Name, result.Format)
	if err := backend.Put(ctx, key, result.Rendered); err != nil {
		return "", fmt.Errorf("failed to publish template: %w", err)
	}
	c.logger.Info("Template published",
		"backend", c.Config.Backend.Type,
		"key", key,
		"digest", result.Digest)

	if n := c.Config.Notify; n != nil {
		publisher, err := notify.NewPublisher(ctx, n.Project, n.Topic, auth.GoogleAuthOptions{CredentialsFile: n.Credentials})
		if err != nil {
			return "", fmt.Errorf("failed to create publisher: %w", err)
		}
		defer publisher.Close()

		id, err := publisher.Publish(ctx, notify.Event{Name: c.Config.Name, Key: key, Digest: result.Digest})
		if err != nil {
			return "", err
		}
		c.logger.Info("Publish notification sent", "topic", n.Topic, "message", id)
	}

	return key, nil
}

// Diff compares the synthesized template with the published one
func (c *Client) Diff(ctx context.Context, format template.Format) ([]*drift.DriftResult, error) {
	result, err := c.Synthesize(ctx, format)
	if err != nil {
		return nil, err
	}

	backend, err := c.backend(ctx)
	if err != nil {
		return nil, err
	}
	defer backend.Close()

	current, err := template.Normalize(result.Rendered, result.Format)
	if err != nil {
		return nil, err
	}

	var published map[string]any
	key := state.Key(c.Config.Backend.Prefix, c.Config.Name, result.Format)
	data, err := backend.Get(ctx, key)
	switch {
	case errors.Is(err, state.ErrNotFound):
		c.logger.Info("Nothing published yet", "key", key)
	case err != nil:
		return nil, fmt.Errorf("failed to fetch published template: %w", err)
	default:
		published, err = template.Normalize(data, result.Format)
		if err != nil {
			return nil, err
		}
	}

	return drift.NewDetector(c.logger).Detect(ctx, current, published)
}

func (c *Client) backend(ctx context.Context) (state.Backend, error) {
	root := filepath.Join(c.Config.ProjectPath(), "published")
	backend, err := state.New(ctx, c.Config.Backend, root)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize backend: %w", err)
	}
	return backend, nil
}
