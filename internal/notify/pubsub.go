package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/priyanshujain/buildsource/internal/auth"
)

// Event announces that a template was published.
type Event struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	Digest string `json:"digest"`
}

type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

func NewPublisher(ctx context.Context, projectID, topicID string, opts auth.GoogleAuthOptions) (*Publisher, error) {
	clientOpts, err := auth.GoogleClientOptions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load google credentials: %w", err)
	}

	client, err := pubsub.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return &Publisher{
		client: client,
		topic:  client.Topic(topicID),
	}, nil
}

// Publish blocks until the server acknowledges the message and returns its id.
func (p *Publisher) Publish(ctx context.Context, e Event) (string, error) {
	msg, err := newMessage(e)
	if err != nil {
		return "", err
	}

	id, err := p.topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to publish event for %s: %w", e.Name, err)
	}
	return id, nil
}

func (p *Publisher) Close() {
	p.topic.Stop()
	p.client.Close()
}

func newMessage(e Event) (*pubsub.Message, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode event: %w", err)
	}
	return &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"name":   e.Name,
			"digest": e.Digest,
		},
	}, nil
}
