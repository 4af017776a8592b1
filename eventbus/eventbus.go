package eventbus

import (
	"context"
	"encoding/json"
)

// TopicPostEvents is the base topic for post lifecycle notifications.
const TopicPostEvents = "content-planner.post.events"

// Event is the payload envelope published to Kafka.
type Event struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

// Publisher abstracts event publishing so the service layer works the same
// with Kafka or with no broker configured.
type Publisher interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, topic string, event Event) error { return nil }
func (NoopPublisher) Close()                                                       {}
