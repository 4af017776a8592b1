package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/models"
)

// EventType identifies a post lifecycle notification.
type EventType string

const (
	PostGenerated EventType = "post.generated"
	PostPublished EventType = "post.published"
	PostTrashed   EventType = "post.trashed"
)

// BaseEvent carries the envelope fields shared by all events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// PostLifecycleEvent notifies downstream consumers of a post status change.
// Pure fan-out: nothing in the pipeline waits on these.
type PostLifecycleEvent struct {
	BaseEvent
	PostID    primitive.ObjectID `json:"post_id"`
	ProjectID primitive.ObjectID `json:"project_id"`
	Status    models.Status      `json:"status"`
}
