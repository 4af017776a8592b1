package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/eventbus"
	"content-planner/events"
	"content-planner/generator"
	"content-planner/logger"
	"content-planner/models"
)

// StaleGenerationTimeout is how long a post may sit in generating before any
// list read reverts it to idea. Guards against orchestrator crashes and
// provider hangs leaving a post permanently locked.
const StaleGenerationTimeout = 5 * time.Minute

// PostStore is the persistence surface the service needs.
type PostStore interface {
	FindByID(ctx context.Context, postID interface{}) (*models.Post, error)
	ListByProject(ctx context.Context, projectID interface{}, statusFilter []models.Status) ([]models.Post, error)
	ReclaimStale(ctx context.Context, projectID interface{}, cutoff time.Time) (int64, error)
	UpdateStatus(ctx context.Context, postID interface{}, status models.Status) error
	SetViewedAtOnce(ctx context.Context, postID interface{}) error
	Delete(ctx context.Context, postID interface{}) error
}

// ContentStore reads generated article bodies.
type ContentStore interface {
	FindByRef(ctx context.Context, ref string) (*models.PostContent, error)
}

// GenerationRunner runs one end-to-end generation. Implemented by
// generator.Orchestrator.
type GenerationRunner interface {
	Generate(ctx context.Context, postID interface{}) error
}

// PostService implements the operations exposed to the dashboard and
// automation callers.
type PostService struct {
	posts     PostStore
	contents  ContentStore
	runner    GenerationRunner
	publisher eventbus.Publisher
}

func NewPostService(posts PostStore, contents ContentStore, runner GenerationRunner, publisher eventbus.Publisher) *PostService {
	if publisher == nil {
		publisher = eventbus.NoopPublisher{}
	}
	return &PostService{posts: posts, contents: contents, runner: runner, publisher: publisher}
}

// GenerationOutcome is the structured result of a generation request.
type GenerationOutcome struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RequestGeneration runs generation for one post. A second concurrent call
// on the same post is rejected by the claim, not duplicated.
func (s *PostService) RequestGeneration(ctx context.Context, postID interface{}) GenerationOutcome {
	if err := s.runner.Generate(ctx, postID); err != nil {
		code := generator.CodeOf(err)
		logger.ErrorWithFields("generation failed", logger.Fields{
			"post_id": postID,
			"code":    string(code),
			"error":   err.Error(),
		})
		return GenerationOutcome{Success: false, Error: string(code)}
	}

	if post, err := s.posts.FindByID(ctx, postID); err == nil {
		s.emit(ctx, events.PostGenerated, post)
	}
	return GenerationOutcome{Success: true}
}

// List returns a project's posts, reclaiming stale generating posts first so
// a crashed generation never stays locked past the timeout window. The
// reclaim is a conditional bulk update and safe under concurrent readers.
func (s *PostService) List(ctx context.Context, projectID interface{}, statusFilter []models.Status) ([]models.Post, error) {
	cutoff := time.Now().Add(-StaleGenerationTimeout)
	reclaimed, err := s.posts.ReclaimStale(ctx, projectID, cutoff)
	if err != nil {
		return nil, err
	}
	if reclaimed > 0 {
		logger.InfoWithFields("reclaimed stale generating posts", logger.Fields{
			"project_id": projectID,
			"count":      reclaimed,
		})
	}
	return s.posts.ListByProject(ctx, projectID, statusFilter)
}

// PublishResult reports a bulk publish: posts without generated content are
// skipped, not failed.
type PublishResult struct {
	Published int `json:"published"`
	Skipped   int `json:"skipped"`
}

// Publish moves each post to published where the publish guard allows it.
func (s *PostService) Publish(ctx context.Context, postIDs []primitive.ObjectID) (PublishResult, error) {
	var res PublishResult
	for _, id := range postIDs {
		post, err := s.posts.FindByID(ctx, id)
		if err != nil {
			res.Skipped++
			continue
		}
		next, err := models.Next(post.Status, models.EventPublish, post.HasContent())
		if err != nil {
			res.Skipped++
			continue
		}
		if err := s.posts.UpdateStatus(ctx, id, next); err != nil {
			return res, err
		}
		res.Published++
		post.Status = next
		s.emit(ctx, events.PostPublished, post)
	}
	return res, nil
}

// RestoreResult reports a bulk restore.
type RestoreResult struct {
	Restored int `json:"restored"`
}

// Restore brings posts back from saved, trash or published. The target state
// is drafted when generated content exists, idea otherwise.
func (s *PostService) Restore(ctx context.Context, postIDs []primitive.ObjectID) (RestoreResult, error) {
	var res RestoreResult
	for _, id := range postIDs {
		post, err := s.posts.FindByID(ctx, id)
		if err != nil {
			continue
		}
		ev := models.EventRestore
		if post.Status == models.StatusPublished {
			ev = models.EventUnpublish
		}
		next, err := models.Next(post.Status, ev, post.HasContent())
		if err != nil {
			continue
		}
		if err := s.posts.UpdateStatus(ctx, id, next); err != nil {
			return res, err
		}
		res.Restored++
	}
	return res, nil
}

// SaveForLater moves posts into saved where allowed.
func (s *PostService) SaveForLater(ctx context.Context, postIDs []primitive.ObjectID) (int, error) {
	return s.applyEvent(ctx, postIDs, models.EventSave, "")
}

// Approve moves drafted posts into approved.
func (s *PostService) Approve(ctx context.Context, postIDs []primitive.ObjectID) (int, error) {
	return s.applyEvent(ctx, postIDs, models.EventApprove, "")
}

// Trash soft-deletes posts. Allowed from any non-trash state.
func (s *PostService) Trash(ctx context.Context, postIDs []primitive.ObjectID) (int, error) {
	return s.applyEvent(ctx, postIDs, models.EventTrash, events.PostTrashed)
}

func (s *PostService) applyEvent(ctx context.Context, postIDs []primitive.ObjectID, ev models.Event, notify events.EventType) (int, error) {
	changed := 0
	for _, id := range postIDs {
		post, err := s.posts.FindByID(ctx, id)
		if err != nil {
			continue
		}
		next, err := models.Next(post.Status, ev, post.HasContent())
		if err != nil {
			continue
		}
		if err := s.posts.UpdateStatus(ctx, id, next); err != nil {
			return changed, err
		}
		changed++
		if notify != "" {
			post.Status = next
			s.emit(ctx, notify, post)
		}
	}
	return changed, nil
}

// Delete permanently removes a post. Destructive and outside the state
// machine; trash is the recoverable path.
func (s *PostService) Delete(ctx context.Context, postID interface{}) error {
	return s.posts.Delete(ctx, postID)
}

// ErrNoContentYet is returned when a post's content is requested before any
// generation has completed.
var ErrNoContentYet = errors.New("post has no generated content yet")

// GetContent loads a post's generated body and stamps viewed_at on first
// open.
func (s *PostService) GetContent(ctx context.Context, postID interface{}) (*models.Post, *models.PostContent, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	if !post.HasContent() {
		return nil, nil, ErrNoContentYet
	}
	content, err := s.contents.FindByRef(ctx, post.ContentRef)
	if err != nil {
		return nil, nil, err
	}
	if err := s.posts.SetViewedAtOnce(ctx, postID); err != nil {
		logger.Log.Warnf("failed to stamp viewed_at for post %v: %v", postID, err)
	}
	return post, content, nil
}

// emit publishes a lifecycle notification. Never fatal.
func (s *PostService) emit(ctx context.Context, typ events.EventType, post *models.Post) {
	ev := events.PostLifecycleEvent{
		BaseEvent: events.BaseEvent{
			ID:        uuid.New().String(),
			Type:      typ,
			Timestamp: time.Now(),
			Source:    "content-planner",
		},
		PostID:    post.ID,
		ProjectID: post.ProjectID,
		Status:    post.Status,
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Warnf("failed to marshal %s event: %v", typ, err)
		return
	}
	if err := s.publisher.Publish(ctx, eventbus.TopicPostEvents, eventbus.Event{
		ID:      ev.ID,
		Payload: payload,
	}); err != nil {
		logger.Log.Warnf("failed to publish %s event: %v", typ, err)
	}
}
