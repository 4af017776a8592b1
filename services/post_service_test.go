package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/eventbus"
	"content-planner/generator"
	"content-planner/models"
)

// memPostStore is an in-memory PostStore with the same conditional semantics
// as the Mongo repository.
type memPostStore struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*models.Post
}

func newMemPostStore(posts ...*models.Post) *memPostStore {
	s := &memPostStore{posts: make(map[primitive.ObjectID]*models.Post)}
	for _, p := range posts {
		s.posts[p.ID] = p
	}
	return s
}

var errNotFound = errors.New("post not found")

func (s *memPostStore) FindByID(_ context.Context, postID interface{}) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID.(primitive.ObjectID)]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memPostStore) ListByProject(_ context.Context, projectID interface{}, statusFilter []models.Status) ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Post
	for _, p := range s.posts {
		if p.ProjectID != projectID.(primitive.ObjectID) {
			continue
		}
		if len(statusFilter) > 0 {
			match := false
			for _, st := range statusFilter {
				if p.Status == st {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *memPostStore) ReclaimStale(_ context.Context, projectID interface{}, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, p := range s.posts {
		if p.ProjectID == projectID.(primitive.ObjectID) &&
			p.Status == models.StatusGenerating && p.UpdatedAt.Before(cutoff) {
			p.Status = models.StatusIdea
			p.UpdatedAt = time.Now()
			n++
		}
	}
	return n, nil
}

func (s *memPostStore) UpdateStatus(_ context.Context, postID interface{}, status models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID.(primitive.ObjectID)]
	if !ok {
		return errNotFound
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

func (s *memPostStore) SetViewedAtOnce(_ context.Context, postID interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[postID.(primitive.ObjectID)]
	if !ok {
		return errNotFound
	}
	if p.ViewedAt == nil {
		now := time.Now()
		p.ViewedAt = &now
	}
	return nil
}

func (s *memPostStore) Delete(_ context.Context, postID interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, postID.(primitive.ObjectID))
	return nil
}

func (s *memPostStore) get(id primitive.ObjectID) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.posts[id]
}

type memContentStore struct {
	byRef map[string]*models.PostContent
}

func (s *memContentStore) FindByRef(_ context.Context, ref string) (*models.PostContent, error) {
	c, ok := s.byRef[ref]
	if !ok {
		return nil, errors.New("content not found")
	}
	return c, nil
}

type stubRunner struct {
	err   error
	calls int
}

func (r *stubRunner) Generate(_ context.Context, _ interface{}) error {
	r.calls++
	return r.err
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
	topics []string
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, ev eventbus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, ev)
	return nil
}

func (p *capturingPublisher) Close() {}

func (p *capturingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func servicePost(projectID primitive.ObjectID, status models.Status, contentRef string) *models.Post {
	return &models.Post{
		ID:         primitive.NewObjectID(),
		ProjectID:  projectID,
		Status:     status,
		ContentRef: contentRef,
		ImageRef:   models.ImageRefPlaceholder,
		UpdatedAt:  time.Now(),
	}
}

func TestListReclaimsOnlyStaleGenerating(t *testing.T) {
	projectID := primitive.NewObjectID()

	stale := servicePost(projectID, models.StatusGenerating, "")
	stale.UpdatedAt = time.Now().Add(-6 * time.Minute)
	fresh := servicePost(projectID, models.StatusGenerating, "")
	fresh.UpdatedAt = time.Now().Add(-4 * time.Minute)
	drafted := servicePost(projectID, models.StatusDrafted, "ref-1")
	drafted.UpdatedAt = time.Now().Add(-10 * time.Minute)

	store := newMemPostStore(stale, fresh, drafted)
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, nil)

	posts, err := svc.List(context.Background(), projectID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if got := store.get(stale.ID).Status; got != models.StatusIdea {
		t.Fatalf("stale post not reclaimed, status %s", got)
	}
	if got := store.get(fresh.ID).Status; got != models.StatusGenerating {
		t.Fatalf("fresh generating post reclaimed early, status %s", got)
	}
	if got := store.get(drafted.ID).Status; got != models.StatusDrafted {
		t.Fatalf("non-generating post touched by reclaim, status %s", got)
	}
}

func TestListStatusFilter(t *testing.T) {
	projectID := primitive.NewObjectID()
	store := newMemPostStore(
		servicePost(projectID, models.StatusIdea, ""),
		servicePost(projectID, models.StatusDrafted, "ref-1"),
		servicePost(projectID, models.StatusTrash, ""),
		servicePost(primitive.NewObjectID(), models.StatusIdea, ""),
	)
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, nil)

	posts, err := svc.List(context.Background(), projectID, []models.Status{models.StatusIdea, models.StatusDrafted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 filtered posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.Status == models.StatusTrash {
			t.Fatal("trash post leaked through the filter")
		}
		if p.ProjectID != projectID {
			t.Fatal("post from another project leaked through")
		}
	}
}

func TestRequestGenerationMapsFailureCodes(t *testing.T) {
	projectID := primitive.NewObjectID()
	post := servicePost(projectID, models.StatusIdea, "")
	store := newMemPostStore(post)

	runner := &stubRunner{err: &generator.GenerationError{Code: generator.CodeQuotaExceeded}}
	svc := NewPostService(store, &memContentStore{}, runner, nil)

	out := svc.RequestGeneration(context.Background(), post.ID)
	if out.Success {
		t.Fatal("expected failure outcome")
	}
	if out.Error != string(generator.CodeQuotaExceeded) {
		t.Fatalf("expected QUOTA_EXCEEDED, got %q", out.Error)
	}

	// Unclassified errors collapse to GENERATION_FAILED.
	runner.err = errors.New("boom")
	out = svc.RequestGeneration(context.Background(), post.ID)
	if out.Error != string(generator.CodeGenerationFailed) {
		t.Fatalf("expected GENERATION_FAILED, got %q", out.Error)
	}
}

func TestRequestGenerationEmitsEventOnSuccess(t *testing.T) {
	projectID := primitive.NewObjectID()
	post := servicePost(projectID, models.StatusDrafted, "ref-1")
	store := newMemPostStore(post)
	pub := &capturingPublisher{}

	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, pub)

	out := svc.RequestGeneration(context.Background(), post.ID)
	if !out.Success {
		t.Fatalf("expected success, got %q", out.Error)
	}
	if pub.count() != 1 {
		t.Fatalf("expected 1 lifecycle event, got %d", pub.count())
	}
	if pub.topics[0] != eventbus.TopicPostEvents {
		t.Fatalf("wrong topic %q", pub.topics[0])
	}
}

func TestPublishPartialSuccess(t *testing.T) {
	projectID := primitive.NewObjectID()
	withContent := servicePost(projectID, models.StatusDrafted, "ref-1")
	withoutContent := servicePost(projectID, models.StatusDrafted, "")
	approved := servicePost(projectID, models.StatusApproved, "ref-2")
	idea := servicePost(projectID, models.StatusIdea, "ref-3")

	store := newMemPostStore(withContent, withoutContent, approved, idea)
	pub := &capturingPublisher{}
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, pub)

	res, err := svc.Publish(context.Background(),
		[]primitive.ObjectID{withContent.ID, withoutContent.ID, approved.ID, idea.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Published != 2 || res.Skipped != 3 {
		t.Fatalf("expected 2 published / 3 skipped, got %d / %d", res.Published, res.Skipped)
	}
	if got := store.get(withContent.ID).Status; got != models.StatusPublished {
		t.Fatalf("expected published, got %s", got)
	}
	if got := store.get(withoutContent.ID).Status; got != models.StatusDrafted {
		t.Fatalf("post without content must stay drafted, got %s", got)
	}
	if got := store.get(idea.ID).Status; got != models.StatusIdea {
		t.Fatalf("idea post must never publish, got %s", got)
	}
	if pub.count() != 2 {
		t.Fatalf("expected 2 published events, got %d", pub.count())
	}
}

func TestRestoreTargets(t *testing.T) {
	projectID := primitive.NewObjectID()
	savedWithContent := servicePost(projectID, models.StatusSaved, "ref-1")
	savedEmpty := servicePost(projectID, models.StatusSaved, "")
	trashed := servicePost(projectID, models.StatusTrash, "")
	published := servicePost(projectID, models.StatusPublished, "ref-2")
	drafted := servicePost(projectID, models.StatusDrafted, "ref-3")

	store := newMemPostStore(savedWithContent, savedEmpty, trashed, published, drafted)
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, nil)

	res, err := svc.Restore(context.Background(),
		[]primitive.ObjectID{savedWithContent.ID, savedEmpty.ID, trashed.ID, published.ID, drafted.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Restored != 4 {
		t.Fatalf("expected 4 restored, got %d", res.Restored)
	}
	if got := store.get(savedWithContent.ID).Status; got != models.StatusDrafted {
		t.Fatalf("saved post with content should restore to drafted, got %s", got)
	}
	if got := store.get(savedEmpty.ID).Status; got != models.StatusIdea {
		t.Fatalf("saved post without content should restore to idea, got %s", got)
	}
	if got := store.get(trashed.ID).Status; got != models.StatusIdea {
		t.Fatalf("trashed post without content should restore to idea, got %s", got)
	}
	if got := store.get(published.ID).Status; got != models.StatusDrafted {
		t.Fatalf("published post should unpublish to drafted, got %s", got)
	}
	if got := store.get(drafted.ID).Status; got != models.StatusDrafted {
		t.Fatalf("drafted post should be untouched by restore, got %s", got)
	}
}

func TestTrashAndApproveCounts(t *testing.T) {
	projectID := primitive.NewObjectID()
	drafted := servicePost(projectID, models.StatusDrafted, "ref-1")
	idea := servicePost(projectID, models.StatusIdea, "")
	trashed := servicePost(projectID, models.StatusTrash, "")

	store := newMemPostStore(drafted, idea, trashed)
	pub := &capturingPublisher{}
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, pub)

	n, err := svc.Approve(context.Background(), []primitive.ObjectID{drafted.ID, idea.ID})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 approved, got %d / %v", n, err)
	}
	if got := store.get(drafted.ID).Status; got != models.StatusApproved {
		t.Fatalf("expected approved, got %s", got)
	}

	n, err = svc.Trash(context.Background(), []primitive.ObjectID{drafted.ID, idea.ID, trashed.ID})
	if err != nil || n != 2 {
		t.Fatalf("expected 2 trashed, got %d / %v", n, err)
	}
	if pub.count() != 2 {
		t.Fatalf("expected 2 trash events, got %d", pub.count())
	}
}

func TestGetContentStampsViewedAtOnce(t *testing.T) {
	projectID := primitive.NewObjectID()
	post := servicePost(projectID, models.StatusDrafted, "ref-1")
	store := newMemPostStore(post)
	contents := &memContentStore{byRef: map[string]*models.PostContent{
		"ref-1": {PostID: post.ID, HTML: "<h2>Hi</h2><p>Body.</p>"},
	}}
	svc := NewPostService(store, contents, &stubRunner{}, nil)

	_, content, err := svc.GetContent(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.HTML == "" {
		t.Fatal("empty content body")
	}

	first := store.get(post.ID).ViewedAt
	if first == nil {
		t.Fatal("viewed_at not stamped on first open")
	}

	time.Sleep(5 * time.Millisecond)
	if _, _, err := svc.GetContent(context.Background(), post.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := store.get(post.ID).ViewedAt
	if !second.Equal(*first) {
		t.Fatal("viewed_at overwritten on second open")
	}
}

func TestGetContentRequiresGeneratedContent(t *testing.T) {
	projectID := primitive.NewObjectID()
	post := servicePost(projectID, models.StatusIdea, "")
	store := newMemPostStore(post)
	svc := NewPostService(store, &memContentStore{}, &stubRunner{}, nil)

	_, _, err := svc.GetContent(context.Background(), post.ID)
	if !errors.Is(err, ErrNoContentYet) {
		t.Fatalf("expected ErrNoContentYet, got %v", err)
	}
}
