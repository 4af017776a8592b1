package generator

import (
	"context"
	"errors"
	"fmt"

	"content-planner/logger"
	"content-planner/models"
	"content-planner/prompts"
)

// ImageStore persists a provider image durably and returns the reference
// recorded on the post.
type ImageStore interface {
	FetchAndPersist(ctx context.Context, remote *RemoteImage) (string, error)
}

// Orchestrator drives one generation end to end. Failures after the claim
// leave the post in generating; the stale reclaimer makes it retryable after
// the timeout window.
type Orchestrator struct {
	posts    PostStore
	contexts ContextStore
	contents ContentStore
	text     TextProvider
	image    ImageProvider
	images   ImageStore
	quota    QuotaLimiter
}

func NewOrchestrator(posts PostStore, contexts ContextStore, contents ContentStore,
	text TextProvider, image ImageProvider, images ImageStore, quota QuotaLimiter) *Orchestrator {
	return &Orchestrator{
		posts:    posts,
		contexts: contexts,
		contents: contents,
		text:     text,
		image:    image,
		images:   images,
		quota:    quota,
	}
}

// claimableStatuses are the statuses a generation request may claim from.
var claimableStatuses = []models.Status{models.StatusIdea, models.StatusApproved}

// Generate runs the pipeline for one post. A nil return means the post is
// drafted with content persisted; any other outcome is a *GenerationError.
func (o *Orchestrator) Generate(ctx context.Context, postID interface{}) error {
	post, err := o.posts.FindByID(ctx, postID)
	if err != nil {
		return failure(CodeGenerationFailed, fmt.Errorf("load post: %w", err))
	}

	// Claim. Single conditional write: exactly one of N concurrent callers
	// wins; the rest get rejected here with no side effects.
	claimed, err := o.posts.CompareAndSetStatus(ctx, postID, claimableStatuses, models.StatusGenerating)
	if err != nil {
		return failure(CodeGenerationFailed, fmt.Errorf("claim post: %w", err))
	}
	if !claimed {
		return failure(CodeAlreadyInProgress, errors.New("generation already in progress"))
	}

	pc, err := o.contexts.FindByProject(ctx, post.ProjectID)
	if err != nil {
		return failure(CodeGenerationFailed, fmt.Errorf("load project context: %w", err))
	}

	systemPrompt := prompts.ComposeSystemPrompt(pc, post)
	userPrompt := prompts.ComposeUserPrompt(pc, post)

	if o.quota != nil {
		allowed, err := o.quota.WaitAndReserve(ctx)
		if err != nil {
			return failure(CodeGenerationFailed, fmt.Errorf("quota wait: %w", err))
		}
		if !allowed {
			return failure(CodeQuotaExceeded, errors.New("daily generation quota exhausted"))
		}
	}

	raw, err := o.text.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return failure(CodeOf(err), err)
	}

	meta, body, err := ExtractArticle(raw)
	if err != nil {
		// Partial output is discarded; the post stays generating until the
		// reclaim window elapses and a manual retry becomes possible.
		return failure(CodeInvalidOutputFormat, err)
	}

	contentRef, err := o.contents.Insert(ctx, post.ID, body)
	if err != nil {
		return failure(CodeGenerationFailed, fmt.Errorf("persist content: %w", err))
	}

	imageRef := o.generateImage(ctx, pc, post)

	if err := o.posts.ApplyGenerationResult(ctx, postID, contentRef, meta.SEOTitle, meta.MetaDescription, imageRef); err != nil {
		return failure(CodeGenerationFailed, fmt.Errorf("persist result: %w", err))
	}

	logger.InfoWithFields("post generated", logger.Fields{
		"post_id":     post.ID.Hex(),
		"project_id":  post.ProjectID.Hex(),
		"content_ref": contentRef,
		"image_ref":   imageRef,
	})
	return nil
}

// generateImage runs the optional image step. Every failure path is
// non-fatal: log and keep the placeholder reference.
func (o *Orchestrator) generateImage(ctx context.Context, pc *models.ProjectContext, post *models.Post) string {
	imageRef := post.ImageRef
	if imageRef == "" {
		imageRef = models.ImageRefPlaceholder
	}
	if !post.WantsImage() {
		return imageRef
	}
	if o.image == nil || o.images == nil {
		return imageRef
	}

	remote, err := o.image.GenerateImage(ctx, prompts.ComposeImagePrompt(pc, post))
	if err != nil {
		logger.Log.Warnf("image generation failed for post %s, keeping placeholder: %v", post.ID.Hex(), err)
		return imageRef
	}

	ref, err := o.images.FetchAndPersist(ctx, remote)
	if err != nil {
		logger.Log.Warnf("image persistence failed for post %s, keeping placeholder: %v", post.ID.Hex(), err)
		return imageRef
	}
	return ref
}
