// Package generator runs the content generation pipeline: claim a post,
// compose prompts, call the text and image providers, parse and validate the
// output, and persist the result.
package generator

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"content-planner/models"
)

// FailureCode is the stable error code surfaced to callers. Codes map 1:1 to
// actionable guidance in the UI ("check billing", "retry later", ...).
type FailureCode string

const (
	CodeAlreadyInProgress   FailureCode = "ALREADY_IN_PROGRESS"
	CodeNoAPIKey            FailureCode = "NO_API_KEY"
	CodeInvalidAPIKey       FailureCode = "INVALID_API_KEY"
	CodeQuotaExceeded       FailureCode = "QUOTA_EXCEEDED"
	CodeInvalidOutputFormat FailureCode = "INVALID_OUTPUT_FORMAT"
	CodeGenerationFailed    FailureCode = "GENERATION_FAILED"
)

// GenerationError is the structured failure returned by the pipeline. The
// orchestrator never lets an unclassified error cross its boundary.
type GenerationError struct {
	Code FailureCode
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func failure(code FailureCode, err error) *GenerationError {
	return &GenerationError{Code: code, Err: err}
}

// CodeOf extracts the failure code from any error returned by the pipeline.
func CodeOf(err error) FailureCode {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeGenerationFailed
}

// RemoteImage is what an image provider hands back: either a fetchable URL
// or the image bytes inline, depending on the provider.
type RemoteImage struct {
	URL      string
	Data     []byte
	MIMEType string
}

// TextProvider produces the raw article text from the composed prompts.
type TextProvider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageProvider produces a hero image for the article.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (*RemoteImage, error)
}

// PostStore is the slice of post persistence the pipeline needs.
type PostStore interface {
	FindByID(ctx context.Context, postID interface{}) (*models.Post, error)
	CompareAndSetStatus(ctx context.Context, postID interface{}, expected []models.Status, next models.Status) (bool, error)
	ApplyGenerationResult(ctx context.Context, postID interface{}, contentRef, seoTitle, metaDescription, imageRef string) error
}

// ContextStore reads the per-project context profile. The pipeline never
// writes it.
type ContextStore interface {
	FindByProject(ctx context.Context, projectID interface{}) (*models.ProjectContext, error)
}

// ContentStore persists generated article bodies.
type ContentStore interface {
	Insert(ctx context.Context, postID primitive.ObjectID, html string) (string, error)
}

// QuotaLimiter gates provider calls. A (false, nil) result means the daily
// budget is exhausted.
type QuotaLimiter interface {
	WaitAndReserve(ctx context.Context) (bool, error)
}
