package dto

import (
	"time"

	"content-planner/models"
)

// PostDTO is the public shape of a post.
type PostDTO struct {
	ID                string   `json:"id"`
	ProjectID         string   `json:"project_id"`
	Topic             string   `json:"topic"`
	PrimaryKeyword    string   `json:"primary_keyword"`
	SecondaryKeywords []string `json:"secondary_keywords"`
	SearchIntent      string   `json:"search_intent"`
	ContentAngle      string   `json:"content_angle"`
	Notes             string   `json:"notes"`
	Status            string   `json:"status"`
	HasContent        bool     `json:"has_content"`
	ImageRef          string   `json:"image_ref"`
	SEOTitle          string   `json:"seo_title"`
	MetaDescription   string   `json:"meta_description"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
	ViewedAt          string   `json:"viewed_at,omitempty"`
}

func NewPostDTO(p models.Post) PostDTO {
	d := PostDTO{
		ID:                p.ID.Hex(),
		ProjectID:         p.ProjectID.Hex(),
		Topic:             p.Topic,
		PrimaryKeyword:    p.PrimaryKeyword,
		SecondaryKeywords: p.SecondaryKeywords,
		SearchIntent:      p.SearchIntent,
		ContentAngle:      string(p.ContentAngle),
		Notes:             p.Notes,
		Status:            string(p.Status),
		HasContent:        p.HasContent(),
		ImageRef:          p.ImageRef,
		SEOTitle:          p.SEOTitle,
		MetaDescription:   p.MetaDescription,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
	if p.ViewedAt != nil {
		d.ViewedAt = p.ViewedAt.Format(time.RFC3339)
	}
	return d
}

// PostContentDTO carries a generated article body.
type PostContentDTO struct {
	PostID          string `json:"post_id"`
	SEOTitle        string `json:"seo_title"`
	MetaDescription string `json:"meta_description"`
	HTML            string `json:"html"`
}

// PostIDsRequest is the body of every bulk post operation.
type PostIDsRequest struct {
	PostIDs []string `json:"post_ids" binding:"required"`
}

// GenerationOutcomeDTO mirrors services.GenerationOutcome.
type GenerationOutcomeDTO struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// PublishResultDTO reports a bulk publish.
type PublishResultDTO struct {
	Published int `json:"published"`
	Skipped   int `json:"skipped"`
}

// RestoreResultDTO reports a bulk restore.
type RestoreResultDTO struct {
	Restored int `json:"restored"`
}

// CountResultDTO reports how many posts a bulk operation changed.
type CountResultDTO struct {
	Changed int `json:"changed"`
}

type ErrorResponseDTO struct {
	Error string `json:"error"`
}

type MessageResponseDTO struct {
	Message string `json:"message"`
}
