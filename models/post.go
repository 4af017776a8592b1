package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageRefPlaceholder is the sentinel image reference assigned to every post
// until a generated image is persisted. Distinct from an empty value so that
// readers can tell "no image yet" apart from a missing field.
const ImageRefPlaceholder = "images/placeholder.jpg"

// ContentAngle is the closed set of editorial framings a post can take.
type ContentAngle string

const (
	AngleHowTo        ContentAngle = "How-to"
	AngleComparison   ContentAngle = "Comparison"
	AngleBestForX     ContentAngle = "Best-for-X"
	AngleAlternatives ContentAngle = "Alternatives"
	AngleCost         ContentAngle = "Cost"
	AngleMistakes     ContentAngle = "Mistakes"
	AngleUniversal    ContentAngle = "Universal"
	AngleNewsUpdate   ContentAngle = "News-Update"
	AngleOpinion      ContentAngle = "Opinion"
)

var AllContentAngles = []ContentAngle{
	AngleHowTo, AngleComparison, AngleBestForX, AngleAlternatives,
	AngleCost, AngleMistakes, AngleUniversal, AngleNewsUpdate, AngleOpinion,
}

func (a ContentAngle) Valid() bool {
	for _, angle := range AllContentAngles {
		if a == angle {
			return true
		}
	}
	return false
}

// Post represents one planned or generated content item.
// Collection: posts
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	// Planning fields
	Topic             string       `bson:"topic" json:"topic"`
	PrimaryKeyword    string       `bson:"primary_keyword" json:"primary_keyword"`
	SecondaryKeywords []string     `bson:"secondary_keywords" json:"secondary_keywords"`
	SearchIntent      string       `bson:"search_intent" json:"search_intent"`
	ContentAngle      ContentAngle `bson:"content_angle" json:"content_angle"`
	Notes             string       `bson:"notes" json:"notes"`

	// Generation fields
	Status          Status `bson:"status" json:"status"`
	ContentRef      string `bson:"content_ref,omitempty" json:"content_ref,omitempty"`
	ImageRef        string `bson:"image_ref" json:"image_ref"`
	SEOTitle        string `bson:"seo_title" json:"seo_title"`
	MetaDescription string `bson:"meta_description" json:"meta_description"`

	// GenerateImage is a tri-state flag: only an explicit false suppresses
	// image generation; nil means "generate".
	GenerateImage *bool `bson:"generate_image,omitempty" json:"generate_image,omitempty"`

	// ViewedAt is set the first time a human opens the generated content.
	ViewedAt *time.Time `bson:"viewed_at,omitempty" json:"viewed_at,omitempty"`
}

// HasContent reports whether a generation ever completed for this post.
// ContentRef is never cleared once set.
func (p *Post) HasContent() bool {
	return p.ContentRef != ""
}

// WantsImage reports whether image generation is requested.
func (p *Post) WantsImage() bool {
	return p.GenerateImage == nil || *p.GenerateImage
}
