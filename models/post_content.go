package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostContent stores one generated article body as an opaque blob.
// Collection: post_contents
type PostContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"post_id" json:"post_id"`
	HTML      string             `bson:"html" json:"html"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
