package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"content-planner/models"
)

type ContentRepository struct {
	col *mongo.Collection
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{col: db.Collection("post_contents")}
}

// Insert stores a generated article body and returns its hex id, which the
// post records as content_ref.
func (r *ContentRepository) Insert(ctx context.Context, postID primitive.ObjectID, html string) (string, error) {
	doc := models.PostContent{
		PostID:    postID,
		HTML:      html,
		CreatedAt: time.Now(),
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return oid.Hex(), nil
}

// FindByRef loads an article body by its content_ref.
func (r *ContentRepository) FindByRef(ctx context.Context, ref string) (*models.PostContent, error) {
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, err
	}
	var pc models.PostContent
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&pc); err != nil {
		return nil, err
	}
	return &pc, nil
}
