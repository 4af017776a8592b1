package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-planner/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Insert creates a new post with defaults filled in.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = models.StatusIdea
	}
	if p.ImageRef == "" {
		p.ImageRef = models.ImageRefPlaceholder
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// FindByID returns a post by its ObjectID.
func (r *PostRepository) FindByID(ctx context.Context, id interface{}) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByProject returns a project's posts, optionally filtered by status,
// newest first.
func (r *PostRepository) ListByProject(ctx context.Context, projectID interface{}, statusFilter []models.Status) ([]models.Post, error) {
	filter := bson.M{"project_id": projectID}
	if len(statusFilter) > 0 {
		filter["status"] = bson.M{"$in": statusFilter}
	}
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CompareAndSetStatus transitions the post's status with a single
// conditional write: the update applies only while the current status is one
// of expected. Returns true when this caller won the write.
func (r *PostRepository) CompareAndSetStatus(ctx context.Context, postID interface{}, expected []models.Status, next models.Status) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "status": bson.M{"$in": expected}},
		bson.M{"$set": bson.M{"status": next, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// ReclaimStale reverts a project's posts stuck in generating past the cutoff
// back to idea. Conditional bulk update: idempotent and safe to run from any
// number of concurrent readers.
func (r *PostRepository) ReclaimStale(ctx context.Context, projectID interface{}, cutoff time.Time) (int64, error) {
	res, err := r.col.UpdateMany(ctx,
		bson.M{
			"project_id": projectID,
			"status":     models.StatusGenerating,
			"updated_at": bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{"status": models.StatusIdea, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ApplyGenerationResult writes the generation outcome and the drafted status
// as one document update, so readers never observe new content with the old
// status or vice versa.
func (r *PostRepository) ApplyGenerationResult(ctx context.Context, postID interface{}, contentRef, seoTitle, metaDescription, imageRef string) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$set": bson.M{
			"status":           models.StatusDrafted,
			"content_ref":      contentRef,
			"seo_title":        seoTitle,
			"meta_description": metaDescription,
			"image_ref":        imageRef,
			"updated_at":       time.Now(),
		},
	})
	return err
}

// UpdateStatus sets the status unconditionally. Use CompareAndSetStatus for
// claim-style transitions.
func (r *PostRepository) UpdateStatus(ctx context.Context, postID interface{}, status models.Status) error {
	_, err := r.col.UpdateByID(ctx, postID, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	return err
}

// SetViewedAtOnce stamps viewed_at the first time only.
func (r *PostRepository) SetViewedAtOnce(ctx context.Context, postID interface{}) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "viewed_at": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"viewed_at": time.Now()}},
	)
	return err
}

// Delete removes the post permanently. This sits outside the state machine.
func (r *PostRepository) Delete(ctx context.Context, postID interface{}) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": postID})
	return err
}
