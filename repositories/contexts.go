package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-planner/models"
)

type ContextRepository struct {
	col *mongo.Collection
}

func NewContextRepository(db *mongo.Database) *ContextRepository {
	return &ContextRepository{col: db.Collection("project_contexts")}
}

// FindByProject returns the project's context profile.
func (r *ContextRepository) FindByProject(ctx context.Context, projectID interface{}) (*models.ProjectContext, error) {
	var pc models.ProjectContext
	if err := r.col.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&pc); err != nil {
		return nil, err
	}
	return &pc, nil
}

// Save upserts the context keyed by project_id. created_at is written only
// on insert.
func (r *ContextRepository) Save(ctx context.Context, pc *models.ProjectContext) error {
	now := time.Now()
	if pc.CreatedAt.IsZero() {
		pc.CreatedAt = now
	}
	pc.UpdatedAt = now

	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": pc.CreatedAt,
		},
		"$set": bson.M{
			"updated_at":     pc.UpdatedAt,
			"project_id":     pc.ProjectID,
			"project_name":   pc.ProjectName,
			"business":       pc.Business,
			"brand":          pc.Brand,
			"seo_rules":      pc.SEORules,
			"styling":        pc.Styling,
			"domain_info":    pc.DomainInfo,
			"keywords":       pc.Keywords,
			"global_context": pc.GlobalContext,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"project_id": pc.ProjectID}, update, opts)
	return err
}
