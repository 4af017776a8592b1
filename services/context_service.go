package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"content-planner/models"
	"content-planner/repositories"
)

// ContextService reads and saves per-project context profiles. Reads fall
// back to defaults so a fresh project always has a usable profile.
type ContextService struct {
	repo *repositories.ContextRepository
}

func NewContextService(repo *repositories.ContextRepository) *ContextService {
	return &ContextService{repo: repo}
}

func (s *ContextService) Get(ctx context.Context, projectID primitive.ObjectID) (*models.ProjectContext, error) {
	pc, err := s.repo.FindByProject(ctx, projectID)
	if err == mongo.ErrNoDocuments {
		return models.NewProjectContext(projectID, ""), nil
	}
	return pc, err
}

func (s *ContextService) Save(ctx context.Context, pc *models.ProjectContext) error {
	return s.repo.Save(ctx, pc)
}
