package service

import (
	"context"

	"github.com/trainhub/trainhub-backend/internal/model"
	"github.com/trainhub/trainhub-backend/internal/repository"
)

// TopicService handles topic business logic.
type TopicService struct {
	repo *repository.TopicRepository
}

// NewTopicService creates a new TopicService.
func NewTopicService(repo *repository.TopicRepository) *TopicService {
	return &TopicService{repo: repo}
}

// List returns topics, optionally scoped to one course.
func (s *TopicService) List(ctx context.Context, courseID int) ([]model.Topic, error) {
	return s.repo.List(ctx, courseID)
}

// GetByID returns one topic.
func (s *TopicService) GetByID(ctx context.Context, id int) (*model.Topic, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a topic.
func (s *TopicService) Create(ctx context.Context, req model.TopicRequest) (*model.Topic, error) {
	t := &model.Topic{CourseID: req.CourseID, Name: req.Name}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces a topic's fields.
func (s *TopicService) Update(ctx context.Context, id int, req model.TopicRequest) (*model.Topic, error) {
	return s.repo.Update(ctx, id, req.CourseID, req.Name)
}

// Delete removes a topic.
func (s *TopicService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
