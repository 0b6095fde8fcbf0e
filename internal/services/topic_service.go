// Package services – TopicService
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
	"github.com/ncboard/go-news-backend/internal/repo"
)

// TopicService provides topic listing and creation.
type TopicService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns all topics.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	topics, err := repo.ListTopics(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []domain.Topic{}
	}
	return topics, nil
}

// Create inserts a new topic. Presence constraints are enforced by the
// store; a missing slug or description surfaces as a not-null violation
// for the classifier.
func (s *TopicService) Create(ctx context.Context, slug, description *string) (*domain.Topic, error) {
	return repo.CreateTopic(ctx, s.DB, slug, description)
}
