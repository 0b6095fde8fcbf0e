// Package repo implements the storage gateway for domain entities, backed
// by GORM. This file provides repository functions for the Topic model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a topic is not found, functions return gorm.ErrRecordNotFound
//     (also exported in this package as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated untouched so the HTTP layer can
//     classify it by storage error code.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListTopics returns every topic, ordered by slug for stable output.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	var out []domain.Topic
	err := db.WithContext(ctx).Order("slug asc").Find(&out).Error
	return out, err
}

// GetTopic fetches a single topic by slug, or ErrNotFound if missing.
func GetTopic(ctx context.Context, db *gorm.DB, slug string) (*domain.Topic, error) {
	var t domain.Topic
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTopic inserts a new topic row. slug and description arrive as
// pointers straight from the request body: absent fields are inserted as
// NULL so the store's not-null constraint raises the violation, which the
// error classifier maps to a 400. A successful insert returns the row.
func CreateTopic(ctx context.Context, db *gorm.DB, slug, description *string) (*domain.Topic, error) {
	if slug == nil || description == nil {
		// Map create so the nil fields reach the store as NULL. On the
		// canonical schema this insert fails the not-null constraint; if a
		// relaxed schema lets it through, return the stored row rather than
		// a partially filled struct.
		vals := map[string]any{"slug": slug, "description": description}
		if err := db.WithContext(ctx).Model(&domain.Topic{}).Create(vals).Error; err != nil {
			return nil, err
		}
		var t domain.Topic
		if err := db.WithContext(ctx).Last(&t).Error; err != nil {
			return nil, err
		}
		return &t, nil
	}
	t := &domain.Topic{Slug: *slug, Description: *description}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}
