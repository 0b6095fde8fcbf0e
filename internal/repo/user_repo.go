// Package repo implements the storage gateway for domain entities, backed
// by GORM. This file provides repository functions for the User model.
// Users are read-only through the API, so only lookups live here.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
)

// ListUsers returns every user, ordered by username for stable output.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	var out []domain.User
	err := db.WithContext(ctx).Order("username asc").Find(&out).Error
	return out, err
}

// GetUser fetches a single user by username, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
