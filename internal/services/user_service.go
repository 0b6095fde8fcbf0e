// Package services – UserService
//
// Users are read-only through this API; the service exposes listing and
// lookup only.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
	"github.com/ncboard/go-news-backend/internal/repo"
)

// UserService provides user listing and lookup.
type UserService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := repo.ListUsers(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Get returns a single user, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
