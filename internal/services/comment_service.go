// Package services – CommentService
//
// This file implements the CommentService, covering the comment listing
// window for an article plus creation, vote increments, and deletion.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
	"github.com/ncboard/go-news-backend/internal/repo"
)

// CommentService provides comment-level operations.
type CommentService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// ListForArticle returns one window of an article's comments in insertion
// order. The article must exist (ErrArticleNotFound otherwise). An
// existing article with no comments is an empty page, as is a window past
// the last comment. limit and page follow the same semantics as the
// article listing.
func (s *CommentService) ListForArticle(ctx context.Context, articleID, limit, page int) ([]domain.Comment, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if page <= 0 {
		return nil, ErrInvalidPage
	}

	if _, err := repo.GetArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	comments, err := repo.ListCommentsPage(ctx, s.DB, articleID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// Create inserts a comment on an article. Article existence and author
// validity are enforced by the store's foreign keys; a violation
// propagates raw so the classifier can map it to a 400, per the insert-time
// referential integrity contract.
func (s *CommentService) Create(ctx context.Context, articleID int, author, body *string) (*domain.Comment, error) {
	return repo.CreateComment(ctx, s.DB, articleID, author, body)
}

// IncrementVotes applies a relative vote delta atomically and returns the
// updated comment, or ErrCommentNotFound when no row matches.
func (s *CommentService) IncrementVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error) {
	cm, err := repo.IncrementCommentVotes(ctx, s.DB, commentID, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return cm, nil
}

// Delete removes a single comment, or returns ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, commentID int) error {
	if err := repo.DeleteComment(ctx, s.DB, commentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
