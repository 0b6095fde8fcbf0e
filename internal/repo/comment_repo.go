// Package repo implements the storage gateway for domain entities, backed
// by GORM. This file provides repository functions for the Comment model.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
)

// ListCommentsPage returns one window of an article's comments in insertion
// order (comment_id ASC). The caller computes offset and limit; an overrun
// window yields an empty slice, not an error.
func ListCommentsPage(ctx context.Context, db *gorm.DB, articleID, offset, limit int) ([]domain.Comment, error) {
	var out []domain.Comment
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("comment_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CountComments returns the number of comments on an article.
func CountComments(ctx context.Context, db *gorm.DB, articleID int) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("article_id = ?", articleID).
		Count(&total).Error
	return total, err
}

// CreateComment inserts a comment on an article. author and body arrive as
// pointers straight from the request body: absent fields are inserted as
// NULL so the store's not-null constraint raises the violation, and an
// unknown username or article id surfaces as a foreign-key violation.
// Neither reference is pre-checked here; constraint enforcement is the
// store's job and the error classifier maps it to HTTP semantics.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int, author, body *string) (*domain.Comment, error) {
	now := time.Now().UTC()
	if author == nil || body == nil {
		// Map create so the nil fields reach the store as NULL. On the
		// canonical schema this insert fails the not-null constraint; if a
		// relaxed schema lets it through, return the stored row rather than
		// a partially filled struct.
		vals := map[string]any{
			"article_id": articleID,
			"author":     author,
			"body":       body,
			"created_at": now,
			"votes":      0,
		}
		if err := db.WithContext(ctx).Model(&domain.Comment{}).Create(vals).Error; err != nil {
			return nil, err
		}
		var cm domain.Comment
		if err := db.WithContext(ctx).Last(&cm).Error; err != nil {
			return nil, err
		}
		return &cm, nil
	}
	cm := &domain.Comment{
		ArticleID: articleID,
		Author:    *author,
		Body:      *body,
		CreatedAt: now,
	}
	if err := db.WithContext(ctx).Create(cm).Error; err != nil {
		return nil, err
	}
	return cm, nil
}

// IncrementCommentVotes applies a relative vote delta in a single UPDATE
// statement and returns the updated comment, or ErrNotFound when no row
// matched.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, commentID, delta int) (*domain.Comment, error) {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", commentID).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	var cm domain.Comment
	if err := db.WithContext(ctx).Where("comment_id = ?", commentID).First(&cm).Error; err != nil {
		return nil, err
	}
	return &cm, nil
}

// DeleteComment removes a single comment, or returns ErrNotFound when no
// row matched.
func DeleteComment(ctx context.Context, db *gorm.DB, commentID int) error {
	res := db.WithContext(ctx).Where("comment_id = ?", commentID).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
