// Package services – ArticleService
//
// This file implements the ArticleService, the domain operations behind the
// article endpoints. List owns the validation of the dynamic listing
// parameters (sort_by, order, topic, limit, page) and the zero-match policy
// for topic filters; the actual statement construction lives in the repo
// query builder, which only ever sees allow-listed values.
//
// Service-level errors (ErrArticleNotFound, ErrInvalidSort, …) are returned
// for predictable cases so handlers can map them to HTTP results
// consistently; storage-native errors pass through untouched for the error
// classifier.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
	"github.com/ncboard/go-news-backend/internal/repo"
)

// Listing defaults. A request with no parameters returns the newest ten
// articles.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ArticleService provides article-level operations: the aggregating list
// query, single lookups, creation, vote increments, and deletion with
// dependent-comment cleanup.
type ArticleService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// List validates the listing parameters, applies defaults, and executes the
// aggregating query.
//
// Semantics:
//   - sortBy must be an allow-listed column (default created_at), order must
//     be asc or desc case-insensitive (default desc); anything else is
//     rejected before any SQL is built.
//   - limit and page arrive pre-parsed (the handler rejects non-numeric
//     input); non-positive values are rejected here.
//   - totalCount covers the filtered-but-unwindowed set, so a page beyond
//     the last returns an empty slice with the true total, not an error.
//   - A topic filter that matches zero articles is ErrTopicNotFound; with
//     no filter an empty store is just an empty page.
func (s *ArticleService) List(ctx context.Context, sortBy, order, topic string, limit, page int) ([]domain.Article, int64, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if order == "" {
		order = DefaultOrder
	}
	order = strings.ToLower(order)

	if _, ok := repo.ArticleSortColumns[sortBy]; !ok {
		return nil, 0, ErrInvalidSort
	}
	if _, ok := repo.ArticleOrders[order]; !ok {
		return nil, 0, ErrInvalidOrder
	}
	if limit <= 0 {
		return nil, 0, ErrInvalidLimit
	}
	if page <= 0 {
		return nil, 0, ErrInvalidPage
	}

	articles, total, err := repo.ListArticles(ctx, s.DB, repo.ArticleQuery{
		SortBy: sortBy,
		Order:  order,
		Topic:  topic,
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		return nil, 0, err
	}
	if topic != "" && total == 0 {
		return nil, 0, ErrTopicNotFound
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, total, nil
}

// Get returns a single article with its derived comment_count, or
// ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, articleID int) (*domain.Article, error) {
	a, err := repo.GetArticle(ctx, s.DB, articleID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new article. Reference and presence constraints are
// enforced by the store; violations propagate raw for classification.
func (s *ArticleService) Create(ctx context.Context, author, title, body, topic *string) (*domain.Article, error) {
	return repo.CreateArticle(ctx, s.DB, author, title, body, topic)
}

// IncrementVotes applies a relative vote delta atomically and returns the
// updated article. delta may be zero or negative; inverse deltas cancel
// exactly. Returns ErrArticleNotFound when no row matches.
func (s *ArticleService) IncrementVotes(ctx context.Context, articleID, delta int) (*domain.Article, error) {
	a, err := repo.IncrementArticleVotes(ctx, s.DB, articleID, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an article and all its dependent comments. The repo runs
// both deletes in one transaction, so a failure on either side rolls back
// the whole operation. Returns ErrArticleNotFound when the article is
// absent.
func (s *ArticleService) Delete(ctx context.Context, articleID int) error {
	if err := repo.DeleteArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}
