// Package repo implements the storage gateway for domain entities, backed
// by GORM. This file provides repository functions for the Article model,
// including the listing query builder that drives GET /api/articles.
//
// The listing query aggregates comment counts with a LEFT JOIN + GROUP BY
// so articles without comments still appear with comment_count 0. Sorting
// is restricted to an allow-listed column map and the order direction to
// asc/desc, so no request input ever reaches the statement text; the topic
// filter travels as a bound parameter.
//
// Error semantics mirror the rest of the package: gorm.ErrRecordNotFound
// (ErrNotFound) for missing rows, raw gorm/driver errors otherwise.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ncboard/go-news-backend/internal/domain"
)

// ArticleSortColumns maps the accepted sort_by values to the column or
// aggregate expression they order by. comment_count refers to the SELECT
// alias computed by the listing query; everything else is table-qualified
// to stay unambiguous after the join.
var ArticleSortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"author":        "articles.author",
	"topic":         "articles.topic",
	"votes":         "articles.votes",
	"created_at":    "articles.created_at",
	"comment_count": "comment_count",
}

// ArticleOrders maps the accepted order values to SQL directions.
var ArticleOrders = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ArticleQuery carries validated listing parameters. SortBy and Order must
// be keys of ArticleSortColumns / ArticleOrders; Limit and Page must be
// positive. Validation happens in the service layer before the query is
// built; this type never sees raw request input.
type ArticleQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

const articleCountExpr = "COUNT(comments.comment_id) AS comment_count"

// ListArticles executes the aggregating listing query and returns one page
// of articles plus the total number of rows in the filtered, unwindowed
// set. The total lets callers render "page X of N" without a second round
// trip; the window itself is pushed into the statement as OFFSET/LIMIT.
//
// Ties under the chosen ordering are left to storage order; the contract
// promises no secondary sort key.
func ListArticles(ctx context.Context, db *gorm.DB, q ArticleQuery) ([]domain.Article, int64, error) {
	col, dir := ArticleSortColumns[q.SortBy], ArticleOrders[q.Order]

	var total int64
	count := db.WithContext(ctx).Model(&domain.Article{})
	if q.Topic != "" {
		count = count.Where("articles.topic = ?", q.Topic)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select("articles.*, " + articleCountExpr).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id")
	if q.Topic != "" {
		list = list.Where("articles.topic = ?", q.Topic)
	}

	var out []domain.Article
	err := list.
		Group("articles.article_id").
		Order(col + " " + dir).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// GetArticle fetches a single article with its derived comment_count, or
// ErrNotFound if no row matches.
func GetArticle(ctx context.Context, db *gorm.DB, articleID int) (*domain.Article, error) {
	var a domain.Article
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select("articles.*, "+articleCountExpr).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", articleID).
		Group("articles.article_id").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateArticle inserts a new article row. Fields arrive as pointers
// straight from the request body: absent ones are inserted as NULL so the
// store's not-null constraints raise the violation, and unknown author or
// topic values surface as foreign-key violations. CreatedAt is
// server-assigned and votes start at zero.
func CreateArticle(ctx context.Context, db *gorm.DB, author, title, body, topic *string) (*domain.Article, error) {
	now := time.Now().UTC()
	if author == nil || title == nil || body == nil || topic == nil {
		// Map create so the nil fields reach the store as NULL. On the
		// canonical schema this insert fails the not-null constraint; if a
		// relaxed schema lets it through, return the stored row rather than
		// a partially filled struct.
		vals := map[string]any{
			"author":     author,
			"title":      title,
			"body":       body,
			"topic":      topic,
			"created_at": now,
			"votes":      0,
		}
		if err := db.WithContext(ctx).Model(&domain.Article{}).Create(vals).Error; err != nil {
			return nil, err
		}
		var a domain.Article
		if err := db.WithContext(ctx).Last(&a).Error; err != nil {
			return nil, err
		}
		return &a, nil
	}
	a := &domain.Article{
		Author:    *author,
		Title:     *title,
		Body:      *body,
		Topic:     *topic,
		CreatedAt: now,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// IncrementArticleVotes applies a relative vote delta in a single UPDATE
// statement; store-level per-statement atomicity makes concurrent
// increments safe without application locking. It returns the updated
// article, or ErrNotFound when no row matched.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, articleID, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", articleID).
		Update("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetArticle(ctx, db, articleID)
}

// DeleteArticle removes an article and its dependent comments inside one
// transaction. The comment→article reference is non-cascading at the
// store, so the cleanup is explicit here; the transaction guarantees no
// orphaned comment survives and no article disappears while its comments
// remain. Returns ErrNotFound when the article does not exist.
func DeleteArticle(ctx context.Context, db *gorm.DB, articleID int) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("article_id = ?", articleID).Delete(&domain.Article{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
