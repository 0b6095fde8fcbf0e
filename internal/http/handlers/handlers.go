// Package handlers – service contracts and wiring.
//
// Handlers are transport-thin: they extract and loosely validate request
// parameters, call the corresponding domain operation, and shape the
// success envelope. Every failure path funnels through respondError so the
// classifier chain runs exactly once per request.
package handlers

import (
	"context"

	"github.com/ncboard/go-news-backend/internal/domain"
)

// TopicService defines the topic operations consumed by HTTP handlers.
type TopicService interface {
	// List returns all topics.
	List(ctx context.Context) ([]domain.Topic, error)
	// Create inserts a topic; nil fields travel to the store as NULL.
	Create(ctx context.Context, slug, description *string) (*domain.Topic, error)
}

// UserService defines the user lookups consumed by HTTP handlers.
type UserService interface {
	// List returns all users.
	List(ctx context.Context) ([]domain.User, error)
	// Get returns a single user by username.
	Get(ctx context.Context, username string) (*domain.User, error)
}

// ArticleService defines the article operations consumed by HTTP handlers.
type ArticleService interface {
	// List runs the aggregating listing query and returns one window plus
	// the unwindowed total.
	List(ctx context.Context, sortBy, order, topic string, limit, page int) ([]domain.Article, int64, error)
	// Get returns a single article with its derived comment_count.
	Get(ctx context.Context, articleID int) (*domain.Article, error)
	// Create inserts an article; nil fields travel to the store as NULL.
	Create(ctx context.Context, author, title, body, topic *string) (*domain.Article, error)
	// IncrementVotes applies a relative vote delta atomically.
	IncrementVotes(ctx context.Context, articleID, delta int) (*domain.Article, error)
	// Delete removes an article and its dependent comments.
	Delete(ctx context.Context, articleID int) error
}

// CommentService defines the comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListForArticle returns one window of an article's comments.
	ListForArticle(ctx context.Context, articleID, limit, page int) ([]domain.Comment, error)
	// Create inserts a comment; nil fields travel to the store as NULL.
	Create(ctx context.Context, articleID int, author, body *string) (*domain.Comment, error)
	// IncrementVotes applies a relative vote delta atomically.
	IncrementVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error)
	// Delete removes a single comment.
	Delete(ctx context.Context, commentID int) error
}

// Handlers groups the HTTP endpoints for topics, users, articles, and
// comments. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	topicSvc   TopicService
	userSvc    UserService
	articleSvc ArticleService
	commentSvc CommentService
}

// New constructs a Handlers instance bound to the given services.
func New(topicSvc TopicService, userSvc UserService, articleSvc ArticleService, commentSvc CommentService) *Handlers {
	return &Handlers{
		topicSvc:   topicSvc,
		userSvc:    userSvc,
		articleSvc: articleSvc,
		commentSvc: commentSvc,
	}
}
