// Package services defines the domain operations for topics, users,
// articles, and comments. This file centralizes service-level error values
// so they can be consistently returned by service methods and checked by
// callers.
//
// Translation into HTTP status codes and user-facing messages happens in
// one place at the handler layer (see handlers.respondError); services only
// decide which condition occurred.
package services

import "errors"

// Not-found conditions: well-formed references to entities that do not exist.
var (
	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrTopicNotFound is returned when an article listing is filtered by a
	// topic that matches no articles.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Bad-input conditions: requests rejected before they reach the store.
var (
	// ErrInvalidSort is returned when sort_by is not an allow-listed column.
	ErrInvalidSort = errors.New("invalid sort_by value")

	// ErrInvalidOrder is returned when order is neither asc nor desc.
	ErrInvalidOrder = errors.New("invalid order value")

	// ErrInvalidLimit is returned when limit is not a positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrInvalidPage is returned when page is not a positive integer.
	ErrInvalidPage = errors.New("page must be a positive integer")

	// ErrMissingIncVotes is returned when a vote-increment body lacks the
	// inc_votes field or it is not an integer.
	ErrMissingIncVotes = errors.New("inc_votes must be an integer")
)
