// Package handlers – error classification.
//
// Every failure bubbling out of a domain operation reaches respondError
// exactly once. Classification is an explicit ordered list of
// predicate→response pairs: storage-level constraint errors first (matched
// by PostgreSQL SQLSTATE via pgconn, with SQLite message fallbacks for the
// pure-Go driver used in development and tests), then the service sentinel
// errors with their fixed status+message, then a final 500 for anything
// unrecognized.
//
// Messages are part of the API contract:
//   - 400 "Bad request"                            malformed ids, invalid
//     sort/order/limit/page, missing inc_votes, invalid text
//     representation, foreign-key violations
//   - 400 "Bad request, cannot insert into table"  not-null violations
//   - 404 "Object not found" / "User not found" / "Topic not found"
//   - 500 "Internal server error"                  everything else
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncboard/go-news-backend/internal/http/middleware"
	"github.com/ncboard/go-news-backend/internal/services"
)

// Contract messages shared across handlers.
const (
	MsgBadRequest     = "Bad request"
	MsgCannotInsert   = "Bad request, cannot insert into table"
	MsgObjectNotFound = "Object not found"
	MsgUserNotFound   = "User not found"
	MsgTopicNotFound  = "Topic not found"
	MsgRouteNotFound  = "Route not found"
	MsgInternal       = "Internal server error"
)

// PostgreSQL SQLSTATE codes the classifier recognizes.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

// classifier pairs a predicate with the response it produces. The chain is
// evaluated in order; the first match wins.
type classifier struct {
	match  func(error) bool
	status int
	msg    string
}

var errorChain = []classifier{
	{isInvalidTextRepresentation, http.StatusBadRequest, MsgBadRequest},
	{isForeignKeyViolation, http.StatusBadRequest, MsgBadRequest},
	{isNotNullViolation, http.StatusBadRequest, MsgCannotInsert},

	// Conditions raised deliberately by the service layer carry their own
	// status and message.
	{is(services.ErrArticleNotFound), http.StatusNotFound, MsgObjectNotFound},
	{is(services.ErrCommentNotFound), http.StatusNotFound, MsgObjectNotFound},
	{is(services.ErrUserNotFound), http.StatusNotFound, MsgUserNotFound},
	{is(services.ErrTopicNotFound), http.StatusNotFound, MsgTopicNotFound},
	{is(services.ErrInvalidSort), http.StatusBadRequest, MsgBadRequest},
	{is(services.ErrInvalidOrder), http.StatusBadRequest, MsgBadRequest},
	{is(services.ErrInvalidLimit), http.StatusBadRequest, MsgBadRequest},
	{is(services.ErrInvalidPage), http.StatusBadRequest, MsgBadRequest},
	{is(services.ErrMissingIncVotes), http.StatusBadRequest, MsgBadRequest},
}

// respondError walks the classifier chain and writes the first matching
// response; unclassified errors are an unexpected condition and become a
// logged 500.
func respondError(c *gin.Context, err error) {
	for _, cl := range errorChain {
		if cl.match(err) {
			fail(c, cl.status, cl.msg)
			return
		}
	}
	lg := middleware.LoggerFrom(c)
	lg.Error().Err(err).Msg("unclassified error")
	fail(c, http.StatusInternalServerError, MsgInternal)
}

// is adapts errors.Is to the classifier predicate shape.
func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

// pgCode extracts the SQLSTATE from a pgconn error, or "" when the error
// did not come from the PostgreSQL driver.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isInvalidTextRepresentation reports a value that failed to parse for its
// column type (e.g. text where an integer is expected). SQLite is
// dynamically typed and has no analogous error, so only the SQLSTATE path
// applies.
func isInvalidTextRepresentation(err error) bool {
	return pgCode(err) == pgInvalidTextRepresentation
}

// isForeignKeyViolation reports a reference to a missing row: an unknown
// author username, topic slug, or article id on insert.
func isForeignKeyViolation(err error) bool {
	if pgCode(err) == pgForeignKeyViolation {
		return true
	}
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// isNotNullViolation reports an insert that left a required column NULL.
func isNotNullViolation(err error) bool {
	if pgCode(err) == pgNotNullViolation {
		return true
	}
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not null constraint")
}
