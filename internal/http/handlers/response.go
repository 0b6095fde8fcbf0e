// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all
// endpoints. Success bodies are endpoint-specific envelopes ({topics: …},
// {articles: …, total_count: …}); every non-2xx body is the same shape:
//
//	HTTP/1.1 404 Not Found
//	{ "msg": "Object not found" }
//
// The status code carries the primary signal a client should branch on;
// msg is a short human-readable description. fail() centralizes error
// writing and makes sure 5xx responses are logged with request context.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncboard/go-news-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Msg is a short human-readable error description.
	Msg string `json:"msg" example:"Object not found"`
}

// fail aborts the request with the standard error envelope. Server errors
// (>= 500) are logged with the request-scoped logger so the correlation ID
// travels with the entry.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("msg", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}

// Fail is the exported variant of fail(), used by router-level fallbacks
// (NoRoute) so they emit the same envelope without depending on unexported
// helpers.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
