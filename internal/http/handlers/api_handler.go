// Endpoint catalog handler.
//
// GET /api serves a machine-readable description of every endpoint: its
// description, the query parameters it accepts, and the body keys it
// expects. The catalog is static data assembled once at package init.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EndpointDoc describes one endpoint in the catalog.
type EndpointDoc struct {
	Description string   `json:"description"`
	Queries     []string `json:"queries,omitempty"`
	BodyKeys    []string `json:"body_keys,omitempty"`
}

// endpointCatalog maps "METHOD /path" to its documentation, keyed the way
// clients address the API.
var endpointCatalog = map[string]EndpointDoc{
	"GET /api": {
		Description: "serves this catalog of available endpoints",
	},
	"GET /api/topics": {
		Description: "serves an array of all topics",
	},
	"POST /api/topics": {
		Description: "creates a topic and serves it back",
		BodyKeys:    []string{"slug", "description"},
	},
	"GET /api/users": {
		Description: "serves an array of all users",
	},
	"GET /api/users/:username": {
		Description: "serves a single user by username",
	},
	"GET /api/articles": {
		Description: "serves a sorted, filtered page of articles with comment counts and the unwindowed total_count",
		Queries:     []string{"sort_by", "order", "topic", "limit", "page"},
	},
	"POST /api/articles": {
		Description: "creates an article and serves it back",
		BodyKeys:    []string{"author", "title", "body", "topic"},
	},
	"GET /api/articles/:article_id": {
		Description: "serves a single article with its comment_count",
	},
	"PATCH /api/articles/:article_id": {
		Description: "applies a relative vote increment and serves the updated article",
		BodyKeys:    []string{"inc_votes"},
	},
	"DELETE /api/articles/:article_id": {
		Description: "deletes an article and all of its comments",
	},
	"GET /api/articles/:article_id/comments": {
		Description: "serves a page of an article's comments in insertion order",
		Queries:     []string{"limit", "page"},
	},
	"POST /api/articles/:article_id/comments": {
		Description: "posts a comment to an article and serves it back",
		BodyKeys:    []string{"username", "body"},
	},
	"PATCH /api/comments/:comment_id": {
		Description: "applies a relative vote increment and serves the updated comment",
		BodyKeys:    []string{"inc_votes"},
	},
	"DELETE /api/comments/:comment_id": {
		Description: "deletes a comment",
	},
}

// GetEndpoints handles GET /api.
func (h *Handlers) GetEndpoints(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"endpoints": endpointCatalog})
}
