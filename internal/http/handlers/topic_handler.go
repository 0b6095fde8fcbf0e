// Topic HTTP handlers.
//
// Endpoints:
//   - GET  /api/topics  (list)
//   - POST /api/topics  (create)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateTopicRequest is the JSON payload for creating a topic. Pointer
// fields let absent keys reach the store as NULL so the not-null
// constraint decides (classified as "cannot insert into table").
type CreateTopicRequest struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// ListTopics handles GET /api/topics.
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topicSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"topics": topics})
}

// CreateTopic handles POST /api/topics.
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}
	t, err := h.topicSvc.Create(c.Request.Context(), req.Slug, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"addedTopic": t})
}
