// Comment HTTP handlers.
//
// Endpoints:
//   - GET    /api/articles/:article_id/comments  (list, paginated)
//   - POST   /api/articles/:article_id/comments  (create)
//   - PATCH  /api/comments/:comment_id           (vote increment)
//   - DELETE /api/comments/:comment_id           (delete)
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncboard/go-news-backend/internal/services"
)

// CreateCommentRequest is the JSON payload for posting a comment. The
// author travels as "username" on the wire. Pointer fields let absent keys
// reach the store as NULL (see CreateArticleRequest).
type CreateCommentRequest struct {
	Username *string `json:"username"`
	Body     *string `json:"body"`
}

// commentID parses the :comment_id path parameter.
func commentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("comment_id"))
	if err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return 0, false
	}
	return id, true
}

// ListComments handles GET /api/articles/:article_id/comments. Comments
// come back in insertion order; limit and page default to 10 and 1, and a
// window past the last comment is an empty array, not an error.
func (h *Handlers) ListComments(c *gin.Context) {
	id, okID := articleID(c)
	if !okID {
		return
	}
	limit, page, okParams := windowParams(c)
	if !okParams {
		return
	}
	comments, err := h.commentSvc.ListForArticle(c.Request.Context(), id, limit, page)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments. The article
// and username references are enforced by the store's foreign keys; a
// violation classifies as bad input rather than not-found.
func (h *Handlers) PostComment(c *gin.Context) {
	id, okID := articleID(c)
	if !okID {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}
	cm, err := h.commentSvc.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"addedComment": cm})
}

// PatchComment handles PATCH /api/comments/:comment_id.
func (h *Handlers) PatchComment(c *gin.Context) {
	id, okID := commentID(c)
	if !okID {
		return
	}
	var req IncVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		respondError(c, services.ErrMissingIncVotes)
		return
	}
	cm, err := h.commentSvc.IncrementVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"updatedComment": cm})
}

// DeleteComment handles DELETE /api/comments/:comment_id.
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, okID := commentID(c)
	if !okID {
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
