// Article HTTP handlers.
//
// Endpoints:
//   - GET    /api/articles              (list, sortable/filterable, paginated)
//   - POST   /api/articles              (create)
//   - GET    /api/articles/:article_id  (single, with comment_count)
//   - PATCH  /api/articles/:article_id  (vote increment)
//   - DELETE /api/articles/:article_id  (delete with dependent cleanup)
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncboard/go-news-backend/internal/domain"
	"github.com/ncboard/go-news-backend/internal/services"
	"github.com/ncboard/go-news-backend/internal/utils"
)

// CreateArticleRequest is the JSON payload for creating an article.
// Fields are pointers so an absent key reaches the store as NULL and the
// not-null constraint decides, instead of a zero value slipping through.
type CreateArticleRequest struct {
	Author *string `json:"author"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Topic  *string `json:"topic"`
}

// IncVotesRequest is the JSON payload for vote increments on articles and
// comments. inc_votes is a signed delta; zero and negative are legal.
type IncVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// ListArticlesResponse wraps a page of articles with the total number of
// rows matching the filter, independent of the window.
type ListArticlesResponse struct {
	Articles   []domain.Article `json:"articles"`
	TotalCount int64            `json:"total_count"`
}

// articleID parses the :article_id path parameter. A non-numeric id is bad
// input, not a missing object.
func articleID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("article_id"))
	if err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return 0, false
	}
	return id, true
}

// windowParams parses limit and page query parameters with their defaults.
func windowParams(c *gin.Context) (limit, page int, ok bool) {
	limit, err := utils.ParsePositiveInt(c.Query("limit"), services.DefaultLimit)
	if err != nil {
		respondError(c, services.ErrInvalidLimit)
		return 0, 0, false
	}
	page, err = utils.ParsePositiveInt(c.Query("page"), services.DefaultPage)
	if err != nil {
		respondError(c, services.ErrInvalidPage)
		return 0, 0, false
	}
	return limit, page, true
}

// ListArticles handles GET /api/articles.
//
// Query parameters: sort_by (allow-listed column, default created_at),
// order (asc|desc, default desc), topic (equality filter), limit
// (default 10), page (default 1). A page beyond the last returns an empty
// array with the true total_count; a topic matching no articles is a 404.
func (h *Handlers) ListArticles(c *gin.Context) {
	limit, page, okParams := windowParams(c)
	if !okParams {
		return
	}

	articles, total, err := h.articleSvc.List(
		c.Request.Context(),
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("topic"),
		limit,
		page,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ListArticlesResponse{Articles: articles, TotalCount: total})
}

// GetArticle handles GET /api/articles/:article_id.
func (h *Handlers) GetArticle(c *gin.Context) {
	id, okID := articleID(c)
	if !okID {
		return
	}
	a, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"article": a})
}

// CreateArticle handles POST /api/articles.
func (h *Handlers) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, MsgBadRequest)
		return
	}
	a, err := h.articleSvc.Create(c.Request.Context(), req.Author, req.Title, req.Body, req.Topic)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, gin.H{"addedArticle": a})
}

// PatchArticle handles PATCH /api/articles/:article_id. The body must
// carry an integer inc_votes; a missing or non-integer field is bad input.
func (h *Handlers) PatchArticle(c *gin.Context) {
	id, okID := articleID(c)
	if !okID {
		return
	}
	var req IncVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		respondError(c, services.ErrMissingIncVotes)
		return
	}
	a, err := h.articleSvc.IncrementVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"updatedArticle": a})
}

// DeleteArticle handles DELETE /api/articles/:article_id. Dependent
// comments are removed in the same transaction; success is 204 whether or
// not the article had comments.
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, okID := articleID(c)
	if !okID {
		return
	}
	if err := h.articleSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
