// User HTTP handlers.
//
// Endpoints:
//   - GET /api/users            (list)
//   - GET /api/users/:username  (single)
//
// Users are read-only through this API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /api/users.
func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /api/users/:username.
func (h *Handlers) GetUser(c *gin.Context) {
	u, err := h.userSvc.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"user": u})
}
