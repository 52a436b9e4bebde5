package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /api/bootstrap
// The bulk data loader: everything the client renders, in one response.
// Collection failures degrade to warnings; only a broken session itself
// is critical.
func Bootstrap(c *gin.Context) {
	rc := middleware.RequestContext(c)

	snap, err := bootstrapService(c).Load(rc)
	if err != nil {
		if domain.IsUnauthorized(err) {
			RespondDomainError(c, err)
			return
		}
		respondError(c, http.StatusInternalServerError, "critical_error",
			"A critical error occurred while loading data. Please refresh.", "error")
		return
	}

	c.JSON(http.StatusOK, snap)
}
