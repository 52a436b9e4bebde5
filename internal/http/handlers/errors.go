package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message, level string) {
	payload := gin.H{
		"error": message,
		"code":  code,
		"level": level,
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps typed domain errors to HTTP responses. Conflicts
// (duplicate booking) answer at level "info" so the client shows an
// informational toast, not an error one. Unauthorized answers carry the
// sign_out flag to force the client session out.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), "error")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), "error")
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), "info")
	case domain.IsUnauthorized(err):
		payload := gin.H{
			"error":    err.Error(),
			"code":     "unauthorized",
			"level":    "error",
			"sign_out": true,
		}
		if reqID := middleware.GetRequestID(c); reqID != "" {
			payload["request_id"] = reqID
		}
		c.JSON(http.StatusUnauthorized, payload)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", "error")
	}
}
