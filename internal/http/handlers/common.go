package handlers

import (
	"net/http"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

// Package-level runtime settings for handlers; set once from the router.
var (
	geminiAPIKey  string
	trustWhatsApp string
	uploadDir     string
	publicBaseURL string
)

// Init wires environment-derived settings into the handlers package.
func Init(env intconfig.Env) {
	geminiAPIKey = env.GeminiAPIKey
	trustWhatsApp = env.TrustWhatsApp
	uploadDir = env.UploadDir
	publicBaseURL = env.PublicBaseURL
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

func bootstrapService(c *gin.Context) services.BootstrapService {
	rid := middleware.GetRequestID(c)
	return services.BootstrapService{
		Profiles:  services.ProfileService{RequestID: rid},
		RequestID: rid,
	}
}

func actionService(c *gin.Context) services.ActionService {
	return services.ActionService{Bootstrap: bootstrapService(c)}
}

// respondAction runs one write and answers with a success message plus the
// fully reloaded snapshot (the command/refetch contract).
func respondAction(c *gin.Context, successMsg string, write func() error) {
	rc := middleware.RequestContext(c)
	snap, err := actionService(c).Run(rc, write)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": successMsg,
		"data":    snap,
	})
}
