package handlers

import (
	"net/http"

	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/me/id-card
// The devotee identity card for the current member, as a PDF.
func IDCard(c *gin.Context) {
	rc := middleware.RequestContext(c)

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateIDCard(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
