package handlers

import (
	"net/http"

	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/uploads/image
// Multipart field "image". Returns the public URL (and thumbnail URL
// when one could be generated); the client stores the URL on the
// profile afterwards.
func UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "an image file is required", err)
		return
	}
	defer file.Close()

	rc := middleware.RequestContext(c)
	svc := services.UploadService{
		Dir:       uploadDir,
		BaseURL:   publicBaseURL,
		RequestID: middleware.GetRequestID(c),
	}

	url, thumbURL, err := svc.SaveImage(rc.UserID, file, header)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":       url,
		"thumb_url": thumbURL,
	})
}
