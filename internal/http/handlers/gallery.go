package handlers

import (
	"net/http"
	"strings"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/gallery
func GetGallery(c *gin.Context) {
	images, err := repositories.GalleryRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load gallery", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// POST /api/admin/gallery
func CreateGalleryImage(c *gin.Context) {
	var g models.GalleryImage
	if !BindJSONOrError(c, &g) {
		return
	}
	g.ImageURL = strings.TrimSpace(g.ImageURL)
	if g.ImageURL == "" || g.TripID <= 0 {
		RespondError(c, http.StatusBadRequest, "trip id and image url are required", nil)
		return
	}
	respondAction(c, "Image added to gallery.", func() error {
		_, err := repositories.GalleryRepository{}.Insert(g)
		return err
	})
}

// DELETE /api/admin/gallery/:id
func DeleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondAction(c, "Image removed from gallery.", func() error {
		return repositories.GalleryRepository{}.Delete(id)
	})
}
