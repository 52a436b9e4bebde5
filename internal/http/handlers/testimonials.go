package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/testimonials
func GetTestimonials(c *gin.Context) {
	testimonials, err := repositories.TestimonialRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load testimonials", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func validTestimonial(t *models.Testimonial) bool {
	t.AuthorName = utils.NormalizeSpace(t.AuthorName)
	t.Message = utils.TrimOrEmpty(t.Message)
	return t.AuthorName != "" && t.Message != ""
}

// POST /api/admin/testimonials
func CreateTestimonial(c *gin.Context) {
	var t models.Testimonial
	if !BindJSONOrError(c, &t) {
		return
	}
	if !validTestimonial(&t) {
		RespondError(c, http.StatusBadRequest, "author name and message are required", nil)
		return
	}
	respondAction(c, "Testimonial added.", func() error {
		_, err := repositories.TestimonialRepository{}.Insert(t)
		return err
	})
}

// PUT /api/admin/testimonials/:id
func UpdateTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var t models.Testimonial
	if !BindJSONOrError(c, &t) {
		return
	}
	if !validTestimonial(&t) {
		RespondError(c, http.StatusBadRequest, "author name and message are required", nil)
		return
	}
	respondAction(c, "Testimonial updated.", func() error {
		return repositories.TestimonialRepository{}.Update(id, t)
	})
}

// DELETE /api/admin/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondAction(c, "Testimonial deleted.", func() error {
		return repositories.TestimonialRepository{}.Delete(id)
	})
}
