package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	trips, err := repositories.TripRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load trips", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := repositories.TripRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func validateTrip(t *models.Trip) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return domain.ValidationError{Field: "title", Msg: "required"}
	}
	if strings.TrimSpace(t.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "required"}
	}
	if t.Status == "" {
		t.Status = domain.TripUpcoming
	}
	if !domain.ValidTripStatus(t.Status) {
		return domain.ValidationError{Field: "status", Msg: "must be Upcoming, Completed or Cancelled"}
	}
	return nil
}

// POST /api/admin/trips
func CreateTrip(c *gin.Context) {
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondAction(c, "Trip created.", func() error {
		_, err := repositories.TripRepository{}.Insert(t)
		return err
	})
}

// PUT /api/admin/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	if err := validateTrip(&t); err != nil {
		RespondDomainError(c, err)
		return
	}
	respondAction(c, "Trip updated.", func() error {
		return repositories.TripRepository{}.Update(id, t)
	})
}

// DELETE /api/admin/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondAction(c, "Trip deleted.", func() error {
		return repositories.TripRepository{}.Delete(id)
	})
}

// GET /api/trips/:id/blessing
func TripBlessing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	trip, err := repositories.TripRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.BlessingService{
		APIKey:    geminiAPIKey,
		RequestID: middleware.GetRequestID(c),
	}
	c.JSON(http.StatusOK, gin.H{"blessing": svc.Blessing(c.Request.Context(), trip)})
}
