package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	TripID    int64 `json:"trip_id"`
	SeatCount int   `json:"seat_count"`
}

// POST /api/bookings
// Runs behind OptionalAuth: an unauthenticated join request answers 401
// with a pending action, so the client can send the member back to the
// same trip after login.
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rc := middleware.RequestContext(c)
	if !rc.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Please log in to join this trip.",
			"code":    "login_required",
			"pending_action": domain.PendingAction{
				View:   "tripDetail",
				TripID: req.TripID,
			},
		})
		return
	}

	svc := services.BookingService{}
	respondAction(c, "Your request to join has been sent! The admin will confirm your booking soon.", func() error {
		_, err := svc.Create(rc, req.TripID, req.SeatCount)
		return err
	})
}

// GET /api/me/bookings
func MyBookings(c *gin.Context) {
	rc := middleware.RequestContext(c)
	bookings, err := repositories.BookingRepository{}.ListByUser(rc.UserID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

type bookingStatusRequest struct {
	AdminStatus string `json:"admin_status"`
}

// PUT /api/admin/bookings/:id/status
func UpdateBookingStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req bookingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{}
	respondAction(c, "Booking status updated.", func() error {
		return svc.UpdateStatus(id, req.AdminStatus)
	})
}

// GET /api/bookings/:id/confirmation
// Owner or admin only.
func BookingConfirmation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	rc := middleware.RequestContext(c)
	booking, err := repositories.BookingRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if booking.UserID != rc.UserID && !rc.IsAdmin() {
		RespondError(c, http.StatusForbidden, "Access Denied.", nil)
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateConfirmation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
