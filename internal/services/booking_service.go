package services

import (
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
)

// BookingService handles booking admission and the admin status
// transition. Admission is a plain insert; the unique (trip, user) key in
// the database is the only duplicate guard.
type BookingService struct {
	Bookings repositories.BookingRepository
	Trips    repositories.TripRepository
}

func (s BookingService) Create(rc domain.RequestContext, tripID int64, seatCount int) (models.Booking, error) {
	if tripID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "trip_id", Msg: "required"}
	}
	if seatCount <= 0 {
		seatCount = 1
	}

	if _, err := s.Trips.GetByID(tripID); err != nil {
		return models.Booking{}, err
	}

	id, err := s.Bookings.Insert(tripID, rc.UserID, seatCount)
	if err != nil {
		return models.Booking{}, err
	}

	return s.Bookings.GetByID(id)
}

func (s BookingService) UpdateStatus(bookingID int64, status string) error {
	if !domain.ValidBookingStatus(status) {
		return domain.ValidationError{Field: "admin_status", Msg: "must be pending, approved or rejected"}
	}
	return s.Bookings.UpdateStatus(bookingID, status)
}
