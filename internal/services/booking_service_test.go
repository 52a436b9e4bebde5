package services

import (
	"testing"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var tripCols = []string{
	"id", "title", "description", "date", "time",
	"from_station", "to_station", "platform",
	"train_no", "ticket_price", "food_price",
	"food_option", "notes", "image_url", "status",
}

func tripRow(id int64, title string) *sqlmock.Rows {
	return sqlmock.NewRows(tripCols).AddRow(
		id, title, "", "2025-11-20", "06:30",
		"Lucknow", "Ayodhya", "2",
		"14208", 1500, 0,
		0, "", "", "Upcoming",
	)
}

var bookingCols = []string{"id", "trip_id", "user_id", "seat_count", "admin_status", "created_at"}

func TestCreateBookingDefaultsSeatCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(42), "u-1", 1).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(bookingCols).
			AddRow(7, 42, "u-1", 1, "pending", "2025-04-09 10:00:00"))

	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Trips:    repositories.TripRepository{DB: db},
	}

	rc := domain.RequestContext{UserID: "u-1", Role: domain.RoleMember}
	b, err := svc.Create(rc, 42, 0)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if b.SeatCount != 1 || b.AdminStatus != "pending" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingDuplicateIsInformationalConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '42-u-1'"})

	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Trips:    repositories.TripRepository{DB: db},
	}

	rc := domain.RequestContext{UserID: "u-1", Role: domain.RoleMember}
	_, err = svc.Create(rc, 42, 2)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "You have already requested to join this trip." {
		t.Fatalf("unexpected conflict message: %q", err.Error())
	}
}

func TestCreateBookingUnknownTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(tripCols))

	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Trips:    repositories.TripRepository{DB: db},
	}

	rc := domain.RequestContext{UserID: "u-1", Role: domain.RoleMember}
	if _, err := svc.Create(rc, 99, 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := BookingService{}
	if err := svc.UpdateStatus(1, "maybe"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
