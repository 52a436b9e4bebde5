package services

import (
	"errors"
	"testing"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRunFailedWriteSkipsReload(t *testing.T) {
	svc := ActionService{}
	wantErr := errors.New("write rejected")

	_, err := svc.Run(domain.RequestContext{}, func() error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the write error, got %v", err)
	}
}

func TestRunReloadsSnapshotAfterWrite(t *testing.T) {
	bootstrap, mock, done := bootstrapWithDB(t)
	defer done()

	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery("FROM trips").WillReturnRows(tripRow(1, "Ayodhya Yatra"))
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(bookingCols))
	mock.ExpectQuery("FROM gallery").WillReturnRows(
		sqlmock.NewRows([]string{"id", "trip_id", "image_url", "caption"}))
	mock.ExpectQuery("FROM donations").WillReturnRows(
		sqlmock.NewRows([]string{"id", "donor_name", "user_id", "amount", "transaction_id", "created_at"}))
	mock.ExpectQuery("FROM testimonials").WillReturnRows(
		sqlmock.NewRows([]string{"id", "author_name", "author_location", "author_image_url", "message", "created_at"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("team_members").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("FROM config").WillReturnRows(
		sqlmock.NewRows([]string{"key", "value"}))

	svc := ActionService{Bootstrap: bootstrap}
	snap, err := svc.Run(domain.RequestContext{}, func() error {
		_, err := bootstrap.Trips.Insert(models.Trip{
			Title: "Ayodhya Yatra", Date: "2025-11-20", Status: domain.TripUpcoming,
		})
		return err
	})
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if len(snap.Trips) != 1 {
		t.Fatalf("expected the reloaded snapshot to carry the new trip, got %d", len(snap.Trips))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The runner is fire-and-refresh with no dedup of its own: submitting the
// same insert twice reaches the database twice, and two rows exist. The
// only duplicate guards are the database's own constraints.
func TestRunTwiceInsertsTwoRows(t *testing.T) {
	bootstrap, mock, done := bootstrapWithDB(t)
	defer done()

	mock.ExpectExec("INSERT INTO donations").WillReturnResult(sqlmock.NewResult(1, 1))
	expectSnapshotReload(mock)
	mock.ExpectExec("INSERT INTO donations").WillReturnResult(sqlmock.NewResult(2, 1))
	expectSnapshotReload(mock)

	svc := ActionService{Bootstrap: bootstrap}
	insert := func() error {
		_, err := bootstrap.Donations.Insert(models.Donation{DonorName: "Asha Sharma", Amount: 501})
		return err
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.Run(domain.RequestContext{}, insert); err != nil {
			t.Fatalf("run %d error: %v", i+1, err)
		}
	}

	// both inserts must have reached the database
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
