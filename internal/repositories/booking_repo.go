package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id, trip_id, user_id, COALESCE(seat_count,1), admin_status, COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.TripID, &b.UserID, &b.SeatCount, &b.AdminStatus, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) List() ([]models.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
}

func (r BookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// Insert relies on the UNIQUE(trip_id, user_id) key; a duplicate attempt
// surfaces as ConflictError so the caller can answer informationally.
func (r BookingRepository) Insert(tripID int64, userID string, seatCount int) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (trip_id, user_id, seat_count, admin_status, created_at)
		VALUES (?, ?, ?, 'pending', NOW())
	`, tripID, userID, seatCount)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return 0, domain.ConflictError{
				Resource: "booking",
				Msg:      "You have already requested to join this trip.",
				Err:      err,
			}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) UpdateStatus(id int64, status string) error {
	res, err := r.db().Exec(`UPDATE bookings SET admin_status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
