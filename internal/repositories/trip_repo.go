package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `
	id, title, COALESCE(description,''),
	COALESCE(DATE_FORMAT(date,'%Y-%m-%d'),''), COALESCE(TIME_FORMAT(time,'%H:%i'),''),
	COALESCE(from_station,''), COALESCE(to_station,''), COALESCE(platform,''),
	COALESCE(train_no,''), COALESCE(ticket_price,0), COALESCE(food_price,0),
	COALESCE(food_option,0), COALESCE(notes,''), COALESCE(image_url,''),
	COALESCE(status,'Upcoming')`

func scanTrip(row interface{ Scan(dest ...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Date, &t.Time,
		&t.FromStation, &t.ToStation, &t.Platform,
		&t.TrainNo, &t.TicketPrice, &t.FoodPrice,
		&t.FoodOption, &t.Notes, &t.ImageURL,
		&t.Status,
	)
	return t, err
}

// List returns all trips, newest journey first.
func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.db().Query(`SELECT ` + tripColumns + ` FROM trips ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip", Err: err}
	}
	return t, err
}

func (r TripRepository) Insert(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (
		  title, description, date, time, from_station, to_station,
		  platform, train_no, ticket_price, food_price, food_option,
		  notes, image_url, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.Title, t.Description, t.Date, t.Time, t.FromStation, t.ToStation,
		t.Platform, t.TrainNo, t.TicketPrice, t.FoodPrice, t.FoodOption,
		t.Notes, t.ImageURL, t.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(id int64, t models.Trip) error {
	_, err := r.db().Exec(`
		UPDATE trips SET
		  title=?, description=?, date=?, time=?, from_station=?, to_station=?,
		  platform=?, train_no=?, ticket_price=?, food_price=?, food_option=?,
		  notes=?, image_url=?, status=?
		WHERE id=?
	`,
		t.Title, t.Description, t.Date, t.Time, t.FromStation, t.ToStation,
		t.Platform, t.TrainNo, t.TicketPrice, t.FoodPrice, t.FoodOption,
		t.Notes, t.ImageURL, t.Status,
		id,
	)
	return err
}

// UpdateDate is the single-field write behind the date-change notification.
func (r TripRepository) UpdateDate(id int64, date string) error {
	_, err := r.db().Exec(`UPDATE trips SET date = ? WHERE id = ?`, date, id)
	return err
}

// UpdateStatus is the single-field write behind the cancellation notification.
func (r TripRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db().Exec(`UPDATE trips SET status = ? WHERE id = ?`, status, id)
	return err
}

func (r TripRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM trips WHERE id = ?`, id)
	return err
}
