package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain/models"
)

type DonationRepository struct {
	DB *sql.DB
}

func (r DonationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DonationRepository) List() ([]models.Donation, error) {
	rows, err := r.db().Query(`
		SELECT id, donor_name, user_id, amount, COALESCE(transaction_id,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM donations
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Donation{}
	for rows.Next() {
		var d models.Donation
		var userID sql.NullString
		if err := rows.Scan(&d.ID, &d.DonorName, &userID, &d.Amount, &d.TransactionID, &d.CreatedAt); err != nil {
			return out, err
		}
		if userID.Valid {
			v := userID.String
			d.UserID = &v
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DonationRepository) Insert(d models.Donation) (int64, error) {
	var userID any
	if d.UserID != nil {
		userID = *d.UserID
	}
	res, err := r.db().Exec(`
		INSERT INTO donations (donor_name, user_id, amount, transaction_id, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, d.DonorName, userID, d.Amount, intdb.NullIfEmpty(d.TransactionID))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
