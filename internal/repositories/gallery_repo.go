package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

type GalleryRepository struct {
	DB *sql.DB
}

func (r GalleryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r GalleryRepository) List() ([]models.GalleryImage, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, image_url, COALESCE(caption,'')
		FROM gallery
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.GalleryImage{}
	for rows.Next() {
		var g models.GalleryImage
		if err := rows.Scan(&g.ID, &g.TripID, &g.ImageURL, &g.Caption); err != nil {
			return out, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r GalleryRepository) Insert(g models.GalleryImage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO gallery (trip_id, image_url, caption)
		VALUES (?, ?, ?)
	`, g.TripID, g.ImageURL, g.Caption)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GalleryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM gallery WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "gallery image"}
	}
	return nil
}
