package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func (r TestimonialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TestimonialRepository) List() ([]models.Testimonial, error) {
	rows, err := r.db().Query(`
		SELECT id, author_name, COALESCE(author_location,''), COALESCE(author_image_url,''),
		       message, COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM testimonials
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.AuthorName, &t.AuthorLocation, &t.AuthorImageURL, &t.Message, &t.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TestimonialRepository) Insert(t models.Testimonial) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO testimonials (author_name, author_location, author_image_url, message, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, t.AuthorName, t.AuthorLocation, intdb.NullIfEmpty(t.AuthorImageURL), t.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TestimonialRepository) Update(id int64, t models.Testimonial) error {
	_, err := r.db().Exec(`
		UPDATE testimonials SET author_name=?, author_location=?, author_image_url=?, message=?
		WHERE id=?
	`, t.AuthorName, t.AuthorLocation, intdb.NullIfEmpty(t.AuthorImageURL), t.Message, id)
	return err
}

func (r TestimonialRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "testimonial"}
	}
	return nil
}
