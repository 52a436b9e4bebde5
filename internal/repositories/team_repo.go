package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

// TeamRepository reads the optional team_members table. A deployment
// without the table simply hides the Our Team feature.
type TeamRepository struct {
	DB *sql.DB
}

func (r TeamRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns members ordered for display. A missing table yields an
// empty list and no error.
func (r TeamRepository) List() ([]models.TeamMember, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "team_members") {
		return []models.TeamMember{}, nil
	}

	rows, err := db.Query(`
		SELECT id, name, COALESCE(role,''), COALESCE(responsibility,''),
		       COALESCE(image_url,''), COALESCE(display_order,0)
		FROM team_members
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		if intdb.IsMissingTable(err) {
			return []models.TeamMember{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	out := []models.TeamMember{}
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Responsibility, &m.ImageURL, &m.DisplayOrder); err != nil {
			return out, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r TeamRepository) Insert(m models.TeamMember) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO team_members (name, role, responsibility, image_url, display_order)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Role, m.Responsibility, intdb.NullIfEmpty(m.ImageURL), m.DisplayOrder)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TeamRepository) Update(id int64, m models.TeamMember) error {
	_, err := r.db().Exec(`
		UPDATE team_members SET name=?, role=?, responsibility=?, image_url=?, display_order=?
		WHERE id=?
	`, m.Name, m.Role, m.Responsibility, intdb.NullIfEmpty(m.ImageURL), m.DisplayOrder, id)
	return err
}

func (r TeamRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM team_members WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "team member"}
	}
	return nil
}
