package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

type ProfileRepository struct {
	DB *sql.DB
}

func (r ProfileRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const profileColumns = `
	id, name, phone, role,
	COALESCE(dob,''), COALESCE(address,''), COALESCE(blood_group,''),
	COALESCE(emergency_contact_name,''), COALESCE(emergency_contact_phone,''),
	COALESCE(gov_id_type,''), COALESCE(gov_id_number,''),
	COALESCE(gov_id_image_url,''), COALESCE(profile_image_url,'')`

func scanProfile(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Phone, &u.Role,
		&u.DOB, &u.Address, &u.BloodGroup,
		&u.EmergencyContactName, &u.EmergencyContactPhone,
		&u.GovIDType, &u.GovIDNumber,
		&u.GovIDImageURL, &u.ProfileImageURL,
	)
	return u, err
}

func (r ProfileRepository) GetByID(id string) (models.User, error) {
	u, err := scanProfile(r.db().QueryRow(`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "profile", Err: err}
	}
	return u, err
}

func (r ProfileRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanProfile(rows)
		if err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Insert creates the default profile row for an authenticated identity.
func (r ProfileRepository) Insert(u models.User) error {
	_, err := r.db().Exec(`
		INSERT INTO profiles (id, name, phone, role)
		VALUES (?, ?, ?, ?)
	`, u.ID, u.Name, u.Phone, u.Role)
	return err
}

func (r ProfileRepository) Update(id string, p models.ProfileUpdate) error {
	res, err := r.db().Exec(`
		UPDATE profiles SET
		  name=?, phone=?, dob=?, address=?, blood_group=?,
		  emergency_contact_name=?, emergency_contact_phone=?,
		  gov_id_type=?, gov_id_number=?, gov_id_image_url=?, profile_image_url=?
		WHERE id=?
	`,
		p.Name, p.Phone,
		intdb.NullIfEmpty(p.DOB), intdb.NullIfEmpty(p.Address), intdb.NullIfEmpty(p.BloodGroup),
		intdb.NullIfEmpty(p.EmergencyContactName), intdb.NullIfEmpty(p.EmergencyContactPhone),
		intdb.NullIfEmpty(p.GovIDType), intdb.NullIfEmpty(p.GovIDNumber),
		intdb.NullIfEmpty(p.GovIDImageURL), intdb.NullIfEmpty(p.ProfileImageURL),
		id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// zero rows can also mean "nothing changed"; confirm existence
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}

func (r ProfileRepository) UpdateRole(id, role string) error {
	res, err := r.db().Exec(`UPDATE profiles SET role = ? WHERE id = ?`, role, id)
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
