package repositories

import (
	"database/sql"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
)

// AuthRepository stores authentication identities (phone + password hash).
type AuthRepository struct {
	DB *sql.DB
}

func (r AuthRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AuthRepository) GetByPhone(phone string) (models.AuthUser, error) {
	var u models.AuthUser
	err := r.db().QueryRow(`
		SELECT id, phone, password_hash, COALESCE(name,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM auth_users
		WHERE phone = ?
	`, phone).Scan(&u.ID, &u.Phone, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "auth user", Err: err}
	}
	return u, err
}

func (r AuthRepository) GetByID(id string) (models.AuthUser, error) {
	var u models.AuthUser
	err := r.db().QueryRow(`
		SELECT id, phone, password_hash, COALESCE(name,''),
		       COALESCE(DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s'),'')
		FROM auth_users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.Phone, &u.PasswordHash, &u.Name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "auth user", Err: err}
	}
	return u, err
}

func (r AuthRepository) Insert(u models.AuthUser) error {
	_, err := r.db().Exec(`
		INSERT INTO auth_users (id, phone, password_hash, name, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, u.ID, u.Phone, u.PasswordHash, u.Name)
	return err
}

func (r AuthRepository) UpdatePassword(id, passwordHash string) error {
	res, err := r.db().Exec(`UPDATE auth_users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "auth user"}
	}
	return nil
}

func (r AuthRepository) CountByPhone(phone string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM auth_users WHERE phone = ?`, phone).Scan(&n)
	return n, err
}
