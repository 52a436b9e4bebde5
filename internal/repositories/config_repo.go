package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "shraddhayatra/internal/config"
	"shraddhayatra/internal/domain/models"
)

type ConfigRepository struct {
	DB *sql.DB
}

func (r ConfigRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ConfigRepository) List() ([]models.ConfigRow, error) {
	rows, err := r.db().Query("SELECT `key`, `value` FROM config")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ConfigRow{}
	for rows.Next() {
		var row models.ConfigRow
		var raw []byte
		if err := rows.Scan(&row.Key, &raw); err != nil {
			return out, err
		}
		row.Value = json.RawMessage(raw)
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r ConfigRepository) Upsert(key string, value json.RawMessage) error {
	_, err := r.db().Exec(`
		INSERT INTO config (`+"`key`, `value`"+`)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE `+"`value`"+` = VALUES(`+"`value`"+`)
	`, key, []byte(value))
	return err
}
