package db

import (
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// QueryRower is satisfied by *sql.DB and *sql.Tx.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// HasTable checks the active schema for a table. Used to tolerate optional
// tables (team_members) instead of failing the whole load.
func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		// bad connection included; caller treats false as "absent"
		if errors.Is(err, driver.ErrBadConn) {
			return false
		}
		return false
	}
	return name.Valid && name.String != ""
}

func HasColumn(q QueryRower, table, column string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MySQL server error numbers we switch on. Structured classification,
// never message-substring sniffing.
const (
	mysqlErrDuplicateEntry = 1062
	mysqlErrTableAccess    = 1142
	mysqlErrColumnAccess   = 1143
	mysqlErrNoSuchTable    = 1146
)

func mysqlErrNumber(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicateKey reports a unique-constraint violation.
func IsDuplicateKey(err error) bool {
	return mysqlErrNumber(err) == mysqlErrDuplicateEntry
}

// IsMissingTable reports that the queried table does not exist.
func IsMissingTable(err error) bool {
	return mysqlErrNumber(err) == mysqlErrNoSuchTable
}

// IsAccessDenied reports a grant/privilege failure on a table or column.
func IsAccessDenied(err error) bool {
	n := mysqlErrNumber(err)
	return n == mysqlErrTableAccess || n == mysqlErrColumnAccess
}
