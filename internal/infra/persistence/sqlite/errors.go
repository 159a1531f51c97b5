package sqlite

import (
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"lobby/internal/errors"
)

func sqliteCode(err error) (int, bool) {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0, false
	}

	return sqliteErr.Code(), true
}

func isUniqueConstraintViolation(err error) bool {
	code, ok := sqliteCode(err)

	return ok && (code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY)
}

func isForeignKeyConstraintViolation(err error) bool {
	code, ok := sqliteCode(err)

	return ok && code == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY
}
