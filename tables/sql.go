package tables

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go-ml.dev/pkg/zorros"
)

/*
OpenSQLite opens an SQLite database as a table source
*/
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	return db, nil
}

/*
ReadSQL reads a table from the result set of an SQL query.
NULL cells become missing values.
*/
func ReadSQL(db *sql.DB, query string, args ...interface{}) (*Table, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, zorros.Wrapf(err, "query failed: %v", err)
	}
	defer rows.Close()
	names, err := rows.Columns()
	if err != nil {
		return nil, zorros.Trace(err)
	}
	cols := make([][]string, len(names))
	cells := make([]sql.NullString, len(names))
	ptrs := make([]interface{}, len(names))
	for i := range cells {
		ptrs[i] = &cells[i]
	}
	for rows.Next() {
		if err = rows.Scan(ptrs...); err != nil {
			return nil, zorros.Trace(err)
		}
		for i, c := range cells {
			v := ""
			if c.Valid {
				v = c.String
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, zorros.Trace(err)
	}
	return New(names, cols)
}
