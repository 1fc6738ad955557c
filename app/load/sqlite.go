package load

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mahesh-hegde/chitra/app/dataset"
)

func openSQLiteDB(path string) (*sql.DB, error) {
	dbPath := path + "?mode=ro&immutable=1&_journal_mode=OFF"
	slog.Info("opening SQLite DB", "dbPath", dbPath)
	db, err := sql.Open(sqliteDriverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening SQLite DB %q: %w", path, err)
	}
	return db, nil
}

// SQLiteTables lists the user tables of a SQLite file so the caller
// can prompt when there is more than one.
func SQLiteTables(path string) ([]string, error) {
	db, err := openSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing tables of %q: %w", path, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// ReadSQLite loads one table of a SQLite file. Cells are read as text
// and go through the same kind inference as file sources, so a DATE
// column stored as ISO text still becomes a datetime column.
func ReadSQLite(path, table string) (*dataset.Dataset, error) {
	if strings.ContainsAny(table, `"'`) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := openSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		return nil, fmt.Errorf("error reading table %q of %q: %w", table, path, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records [][]string
	scan := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range scan {
		dest[i] = &scan[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning row of %q: %w", table, err)
		}
		record := make([]string, len(header))
		for i, cell := range scan {
			if cell.Valid {
				record[i] = cell.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return FromRecords(header, records)
}
