package sink

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const createLinesTable = `CREATE TABLE IF NOT EXISTS lines (
	id TEXT PRIMARY KEY,
	line TEXT NOT NULL,
	written_at DATETIME NOT NULL
)`

// SQLiteSink stores each line as a row of the lines table.
type SQLiteSink struct {
	db *sql.DB
}

// NewSQLiteSink opens (or creates) the database at path.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite sink requires a path")
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(createLinesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating lines table: %w", err)
	}
	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) WriteLine(line string) error {
	_, err := s.db.Exec(
		"INSERT INTO lines (id, line, written_at) VALUES (?, ?, ?)",
		uuid.New().String(), line, time.Now().UTC(),
	)
	return err
}

// Lines returns the stored lines in insertion order.
func (s *SQLiteSink) Lines() ([]string, error) {
	rows, err := s.db.Query("SELECT line FROM lines ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying lines: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
