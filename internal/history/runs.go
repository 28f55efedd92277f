package history

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	goduckdb "github.com/marcboeker/go-duckdb"
)

// Run is the outcome of validating one file.
type Run struct {
	ID        uuid.UUID
	File      FileFingerprint
	Valid     bool
	Kind      string // failure kind, "" when valid
	Line      int    // failing line, 0 when valid or not tied to a line
	Reason    string // failure reason, "" when valid
	Lines     int
	MetaLines int
	Records   int
	CheckedAt time.Time
}

// NewRun creates a Run for file with a fresh ID, checked now.
func NewRun(file FileFingerprint) Run {
	return Run{
		ID:        uuid.New(),
		File:      file,
		CheckedAt: time.Now().UTC(),
	}
}

// WriteRuns appends runs using the DuckDB Appender API.
func (s *Store) WriteRuns(runs ...Run) error {
	if len(runs) == 0 {
		return nil
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "validation_runs")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range runs {
		if err := appender.AppendRow(
			r.ID.String(), r.File.Path, r.File.Size, r.File.ModTime.UnixNano(),
			r.Valid, r.Kind, int64(r.Line), r.Reason,
			int64(r.Lines), int64(r.MetaLines), int64(r.Records), r.CheckedAt,
		); err != nil {
			return fmt.Errorf("append validation run: %w", err)
		}
	}

	return appender.Flush()
}

const runColumns = `id, path, size, mod_time, valid, kind, line, reason,
	lines, meta_lines, records, checked_at`

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+`
		FROM validation_runs
		ORDER BY checked_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// LastValid returns the newest valid run for a file with the same path,
// size and modification time, or nil if there is none.
func (s *Store) LastValid(fp FileFingerprint) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+`
		FROM validation_runs
		WHERE path=? AND size=? AND mod_time=? AND valid
		ORDER BY checked_at DESC
		LIMIT 1`, fp.Path, fp.Size, fp.ModTime.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("query last valid run: %w", err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// ClearRuns removes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM validation_runs")
	return err
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var id string
		var modTime, line, lines, metaLines, records int64
		if err := rows.Scan(
			&id, &r.File.Path, &r.File.Size, &modTime,
			&r.Valid, &r.Kind, &line, &r.Reason,
			&lines, &metaLines, &records, &r.CheckedAt,
		); err != nil {
			return nil, fmt.Errorf("scan validation run: %w", err)
		}

		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		r.ID = parsed
		r.File.ModTime = time.Unix(0, modTime)
		r.Line = int(line)
		r.Lines = int(lines)
		r.MetaLines = int(metaLines)
		r.Records = int(records)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validation runs: %w", err)
	}
	return runs, nil
}
