// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive persists parsed schedules in a SQLite database so that
// schedules from past runs can be listed and compared later. Extraction
// itself never reads or writes the archive.
package archive

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/schedextract/internal/schedule"
	"github.com/pdiddy/schedextract/pkg/types"
)

// DefaultDBPath is used when no database path is configured.
const DefaultDBPath = "schedules.db"

// ErrNotFound reports a schedule ID that is not in the archive.
var ErrNotFound = errors.New("schedule not found")

// SaveStatus describes what Save did with a schedule.
type SaveStatus string

const (
	StatusStored  SaveStatus = "stored"
	StatusUpdated SaveStatus = "updated"
	StatusSkipped SaveStatus = "skipped"
)

// Store manages the archive SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the archive database at cfg.DBPath and creates
// the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS schedules (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL UNIQUE,
			filename TEXT NOT NULL,
			title TEXT,
			period TEXT,
			text_hash TEXT NOT NULL,
			stored_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS courses (
			schedule_id INTEGER NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (schedule_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_period ON schedules(period)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// hashText returns the hex SHA-256 of text.
func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Save stores the parsed schedule for r, keyed by its source path. A
// schedule whose text is unchanged since it was last stored is skipped.
func (s *Store) Save(ctx context.Context, r types.ExtractionResult, info types.ScheduleInfo) (SaveStatus, error) {
	hash := hashText(r.Text)

	var (
		id         int64
		storedHash string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, text_hash FROM schedules WHERE source_path = ?`, r.SourcePath,
	).Scan(&id, &storedHash)
	switch {
	case err == nil && storedHash == hash:
		return StatusSkipped, nil
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("looking up %s: %w", r.SourcePath, err)
	}
	isUpdate := err == nil

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	storedAt := s.now().UTC().Format(time.RFC3339Nano)
	err = tx.QueryRowContext(ctx,
		`INSERT INTO schedules (source_path, filename, title, period, text_hash, stored_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_path) DO UPDATE SET
			filename=excluded.filename, title=excluded.title, period=excluded.period,
			text_hash=excluded.text_hash, stored_at=excluded.stored_at
		 RETURNING id`,
		r.SourcePath, r.Filename, nullable(info.Title), nullable(info.Period), hash, storedAt,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("upserting schedule: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE schedule_id = ?`, id); err != nil {
		return "", fmt.Errorf("deleting old courses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO courses (schedule_id, position, name) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range info.Courses {
		if _, err := stmt.ExecContext(ctx, id, i+1, c); err != nil {
			return "", fmt.Errorf("inserting course %q: %w", c, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	if isUpdate {
		return StatusUpdated, nil
	}
	return StatusStored, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// IngestSummary holds counts from an archive run.
type IngestSummary struct {
	Stored  int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of schedules processed.
func (s IngestSummary) Total() int {
	return s.Stored + s.Updated + s.Skipped + s.Failed
}

// Ingest parses each result and saves it, printing one status line per
// schedule and a summary to w.
func (s *Store) Ingest(ctx context.Context, results []types.ExtractionResult, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		info := schedule.Parse(r.Text)
		status, err := s.Save(ctx, r, info)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", r.Filename, err)
			summary.Failed++
			continue
		}

		switch status {
		case StatusStored:
			summary.Stored++
		case StatusUpdated:
			summary.Updated++
		case StatusSkipped:
			summary.Skipped++
		}
		fmt.Fprintf(w, "%-7s %s (%s, %d courses)\n", status, r.Filename, info.PeriodOrUnknown(), len(info.Courses))
	}

	fmt.Fprintf(w, "\nstored: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Stored, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

// List returns every archived schedule ordered by filename, with courses.
func (s *Store) List(ctx context.Context) ([]types.ArchivedSchedule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, filename, title, period, text_hash, stored_at
		 FROM schedules ORDER BY filename, id`)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	defer rows.Close()

	var out []types.ArchivedSchedule
	for rows.Next() {
		a, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	rows.Close()

	for i := range out {
		courses, err := s.courses(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Courses = courses
	}
	return out, nil
}

// Get returns the archived schedule with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (types.ArchivedSchedule, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, filename, title, period, text_hash, stored_at
		 FROM schedules WHERE id = ?`, id)
	a, err := scanSchedule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ArchivedSchedule{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return types.ArchivedSchedule{}, err
	}
	a.Courses, err = s.courses(ctx, id)
	if err != nil {
		return types.ArchivedSchedule{}, err
	}
	return a, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSchedule(sc scanner) (types.ArchivedSchedule, error) {
	var (
		a             types.ArchivedSchedule
		title, period sql.NullString
		storedAt      string
	)
	if err := sc.Scan(&a.ID, &a.SourcePath, &a.Filename, &title, &period, &a.TextHash, &storedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, err
		}
		return a, fmt.Errorf("scanning schedule: %w", err)
	}
	a.Title = title.String
	a.Period = period.String
	if t, err := time.Parse(time.RFC3339Nano, storedAt); err == nil {
		a.StoredAt = t
	}
	return a, nil
}

func (s *Store) courses(ctx context.Context, id int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM courses WHERE schedule_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("loading courses: %w", err)
	}
	defer rows.Close()

	courses := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, name)
	}
	return courses, rows.Err()
}
