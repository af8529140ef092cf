package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"iris/internal/domain"
	"iris/internal/ports"
)

const schemaVersion = "1"

// HistoryStore implements ports.HistoryRepository using SQLite
type HistoryStore struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Ensure HistoryStore implements HistoryRepository
var _ ports.HistoryRepository = (*HistoryStore)(nil)

// NewHistoryStore creates a new, unopened SQLite history store
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{now: time.Now}
}

// DefaultPath returns $XDG_DATA_HOME/iris/history.db
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "iris", "history.db")
}

// Open creates or opens the database at dbPath
func (s *HistoryStore) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS calculations (
			id TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			start_at INTEGER NOT NULL,
			end_at INTEGER NOT NULL,
			distance_km REAL NOT NULL,
			velocity_km_s REAL NOT NULL,
			resolver TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the resolved database path
func (s *HistoryStore) Path() string {
	return s.dbPath
}

// Close closes the database connection
func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save inserts a calculation
func (s *HistoryStore) Save(ctx context.Context, calc *domain.Calculation) error {
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = s.now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, body, start_at, end_at, distance_km, velocity_km_s, resolver, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, calc.ID, calc.Body.Slug(), calc.Start.UnixNano(), calc.End.UnixNano(),
		calc.Result.DistanceKm, calc.Result.VelocityKmS, calc.Resolver, calc.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// List returns up to limit calculations, newest first
func (s *HistoryStore) List(ctx context.Context, limit int) ([]domain.Calculation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, body, start_at, end_at, distance_km, velocity_km_s, resolver, created_at
		FROM calculations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calcs []domain.Calculation
	for rows.Next() {
		var (
			calc                      domain.Calculation
			body                      string
			startAt, endAt, createdAt int64
		)
		if err := rows.Scan(&calc.ID, &body, &startAt, &endAt,
			&calc.Result.DistanceKm, &calc.Result.VelocityKmS, &calc.Resolver, &createdAt); err != nil {
			return nil, err
		}

		calc.Body, err = domain.ParseBody(body)
		if err != nil {
			return nil, fmt.Errorf("calculation %s: %w", calc.ID, err)
		}
		calc.Start = time.Unix(0, startAt).UTC()
		calc.End = time.Unix(0, endAt).UTC()
		calc.CreatedAt = time.Unix(0, createdAt).UTC()

		calcs = append(calcs, calc)
	}
	return calcs, rows.Err()
}

// Clear deletes every calculation
func (s *HistoryStore) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calculations`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
