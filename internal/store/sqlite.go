package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/microcombo/internal/model"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("run not found")

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id              TEXT PRIMARY KEY,
		input           TEXT NOT NULL,
		target_seconds  INTEGER NOT NULL,
		original_digits TEXT NOT NULL,
		original_cost   REAL NOT NULL,
		digits          TEXT NOT NULL,
		total_seconds   INTEGER NOT NULL,
		cost            REAL NOT NULL,
		window_lower    INTEGER NOT NULL,
		window_upper    INTEGER NOT NULL,
		created_at      TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_input ON runs(input);
	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

const runColumns = `id, input, target_seconds, original_digits, original_cost, digits,
	total_seconds, cost, window_lower, window_upper, created_at`

func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Run, error) {
	return s.insert(ctx, p, time.Now().UTC())
}

func (s *SQLiteStore) insert(ctx context.Context, p RecordParams, at time.Time) (*model.Run, error) {
	if p.Input == "" {
		return nil, fmt.Errorf("input is required")
	}
	id := s.newID(at)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Input, p.TargetSeconds, p.OriginalDigits, p.OriginalCost, p.Digits,
		p.TotalSeconds, p.Cost, p.WindowLower, p.WindowUpper, at.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	return &model.Run{
		ID:             id,
		Input:          p.Input,
		TargetSeconds:  p.TargetSeconds,
		OriginalDigits: p.OriginalDigits,
		OriginalCost:   p.OriginalCost,
		Digits:         p.Digits,
		TotalSeconds:   p.TotalSeconds,
		Cost:           p.Cost,
		WindowLower:    p.WindowLower,
		WindowUpper:    p.WindowUpper,
		CreatedAt:      at,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Run, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	var where []string
	var args []interface{}
	if p.Input != "" {
		where = append(where, "input = ?")
		args = append(args, p.Input)
	}

	query := `SELECT ` + runColumns + ` FROM runs`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	return s.queryRuns(ctx, query, args...)
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) (int64, error) {
	var res sql.Result
	var err error
	if p.All {
		res, err = s.db.ExecContext(ctx, `DELETE FROM runs`)
	} else {
		res, err = s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, p.ID)
	}
	if err != nil {
		return 0, err
	}

	n, _ := res.RowsAffected()
	if !p.All && n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryRuns(ctx context.Context, query string, args ...interface{}) ([]model.Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (model.Run, error) {
	var r model.Run
	var createdAt string

	err := row.Scan(
		&r.ID, &r.Input, &r.TargetSeconds, &r.OriginalDigits, &r.OriginalCost, &r.Digits,
		&r.TotalSeconds, &r.Cost, &r.WindowLower, &r.WindowUpper, &createdAt,
	)
	if err != nil {
		return r, err
	}

	r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return r, nil
}
