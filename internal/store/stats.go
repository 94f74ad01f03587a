package store

import (
	"context"
	"database/sql"
	"os"

	"github.com/dustin/go-humanize"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string       `json:"db_path"`
	DBSizeBytes  int64        `json:"db_size_bytes"`
	DBSize       string       `json:"db_size"`
	TotalRuns    int          `json:"total_runs"`
	TotalSaved   float64      `json:"total_time_saved"`
	AvgDeviation float64      `json:"avg_deviation_seconds"`
	TopInputs    []InputStats `json:"top_inputs"`
}

// InputStats holds per-input counts. Digits are from the latest run.
type InputStats struct {
	Input  string `json:"input"`
	Count  int    `json:"count"`
	Digits string `json:"digits"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}
	st.DBSize = humanize.Bytes(uint64(st.DBSizeBytes))

	var saved, dev sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), SUM(original_cost - cost), AVG(ABS(total_seconds - target_seconds))
		FROM runs`).Scan(&st.TotalRuns, &saved, &dev)
	if err != nil {
		return st, err
	}
	st.TotalSaved = saved.Float64
	st.AvgDeviation = dev.Float64

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.input, COUNT(*) AS cnt,
		       (SELECT l.digits FROM runs l WHERE l.input = r.input
		        ORDER BY l.created_at DESC, l.id DESC LIMIT 1)
		FROM runs r GROUP BY r.input ORDER BY cnt DESC, r.input LIMIT 10`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var in InputStats
		if err := rows.Scan(&in.Input, &in.Count, &in.Digits); err != nil {
			return st, err
		}
		st.TopInputs = append(st.TopInputs, in)
	}

	return st, rows.Err()
}
