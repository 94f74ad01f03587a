package store

import (
	"context"
	"time"

	"github.com/rcliao/microcombo/internal/model"
)

// ExportAll returns every run, oldest first.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.Run, error) {
	return s.queryRuns(ctx, `SELECT `+runColumns+` FROM runs ORDER BY created_at, id`)
}

// Import stores runs from an export, keeping their original timestamps.
// Runs get fresh IDs.
func (s *SQLiteStore) Import(ctx context.Context, runs []model.Run) (int, error) {
	imported := 0
	for _, r := range runs {
		at := r.CreatedAt
		if at.IsZero() {
			at = time.Now().UTC()
		}
		_, err := s.insert(ctx, RecordParams{
			Input:          r.Input,
			TargetSeconds:  r.TargetSeconds,
			OriginalDigits: r.OriginalDigits,
			OriginalCost:   r.OriginalCost,
			Digits:         r.Digits,
			TotalSeconds:   r.TotalSeconds,
			Cost:           r.Cost,
			WindowLower:    r.WindowLower,
			WindowUpper:    r.WindowUpper,
		}, at.UTC())
		if err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
