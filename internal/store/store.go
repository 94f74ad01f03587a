// Package store provides the run history interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/microcombo/internal/model"
)

// RecordParams holds parameters for recording an optimization run.
type RecordParams struct {
	Input          string
	TargetSeconds  int
	OriginalDigits string
	OriginalCost   float64
	Digits         string
	TotalSeconds   int
	Cost           float64
	WindowLower    int
	WindowUpper    int
}

// ListParams holds parameters for listing runs.
type ListParams struct {
	Input string // exact input filter, empty means all
	Limit int
}

// RmParams holds parameters for deleting runs.
type RmParams struct {
	ID  string
	All bool
}

// Store defines the run history interface.
type Store interface {
	// Record stores a run. Returns the created run.
	Record(ctx context.Context, p RecordParams) (*model.Run, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*model.Run, error)

	// List lists runs newest first.
	List(ctx context.Context, p ListParams) ([]model.Run, error)

	// Rm deletes one run, or all of them.
	Rm(ctx context.Context, p RmParams) (int64, error)

	// Close closes the store.
	Close() error
}
