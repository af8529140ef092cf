package ports

import (
	"context"

	"iris/internal/domain"
)

// HistoryRepository persists completed calculations
type HistoryRepository interface {
	// Save stores calc, assigning ID and CreatedAt when they are empty
	Save(ctx context.Context, calc *domain.Calculation) error

	// List returns up to limit calculations, newest first
	List(ctx context.Context, limit int) ([]domain.Calculation, error)

	// Clear removes every stored calculation and returns how many were deleted
	Clear(ctx context.Context) (int64, error)
}
