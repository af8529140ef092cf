package commands

import (
	"context"
	"errors"

	"iris/internal/domain"
	"iris/internal/ports"
)

// DefaultHistoryLimit is used when no positive limit is given
const DefaultHistoryLimit = 20

// ErrHistoryDisabled is returned when no history repository is configured
var ErrHistoryDisabled = errors.New("history is disabled")

// ListHistoryCommand lists recent calculations
type ListHistoryCommand struct {
	repo  ports.HistoryRepository
	Limit int
}

// NewListHistoryCommand creates a new ListHistoryCommand
func NewListHistoryCommand(repo ports.HistoryRepository, limit int) *ListHistoryCommand {
	return &ListHistoryCommand{
		repo:  repo,
		Limit: limit,
	}
}

// Execute returns up to Limit calculations, newest first
func (c *ListHistoryCommand) Execute(ctx context.Context) ([]domain.Calculation, error) {
	if c.repo == nil {
		return nil, ErrHistoryDisabled
	}
	limit := c.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return c.repo.List(ctx, limit)
}

// ClearHistoryCommand deletes all stored calculations
type ClearHistoryCommand struct {
	repo ports.HistoryRepository
}

// NewClearHistoryCommand creates a new ClearHistoryCommand
func NewClearHistoryCommand(repo ports.HistoryRepository) *ClearHistoryCommand {
	return &ClearHistoryCommand{repo: repo}
}

// Execute removes the history and returns how many records were deleted
func (c *ClearHistoryCommand) Execute(ctx context.Context) (int64, error) {
	if c.repo == nil {
		return 0, ErrHistoryDisabled
	}
	return c.repo.Clear(ctx)
}
