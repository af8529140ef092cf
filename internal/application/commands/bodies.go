package commands

import (
	"context"

	"iris/internal/domain"
)

// ListBodiesCommand lists the supported bodies
type ListBodiesCommand struct{}

// NewListBodiesCommand creates a new ListBodiesCommand
func NewListBodiesCommand() *ListBodiesCommand {
	return &ListBodiesCommand{}
}

// Execute returns every supported body ordered by distance from the Sun
func (c *ListBodiesCommand) Execute(ctx context.Context) ([]domain.Body, error) {
	return domain.Bodies(), nil
}
