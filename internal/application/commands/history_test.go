package commands

import (
	"context"
	"errors"
	"testing"

	"iris/internal/domain"
)

func TestListHistoryCommand(t *testing.T) {
	history := &memoryHistory{}
	for i := 0; i < DefaultHistoryLimit+5; i++ {
		history.saved = append(history.saved, domain.Calculation{Body: domain.Mars})
	}

	calcs, err := NewListHistoryCommand(history, 0).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calcs) != DefaultHistoryLimit {
		t.Errorf("expected default limit %d, got %d", DefaultHistoryLimit, len(calcs))
	}

	calcs, err = NewListHistoryCommand(history, 3).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calcs) != 3 {
		t.Errorf("expected 3, got %d", len(calcs))
	}
}

func TestClearHistoryCommand(t *testing.T) {
	history := &memoryHistory{saved: make([]domain.Calculation, 4)}

	n, err := NewClearHistoryCommand(history).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 deleted, got %d", n)
	}
	if len(history.saved) != 0 {
		t.Error("expected empty history")
	}
}

func TestHistoryCommands_Disabled(t *testing.T) {
	if _, err := NewListHistoryCommand(nil, 5).Execute(context.Background()); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled, got %v", err)
	}
	if _, err := NewClearHistoryCommand(nil).Execute(context.Background()); !errors.Is(err, ErrHistoryDisabled) {
		t.Errorf("expected ErrHistoryDisabled, got %v", err)
	}
}

func TestListBodiesCommand(t *testing.T) {
	bodies, err := NewListBodiesCommand().Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bodies) != 8 || bodies[3] != domain.Mars {
		t.Errorf("unexpected bodies: %v", bodies)
	}
}
