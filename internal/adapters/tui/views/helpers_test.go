package views

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/domain"
)

var defaultCopy = copyToClipboard

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

type memoryHistory struct {
	mu    sync.Mutex
	calcs []domain.Calculation
	err   error
}

func (m *memoryHistory) Save(_ context.Context, c *domain.Calculation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.calcs = append([]domain.Calculation{*c}, m.calcs...)
	return nil
}

func (m *memoryHistory) List(_ context.Context, limit int) ([]domain.Calculation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if limit > len(m.calcs) {
		limit = len(m.calcs)
	}
	return append([]domain.Calculation(nil), m.calcs[:limit]...), nil
}

func (m *memoryHistory) Clear(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := int64(len(m.calcs))
	m.calcs = nil
	return n, nil
}
