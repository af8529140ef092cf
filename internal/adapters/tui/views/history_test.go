package views

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/domain"
)

func seededHistory(n int) *memoryHistory {
	h := &memoryHistory{}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		h.calcs = append(h.calcs, domain.Calculation{
			ID:     string(rune('a' + i)),
			Body:   domain.Bodies()[i%8],
			Start:  base,
			End:    base.Add(24 * time.Hour),
			Result: domain.Result{DistanceKm: 1234567.891, VelocityKmS: -5.3},
		})
	}
	return h
}

func loadHistory(t *testing.T, m *HistoryModel) {
	t.Helper()
	m.Update(m.Reload()())
}

func TestHistoryModel_Load(t *testing.T) {
	m := NewHistoryModel(seededHistory(3))
	loadHistory(t, m)

	view := m.View()
	if !strings.Contains(view, "3 calculations") {
		t.Errorf("missing count:\n%s", view)
	}
	if !strings.Contains(view, "1.234.567,89 km") {
		t.Errorf("missing formatted distance:\n%s", view)
	}
}

func TestHistoryModel_Empty(t *testing.T) {
	m := NewHistoryModel(&memoryHistory{})
	loadHistory(t, m)

	if !strings.Contains(m.View(), "No calculations yet.") {
		t.Error("expected empty state")
	}

	// clearing an empty history does not prompt
	m.Update(keyRunes("x"))
	if m.confirm.Active {
		t.Error("confirmation should not open for an empty history")
	}
}

func TestHistoryModel_LoadError(t *testing.T) {
	m := NewHistoryModel(&memoryHistory{err: errors.New("disk gone")})
	loadHistory(t, m)

	if !m.MessageErr || !strings.Contains(m.Message, "disk gone") {
		t.Errorf("unexpected message %q", m.Message)
	}
}

func TestHistoryModel_ClearConfirmed(t *testing.T) {
	repo := seededHistory(2)
	m := NewHistoryModel(repo)
	loadHistory(t, m)

	m.Update(keyRunes("x"))
	if !m.confirm.Active {
		t.Fatal("expected confirmation prompt")
	}

	_, cmd := m.Update(keyRunes("y"))
	if cmd == nil {
		t.Fatal("expected clear command")
	}
	_, reload := m.Update(cmd())
	if !strings.Contains(m.Message, "Deleted 2") {
		t.Errorf("unexpected message %q", m.Message)
	}
	m.Update(reload())

	if len(repo.calcs) != 0 || len(m.calcs) != 0 {
		t.Errorf("history not cleared: repo=%d view=%d", len(repo.calcs), len(m.calcs))
	}
}

func TestHistoryModel_ClearCancelled(t *testing.T) {
	repo := seededHistory(2)
	m := NewHistoryModel(repo)
	loadHistory(t, m)

	m.Update(keyRunes("x"))
	_, cmd := m.Update(keyRunes("n"))
	if cmd != nil {
		t.Error("cancel should not run a command")
	}
	if m.confirm.Active || len(repo.calcs) != 2 {
		t.Error("cancel should keep the history")
	}
}

func TestHistoryModel_Back(t *testing.T) {
	m := NewHistoryModel(seededHistory(1))
	_, cmd := m.Update(keyType(tea.KeyEsc))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(SwitchToPlanetsMsg); !ok {
		t.Error("esc should switch back to the planets")
	}
}

func TestHistoryModel_Paging(t *testing.T) {
	m := NewHistoryModel(seededHistory(20))
	m.SetSize(80, 15) // five visible rows
	loadHistory(t, m)

	for i := 0; i < 7; i++ {
		m.Update(keyRunes("j"))
	}
	if m.pager.Cursor() != 7 {
		t.Fatalf("cursor = %d, want 7", m.pager.Cursor())
	}
	if start, end := m.pager.VisibleRange(); start != 5 || end != 10 {
		t.Errorf("visible range = [%d,%d), want [5,10)", start, end)
	}
}
