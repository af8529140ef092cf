package views

import "testing"

func TestPaginator(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	if p.Up() {
		t.Error("Up at the top should report no movement")
	}
	for i := 0; i < 4; i++ {
		p.Down()
	}
	if p.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 3 || end != 6 {
		t.Errorf("range = [%d,%d), want [3,6)", start, end)
	}

	for i := 0; i < 5; i++ {
		p.Down()
	}
	if p.Cursor() != 6 {
		t.Errorf("cursor = %d, want 6", p.Cursor())
	}
	if start, end := p.VisibleRange(); start != 6 || end != 7 {
		t.Errorf("range = [%d,%d), want [6,7)", start, end)
	}

	// shrinking the list pulls the cursor back in
	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", p.Cursor())
	}
	if start, _ := p.VisibleRange(); start != 0 {
		t.Errorf("start = %d, want 0", start)
	}
}

func TestPaginator_Defaults(t *testing.T) {
	p := NewPaginator(0)
	p.SetTotal(25)
	if _, end := p.VisibleRange(); end != 10 {
		t.Errorf("default page size not applied, end = %d", end)
	}

	p.SetPageSize(-1)
	if _, end := p.VisibleRange(); end != 10 {
		t.Error("non-positive page size should be ignored")
	}

	p.Reset()
	if p.Cursor() != 0 || p.Total() != 0 {
		t.Error("reset should clear state")
	}
}
