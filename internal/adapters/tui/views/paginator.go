package views

// Paginator keeps a cursor inside a window of visible rows
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a paginator; non-positive sizes default to 10
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes the window height, e.g. after a resize
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.clamp()
}

// SetTotal sets the number of rows and keeps the cursor in range
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	p.clamp()
}

func (p *Paginator) Cursor() int { return p.cursor }

func (p *Paginator) Total() int { return p.totalItems }

// Up moves the cursor up by one
func (p *Paginator) Up() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.clamp()
	return true
}

// Down moves the cursor down by one
func (p *Paginator) Down() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.cursor++
	p.clamp()
	return true
}

// VisibleRange returns the start and end indices of the visible window
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.totalItems)
}

// Reset moves the cursor to the top and forgets the row count
func (p *Paginator) Reset() {
	p.cursor = 0
	p.pageOffset = 0
	p.totalItems = 0
}

func (p *Paginator) clamp() {
	if p.cursor >= p.totalItems {
		p.cursor = max(p.totalItems-1, 0)
	}
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
