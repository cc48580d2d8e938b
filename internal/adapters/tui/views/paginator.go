package views

// Paginator tracks a cursor over a list and the page that keeps it visible
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	p := &Paginator{}
	p.SetPageSize(pageSize)
	return p
}

// SetPageSize changes the number of visible rows
func (p *Paginator) SetPageSize(pageSize int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	p.pageSize = pageSize
	p.ensureCursorInPage()
}

// SetTotal sets the total number of items and resets the cursor to the top
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	p.cursor = 0
	p.pageOffset = 0
}

// Total returns the number of items
func (p *Paginator) Total() int {
	return p.totalItems
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor > 0 {
		p.cursor--
		p.ensureCursorInPage()
		return true
	}
	return false
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor < p.totalItems-1 {
		p.cursor++
		p.ensureCursorInPage()
		return true
	}
	return false
}

// VisibleRange returns the start and end indices for the current page
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

func (p *Paginator) ensureCursorInPage() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}
