package pagination

// State tracks the pager position for one selected entity. It is recomputed
// whenever the entity selection changes.
type State struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// Clamp forces CurrentPage into [1, max(TotalPages, 1)].
func (s *State) Clamp() {
	if s.TotalPages < 0 {
		s.TotalPages = 0
	}
	limit := s.TotalPages
	if limit < 1 {
		limit = 1
	}
	if s.CurrentPage > limit {
		s.CurrentPage = limit
	}
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
}

// HasPrev reports whether a previous page exists.
func (s State) HasPrev() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (s State) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

// Item is one element of a pager display sequence: either a page number or an
// ellipsis marker standing in for a run of hidden pages.
type Item struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Window computes the sequence of pager items to display: page 1 and the last
// page are always anchored, windowSize pages are shown on each side of the
// current page, and an ellipsis is inserted wherever hidden pages separate an
// anchor from the window.
func Window(currentPage, totalPages, windowSize int) []Item {
	if totalPages <= 0 {
		return nil
	}
	if windowSize < 0 {
		windowSize = 0
	}

	items := []Item{{Page: 1}}
	if totalPages == 1 {
		return items
	}

	lo := currentPage - windowSize
	if lo < 2 {
		lo = 2
	}
	hi := currentPage + windowSize
	if hi > totalPages-1 {
		hi = totalPages - 1
	}

	if lo > 2 {
		items = append(items, Item{Ellipsis: true})
	}
	for p := lo; p <= hi; p++ {
		items = append(items, Item{Page: p})
	}
	if hi < totalPages-1 {
		items = append(items, Item{Ellipsis: true})
	}
	return append(items, Item{Page: totalPages})
}
