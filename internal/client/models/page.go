package models

// PageInfo is the pagination block the API attaches to list responses.
//
// Invariants after Normalize: CurrentPage >= 1, TotalPages >= 0,
// HasPrevious == CurrentPage > 1, HasNext == CurrentPage < TotalPages.
type PageInfo struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// Normalize re-derives the navigation flags from the page counters so that a
// server bug can never convince the client to navigate off the edge.
func (p *PageInfo) Normalize() {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.TotalPages < 0 {
		p.TotalPages = 0
	}
	p.HasPrevious = p.CurrentPage > 1
	p.HasNext = p.CurrentPage < p.TotalPages
}
