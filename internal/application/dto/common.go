package dto

// PageRequest page-number pagination for listings.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Normalize applies defaults and caps: page >= 1, 1 <= page_size <= 100.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset returns the row offset for the current page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages computes the page count for a total row count.
func (p PageRequest) TotalPages(total int) int {
	if p.PageSize == 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OKResponse acknowledgment body for deletes.
type OKResponse struct {
	OK bool `json:"ok"`
}
