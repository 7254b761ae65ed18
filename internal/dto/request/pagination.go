package request

const (
	DefaultPerPage = 50
	MaxPerPage     = 100
)

// PaginatedRequest is read from the page and perPage query parameters.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"perPage" validate:"min=1,max=100"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
