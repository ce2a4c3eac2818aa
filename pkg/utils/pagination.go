package utils

// MaxPageSize caps reviewer work-queue pages.
const MaxPageSize = 100

// PaginationParams holds normalized page/limit request parameters.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta describes the full result set a page was cut from.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams normalizes raw query values: page starts at 1,
// limit 0 means unbounded, and oversized limits are clamped.
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 0:
		limit = 0
	case limit > MaxPageSize:
		limit = MaxPageSize
	}
	return PaginationParams{Page: page, Limit: limit}
}

// CalculateOffset returns the SQL offset for the page.
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta builds response metadata for a counted result set.
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		// Unbounded query: everything fits on one page.
		return PaginationMeta{Page: 1, Limit: int(totalCount), TotalCount: totalCount, TotalPages: 1}
	}

	pages := int(totalCount / int64(limit))
	if totalCount%int64(limit) != 0 {
		pages++
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: pages,
	}
}
