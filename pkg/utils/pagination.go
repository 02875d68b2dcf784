package utils

// ClampPage приводит номер страницы к допустимому значению (page >= 1).
func ClampPage(page int) uint64 {
	if page < 1 {
		return 1
	}
	return uint64(page)
}

// OffsetFor возвращает смещение для страницы при фиксированном лимите.
func OffsetFor(page uint64, limit uint64) uint64 {
	return (page - 1) * limit
}

// TotalPages - ceil(total/limit). При total=0 страниц ноль.
func TotalPages(total uint64, limit uint64) uint64 {
	if limit == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Pagination - блок pagination в ответах списков.
type Pagination struct {
	CurrentPage uint64 `json:"currentPage"`
	TotalPages  uint64 `json:"totalPages"`
	SearchQuery string `json:"searchQuery"`
	Categoria   string `json:"categoria,omitempty"`
}
