package models

// StatusAll is the filter value meaning "no status constraint". It is never
// sent to the backend; the status parameter is omitted instead.
const StatusAll = "all"

// InvoiceFilters scopes an invoice listing query. Zero values mean
// "no constraint". Dates are ISO-8601 strings passed through verbatim.
type InvoiceFilters struct {
	Status    string
	StartDate string
	EndDate   string
	Search    string
	Page      int
}

// Merge overlays non-zero fields of other onto f and returns the result.
// A Status of StatusAll in other explicitly clears the status constraint.
func (f InvoiceFilters) Merge(other InvoiceFilters) InvoiceFilters {
	out := f
	if other.Status != "" {
		out.Status = other.Status
	}
	if other.StartDate != "" {
		out.StartDate = other.StartDate
	}
	if other.EndDate != "" {
		out.EndDate = other.EndDate
	}
	if other.Search != "" {
		out.Search = other.Search
	}
	if other.Page != 0 {
		out.Page = other.Page
	}
	return out
}

// PaginationInfo describes the position of the current result page. It is
// derived from a fetch result and replaced wholesale, never mutated.
type PaginationInfo struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// DefaultPageSize is the page size the gateway list view renders with.
const DefaultPageSize = 10

// DerivePagination recomputes pagination for a result set of n items at the
// given page.
func DerivePagination(page, n int) PaginationInfo {
	if page < 1 {
		page = 1
	}
	totalPages := (n + DefaultPageSize - 1) / DefaultPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginationInfo{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   n,
		ItemsPerPage: DefaultPageSize,
	}
}
