// Package invoices owns the list-view state for invoices: the active filter
// set, the current result page, loading and error flags, and the initial
// page-load routine.
package invoices

import (
	"context"
	"sync"

	"paygate/internal/api"
	"paygate/internal/logging"
	"paygate/internal/models"
)

// LoadErrorMessage is the fixed user-facing message shown when a listing
// fetch fails, matching the gateway product copy.
const LoadErrorMessage = "Erro ao carregar faturas. Tente novamente."

// ListState holds the state of one invoice-list view. Results and
// pagination are replaced wholesale on every fetch; a failed fetch keeps
// the previous results visible and sets the error message instead.
//
// Every fetch is tagged with a monotonically increasing sequence number and
// a completion is applied only while it is still the latest issued, so a
// slow superseded response can never overwrite a newer result.
type ListState struct {
	client api.Client
	log    logging.Logger

	mu         sync.Mutex
	seq        uint64
	filters    models.InvoiceFilters
	invoices   []models.Invoice
	pagination models.PaginationInfo
	loading    bool
	errMsg     string
}

// NewListState builds a ListState seeded with initial data, typically from
// LoadInitial. No fetch is issued on construction.
func NewListState(client api.Client, initial InitialData, log logging.Logger) *ListState {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &ListState{
		client:     client,
		log:        log.With("component", "invoices"),
		filters:    models.InvoiceFilters{Status: models.StatusAll, Page: 1},
		invoices:   initial.Invoices,
		pagination: models.DerivePagination(1, len(initial.Invoices)),
		errMsg:     initial.Err,
	}
}

// UpdateFilters merges partial changes into the current filter set, resets
// the target page to 1, and issues exactly one fetch.
func (s *ListState) UpdateFilters(ctx context.Context, partial models.InvoiceFilters) {
	s.mu.Lock()
	merged := s.filters.Merge(partial)
	merged.Page = 1
	s.filters = merged
	s.mu.Unlock()

	s.fetch(ctx, merged)
}

// GoToPage re-fetches the current filter set at the requested page.
func (s *ListState) GoToPage(ctx context.Context, page int) {
	s.mu.Lock()
	s.filters.Page = page
	effective := s.filters
	s.mu.Unlock()

	s.fetch(ctx, effective)
}

// Refresh re-fetches the current filters and page unchanged.
func (s *ListState) Refresh(ctx context.Context) {
	s.mu.Lock()
	effective := s.filters
	s.mu.Unlock()

	s.fetch(ctx, effective)
}

// fetch runs one listing attempt. Loading is set for its duration and the
// outcome is only applied when this attempt is still the latest issued.
func (s *ListState) fetch(ctx context.Context, effective models.InvoiceFilters) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	result, err := s.client.ListInvoices(ctx, effective)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.Debug(ctx, "discarding superseded fetch", "seq", seq, "latest", s.seq)
		return
	}
	s.loading = false

	if err != nil {
		s.log.Error(ctx, "listing invoices failed", "error", err)
		s.errMsg = LoadErrorMessage
		return
	}

	s.invoices = result
	s.pagination = models.DerivePagination(effective.Page, len(result))
	s.errMsg = ""
}

// Invoices returns the current result list.
func (s *ListState) Invoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// Pagination returns the pagination derived from the last successful fetch.
func (s *ListState) Pagination() models.PaginationInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pagination
}

// Filters returns the active filter set.
func (s *ListState) Filters() models.InvoiceFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// IsLoading reports whether a fetch is in flight.
func (s *ListState) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the current user-facing error message, or "".
func (s *ListState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
