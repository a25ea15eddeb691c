package invoices

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/api"
	"paygate/internal/models"
)

// fakeGateway implements api.Client with scripted list results. Each call to
// ListInvoices can optionally block until released, to simulate overlapping
// in-flight fetches.
type fakeGateway struct {
	mu       sync.Mutex
	calls    []models.InvoiceFilters
	results  [][]models.Invoice
	errs     []error
	blockers []chan struct{}
}

func (f *fakeGateway) SetCredential(string) {}

func (f *fakeGateway) ListInvoices(_ context.Context, filters models.InvoiceFilters) ([]models.Invoice, error) {
	f.mu.Lock()
	n := len(f.calls)
	f.calls = append(f.calls, filters)
	var blocker chan struct{}
	if n < len(f.blockers) && f.blockers[n] != nil {
		blocker = f.blockers[n]
	}
	f.mu.Unlock()

	if blocker != nil {
		<-blocker
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	var res []models.Invoice
	var err error
	if n < len(f.results) {
		res = f.results[n]
	}
	if n < len(f.errs) {
		err = f.errs[n]
	}
	return res, err
}

func (f *fakeGateway) GetAccount(context.Context, string) (*models.Account, error) {
	return nil, api.ErrUnauthorized
}
func (f *fakeGateway) CreateAccount(context.Context, models.CreateAccountInput) (*models.Account, error) {
	return nil, api.ErrUnavailable
}
func (f *fakeGateway) CreateInvoice(context.Context, models.CreateInvoiceInput) (*models.Invoice, error) {
	return nil, api.ErrUnavailable
}
func (f *fakeGateway) GetInvoice(context.Context, string) (*models.Invoice, error) {
	return nil, api.ErrNotFound
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func inv(id string, status models.Status) models.Invoice {
	return models.Invoice{ID: id, Amount: 500, Status: status, PaymentType: models.PaymentTypePix}
}

func TestNewListStateSeedsInitialData(t *testing.T) {
	f := &fakeGateway{}
	initial := InitialData{Invoices: []models.Invoice{inv("inv-1", models.StatusPending)}}

	s := NewListState(f, initial, nil)

	assert.Zero(t, f.callCount(), "construction must not fetch")
	require.Len(t, s.Invoices(), 1)
	assert.Equal(t, models.StatusPending, s.Invoices()[0].Status)
	assert.Empty(t, s.Err())
	assert.False(t, s.IsLoading())
	assert.Equal(t, 1, s.Pagination().CurrentPage)
}

func TestUpdateFiltersResetsPageAndFetchesOnce(t *testing.T) {
	f := &fakeGateway{results: [][]models.Invoice{{inv("inv-2", models.StatusApproved)}}}
	s := NewListState(f, InitialData{}, nil)
	s.GoToPage(context.Background(), 3)
	f.mu.Lock()
	f.calls = nil
	f.results = [][]models.Invoice{{inv("inv-2", models.StatusApproved)}}
	f.mu.Unlock()

	s.UpdateFilters(context.Background(), models.InvoiceFilters{Status: "approved", Search: "sub"})

	require.Equal(t, 1, f.callCount())
	f.mu.Lock()
	got := f.calls[0]
	f.mu.Unlock()
	assert.Equal(t, "approved", got.Status)
	assert.Equal(t, "sub", got.Search)
	assert.Equal(t, 1, got.Page, "filter updates must reset to page 1")
	assert.Equal(t, 1, s.Filters().Page)
}

func TestGoToPage(t *testing.T) {
	f := &fakeGateway{results: [][]models.Invoice{{inv("inv-3", models.StatusPending)}}}
	s := NewListState(f, InitialData{}, nil)

	s.GoToPage(context.Background(), 2)

	require.Equal(t, 1, f.callCount())
	f.mu.Lock()
	got := f.calls[0]
	f.mu.Unlock()
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 2, s.Pagination().CurrentPage)
}

func TestFetchFailureKeepsStaleResults(t *testing.T) {
	f := &fakeGateway{errs: []error{&api.Error{Status: 500, StatusText: "Internal Server Error"}}}
	initial := InitialData{Invoices: []models.Invoice{inv("inv-old", models.StatusPending)}}
	s := NewListState(f, initial, nil)

	s.Refresh(context.Background())

	assert.Equal(t, LoadErrorMessage, s.Err())
	require.Len(t, s.Invoices(), 1, "previous results stay visible")
	assert.Equal(t, "inv-old", s.Invoices()[0].ID)
	assert.False(t, s.IsLoading(), "loading always cleared")
}

func TestFetchSuccessClearsPreviousError(t *testing.T) {
	f := &fakeGateway{
		errs:    []error{&api.Error{Status: 500, StatusText: "Internal Server Error"}, nil},
		results: [][]models.Invoice{nil, {inv("inv-4", models.StatusApproved)}},
	}
	s := NewListState(f, InitialData{}, nil)

	s.Refresh(context.Background())
	require.Equal(t, LoadErrorMessage, s.Err())

	s.Refresh(context.Background())
	assert.Empty(t, s.Err())
	require.Len(t, s.Invoices(), 1)
}

func TestStaleResponseDoesNotOverwriteNewer(t *testing.T) {
	slow := make(chan struct{})
	f := &fakeGateway{
		blockers: []chan struct{}{slow, nil},
		results: [][]models.Invoice{
			{inv("inv-stale", models.StatusPending)},
			{inv("inv-fresh", models.StatusApproved)},
		},
	}
	s := NewListState(f, InitialData{}, nil)

	done := make(chan struct{})
	go func() {
		s.Refresh(context.Background())
		close(done)
	}()
	waitFor(t, func() bool { return f.callCount() == 1 })

	// Second fetch supersedes the blocked one and completes immediately.
	s.UpdateFilters(context.Background(), models.InvoiceFilters{Status: "approved"})
	require.Len(t, s.Invoices(), 1)
	require.Equal(t, "inv-fresh", s.Invoices()[0].ID)

	// Release the stale fetch; its result must be discarded.
	close(slow)
	<-done

	require.Len(t, s.Invoices(), 1)
	assert.Equal(t, "inv-fresh", s.Invoices()[0].ID)
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.Err())
}
