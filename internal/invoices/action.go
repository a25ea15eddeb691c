package invoices

import (
	"context"

	"paygate/internal/api"
	"paygate/internal/logging"
	"paygate/internal/models"
	"paygate/internal/repositories/credentials"
	"paygate/internal/session"
)

// InitialData is the normalized outcome of the initial page load: either a
// result list or a fixed user-facing message, never both meaningful at once.
type InitialData struct {
	Invoices []models.Invoice
	Err      string
}

// LoadInitial performs the first-page load for the invoice list view.
//
// It reads the persisted credential; when none is stored it returns
// session.ErrNoCredential without touching the network, and the caller
// routes the user to login. Otherwise it configures the adapter and fetches
// the default view (no filters, first page). Backend failures are folded
// into InitialData.Err rather than propagated.
func LoadInitial(ctx context.Context, repo credentials.Repository, client api.Client, log logging.Logger) (InitialData, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}

	key, err := repo.Get(ctx, credentials.KeyAPIKey)
	if err != nil {
		return InitialData{}, err
	}
	if key == "" {
		return InitialData{}, session.ErrNoCredential
	}

	client.SetCredential(key)

	result, err := client.ListInvoices(ctx, models.InvoiceFilters{})
	if err != nil {
		log.Error(ctx, "initial invoice load failed", "error", err)
		return InitialData{Invoices: []models.Invoice{}, Err: LoadErrorMessage}, nil
	}

	return InitialData{Invoices: result}, nil
}
