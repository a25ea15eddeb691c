package api

import (
	"context"

	"paygate/internal/models"
)

// Client is the transport-agnostic contract for talking to the gateway.
type Client interface {
	// SetCredential stores the API key attached to subsequent calls.
	// Passing an empty string clears it. No validation is performed.
	SetCredential(key string)

	// GetAccount looks up the account owning the given API key. It is used
	// to validate a login attempt before committing to session state.
	GetAccount(ctx context.Context, key string) (*models.Account, error)

	// CreateAccount registers a new merchant account.
	CreateAccount(ctx context.Context, in models.CreateAccountInput) (*models.Account, error)

	// CreateInvoice submits a new invoice for processing.
	CreateInvoice(ctx context.Context, in models.CreateInvoiceInput) (*models.Invoice, error)

	// ListInvoices lists invoices for the authenticated account, scoped by
	// the given filters.
	ListInvoices(ctx context.Context, filters models.InvoiceFilters) ([]models.Invoice, error)

	// GetInvoice fetches a single invoice by id.
	GetInvoice(ctx context.Context, id string) (*models.Invoice, error)
}
