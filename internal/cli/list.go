package cli

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/invoices"
	"paygate/internal/models"
	"paygate/internal/session"
)

const msgNoCredential = "Nenhuma credencial armazenada. Use 'login' primeiro."

// ensureList performs the initial page load once and seeds the list state
// with its result. A missing credential routes the user to login.
func (a *App) ensureList(ctx context.Context) error {
	if a.list != nil {
		return nil
	}

	data, err := invoices.LoadInitial(ctx, a.repo, a.client, a.log)
	if err != nil {
		if errors.Is(err, session.ErrNoCredential) {
			fmt.Fprintln(a.out, msgNoCredential)
		}
		return err
	}

	a.list = invoices.NewListState(a.client, data, a.log)
	return nil
}

// List renders the invoice list. A partial filter set updates the view
// first: filter changes reset to the first page, a bare page change keeps
// the current filters.
func (a *App) List(ctx context.Context, partial models.InvoiceFilters) error {
	if err := a.ensureList(ctx); err != nil {
		return err
	}

	hasFilter := partial.Status != "" || partial.StartDate != "" || partial.EndDate != "" || partial.Search != ""
	switch {
	case hasFilter:
		page := partial.Page
		partial.Page = 0
		a.list.UpdateFilters(ctx, partial)
		if page > 1 {
			a.list.GoToPage(ctx, page)
		}
	case partial.Page > 0:
		a.list.GoToPage(ctx, partial.Page)
	}

	return a.renderList()
}

// Refresh re-fetches the current view.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.ensureList(ctx); err != nil {
		return err
	}
	a.list.Refresh(ctx)
	return a.renderList()
}

// GoToPage moves the current view to the requested page.
func (a *App) GoToPage(ctx context.Context, page int) error {
	if err := a.ensureList(ctx); err != nil {
		return err
	}
	a.list.GoToPage(ctx, page)
	return a.renderList()
}

func (a *App) renderList() error {
	if msg := a.list.Err(); msg != "" {
		fmt.Fprintln(a.out, msg)
		if len(a.list.Invoices()) == 0 {
			return nil
		}
	}
	return renderInvoices(a.out, a.cfg.Output, a.list.Invoices(), a.list.Pagination())
}
