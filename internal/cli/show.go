package cli

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/api"
)

// Show fetches and renders a single invoice by id.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, msgNoCredential)
		return nil
	}

	inv, err := a.client.GetInvoice(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrNotFound):
			fmt.Fprintf(a.out, "Fatura %s não encontrada\n", id)
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Fprintln(a.out, msgInvalidAPIKey)
		default:
			fmt.Fprintln(a.out, "Erro ao carregar a fatura. Tente novamente.")
		}
		a.log.Error(ctx, "invoice lookup failed", "id", id, "error", err)
		return nil
	}

	return renderInvoice(a.out, a.cfg.Output, inv)
}
