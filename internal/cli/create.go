package cli

import (
	"context"
	"errors"
	"fmt"

	"paygate/internal/models"
)

// Create walks the user through a new invoice: prompts, client-side
// validation, then submission. Validation failures are printed per field
// and nothing is sent.
func (a *App) Create(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, msgNoCredential)
		return nil
	}

	in, err := a.promptInvoice()
	if err != nil {
		return err
	}

	if err := in.Validate(); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
			}
			return nil
		}
		return err
	}

	inv, err := a.client.CreateInvoice(ctx, in.Normalize())
	if err != nil {
		fmt.Fprintln(a.out, "Erro ao criar a fatura. Tente novamente.")
		a.log.Error(ctx, "invoice creation failed", "error", err)
		return nil
	}

	fmt.Fprintf(a.out, "Fatura criada: %s (%s)\n", inv.ID, inv.Status)
	a.list = nil // force a fresh load next time the list is shown
	return nil
}

func (a *App) promptInvoice() (models.CreateInvoiceInput, error) {
	var in models.CreateInvoiceInput

	amount, err := getAmount(a.reader, "Valor em centavos", a.out)
	if err != nil {
		return in, err
	}
	in.Amount = amount

	in.Description, err = getSimpleText(a.reader, "Descrição", a.out)
	if err != nil {
		return in, err
	}

	pt, err := getSimpleText(a.reader, "Método de pagamento (credit_card, debit_card, pix)", a.out)
	if err != nil {
		return in, err
	}
	in.PaymentType = models.PaymentType(pt)

	if in.PaymentType == models.PaymentTypePix {
		return in, nil
	}

	in.CardNumber, err = getSimpleText(a.reader, "Número do cartão", a.out)
	if err != nil {
		return in, err
	}
	in.CVV, err = getSimpleText(a.reader, "CVV", a.out)
	if err != nil {
		return in, err
	}
	in.ExpiryMonth, err = getInt(a.reader, "Mês de expiração (1-12)", a.out)
	if err != nil {
		return in, err
	}
	in.ExpiryYear, err = getInt(a.reader, "Ano de expiração", a.out)
	if err != nil {
		return in, err
	}
	in.CardholderName, err = getSimpleText(a.reader, "Nome do titular", a.out)
	if err != nil {
		return in, err
	}

	return in, nil
}
