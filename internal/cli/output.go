package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"paygate/internal/models"
)

// formatAmount renders minor currency units as a BRL value, e.g. 1050 →
// "R$ 10,50".
func formatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sR$ %d,%02d", sign, cents/100, cents%100)
}

// renderInvoices writes a result page in the requested format: "table"
// (default), "json" or "yaml".
func renderInvoices(w io.Writer, format string, list []models.Invoice, p models.PaginationInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		return yaml.NewEncoder(w).Encode(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(w, "Nenhuma fatura encontrada")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVALOR\tSTATUS\tMÉTODO\tDESCRIÇÃO\tCRIADA EM")
	for _, inv := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			inv.ID,
			formatAmount(inv.Amount),
			inv.Status,
			inv.PaymentType,
			inv.Description,
			inv.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Página %d de %d (%d faturas)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
	return nil
}

// renderInvoice writes a single invoice in the requested format.
func renderInvoice(w io.Writer, format string, inv *models.Invoice) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(inv)
	case "yaml":
		return yaml.NewEncoder(w).Encode(inv)
	}

	fmt.Fprintf(w, "ID:          %s\n", inv.ID)
	fmt.Fprintf(w, "Conta:       %s\n", inv.AccountID)
	fmt.Fprintf(w, "Valor:       %s\n", formatAmount(inv.Amount))
	fmt.Fprintf(w, "Status:      %s\n", inv.Status)
	fmt.Fprintf(w, "Método:      %s\n", inv.PaymentType)
	if inv.CardLastDigits != "" {
		fmt.Fprintf(w, "Cartão:      **** %s\n", inv.CardLastDigits)
	}
	fmt.Fprintf(w, "Descrição:   %s\n", inv.Description)
	fmt.Fprintf(w, "Criada em:   %s\n", inv.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Atualizada:  %s\n", inv.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
