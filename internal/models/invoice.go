// Package models defines the gateway data types exchanged with the backend
// and the client-side validation applied before anything goes on the wire.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status classifies the processing state of an invoice.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// PaymentType classifies the payment method of an invoice.
type PaymentType string

const (
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeDebitCard  PaymentType = "debit_card"
	PaymentTypePix        PaymentType = "pix"
)

var (
	ErrInvalidStatus      = errors.New("invalid invoice status")
	ErrInvalidPaymentType = errors.New("invalid payment type")
)

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ParsePaymentType converts a raw string into a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(s) {
	case PaymentTypeCreditCard, PaymentTypeDebitCard, PaymentTypePix:
		return PaymentType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentType, s)
}

// Invoice is a single payment request record as returned by the gateway.
// Amount is expressed in minor currency units (cents).
type Invoice struct {
	ID             string      `json:"id"`
	AccountID      string      `json:"account_id"`
	Amount         int64       `json:"amount"`
	Status         Status      `json:"status"`
	Description    string      `json:"description"`
	PaymentType    PaymentType `json:"payment_type"`
	CardLastDigits string      `json:"card_last_digits,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// CreateInvoiceInput is the payload for POST /invoices. Card fields are
// omitted when PaymentType is pix.
type CreateInvoiceInput struct {
	Amount         int64       `json:"amount"`
	Description    string      `json:"description"`
	PaymentType    PaymentType `json:"payment_type"`
	CardNumber     string      `json:"card_number,omitempty"`
	CVV            string      `json:"cvv,omitempty"`
	ExpiryMonth    int         `json:"expiry_month,omitempty"`
	ExpiryYear     int         `json:"expiry_year,omitempty"`
	CardholderName string      `json:"cardholder_name,omitempty"`
}

// FieldError describes a validation failure on a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates per-field validation failures.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// nowFn is a test seam for expiry validation.
var nowFn = time.Now

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Validate applies the client-side checks performed before any network call.
// It returns ValidationErrors listing every failing field, or nil when the
// input is acceptable. Card fields are only checked for card payments.
func (in CreateInvoiceInput) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, FieldError{"description", "Descrição é obrigatória"})
	}
	if in.Amount <= 0 {
		errs = append(errs, FieldError{"amount", "Valor deve ser maior que zero"})
	}
	if _, err := ParsePaymentType(string(in.PaymentType)); err != nil {
		errs = append(errs, FieldError{"payment_type", "Método de pagamento inválido"})
	}

	if in.PaymentType == PaymentTypeCreditCard || in.PaymentType == PaymentTypeDebitCard {
		number := strings.ReplaceAll(in.CardNumber, " ", "")
		if len(number) != 16 || !onlyDigits(number) {
			errs = append(errs, FieldError{"card_number", "Número do cartão deve ter 16 dígitos"})
		}
		if len(in.CVV) != 3 || !onlyDigits(in.CVV) {
			errs = append(errs, FieldError{"cvv", "CVV deve ter 3 dígitos"})
		}
		if in.ExpiryMonth < 1 || in.ExpiryMonth > 12 {
			errs = append(errs, FieldError{"expiry_month", "Mês de expiração é obrigatório"})
		}
		if in.ExpiryYear < nowFn().Year() {
			errs = append(errs, FieldError{"expiry_year", "Ano de expiração é obrigatório"})
		}
		if strings.TrimSpace(in.CardholderName) == "" {
			errs = append(errs, FieldError{"cardholder_name", "Nome do titular é obrigatório"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalize strips spaces from the card number and drops card fields
// entirely for pix payments, matching what the gateway expects.
func (in CreateInvoiceInput) Normalize() CreateInvoiceInput {
	out := in
	if in.PaymentType == PaymentTypePix {
		out.CardNumber = ""
		out.CVV = ""
		out.ExpiryMonth = 0
		out.ExpiryYear = 0
		out.CardholderName = ""
		return out
	}
	out.CardNumber = strings.ReplaceAll(in.CardNumber, " ", "")
	return out
}
