package application

import (
	"strconv"
	"strings"

	"github.com/acmehq/finance-api/internal/domain/entity"
	"github.com/acmehq/finance-api/pkg/money"
)

// InvoiceFormInput is the untrusted invoice form as submitted: every field a
// raw string.
type InvoiceFormInput struct {
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

// InvoiceInput is the typed, constrained record produced from a valid form.
// Amount is already normalized to cents; this is the only place the decimal
// to minor-unit conversion happens.
type InvoiceInput struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// ParseInvoiceInput validates the raw form and coerces the amount to cents.
// Violations are reported per field; a non-empty result means the input must
// not touch the store.
func ParseInvoiceInput(raw InvoiceFormInput) (InvoiceInput, FieldErrors) {
	errs := FieldErrors{}

	customerID := strings.TrimSpace(raw.CustomerID)
	if customerID == "" {
		errs.add("customer_id", "Please select a customer.")
	}

	var cents int64
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw.Amount), 64)
	if err != nil || amount <= 0 {
		errs.add("amount", "Please enter an amount greater than $0.")
	} else {
		cents = money.ToCents(amount)
	}

	status := strings.TrimSpace(raw.Status)
	if status != entity.StatusPending && status != entity.StatusPaid {
		errs.add("status", "Please select an invoice status.")
	}

	if len(errs) > 0 {
		return InvoiceInput{}, errs
	}
	return InvoiceInput{CustomerID: customerID, AmountCents: cents, Status: status}, nil
}
