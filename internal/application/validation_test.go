package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoiceInput_Valid(t *testing.T) {
	in, errs := ParseInvoiceInput(InvoiceFormInput{
		CustomerID: "cust-1",
		Amount:     "250.00",
		Status:     "pending",
	})
	require.Nil(t, errs)
	assert.Equal(t, "cust-1", in.CustomerID)
	assert.Equal(t, int64(25000), in.AmountCents)
	assert.Equal(t, "pending", in.Status)
}

func TestParseInvoiceInput_AllFieldsMissing(t *testing.T) {
	_, errs := ParseInvoiceInput(InvoiceFormInput{})
	require.NotNil(t, errs)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs["customer_id"], "Please select a customer.")
	assert.Contains(t, errs["amount"], "Please enter an amount greater than $0.")
	assert.Contains(t, errs["status"], "Please select an invoice status.")
}

func TestParseInvoiceInput_AmountMustBePositive(t *testing.T) {
	for _, amount := range []string{"0", "-1", "-0.01", "abc", ""} {
		_, errs := ParseInvoiceInput(InvoiceFormInput{
			CustomerID: "cust-1",
			Amount:     amount,
			Status:     "paid",
		})
		require.NotNil(t, errs, "amount %q", amount)
		assert.Contains(t, errs["amount"], "Please enter an amount greater than $0.")
	}
}

func TestParseInvoiceInput_StatusEnum(t *testing.T) {
	for _, status := range []string{"", "unknown", "PAID", "overdue"} {
		_, errs := ParseInvoiceInput(InvoiceFormInput{
			CustomerID: "cust-1",
			Amount:     "10",
			Status:     status,
		})
		require.NotNil(t, errs, "status %q", status)
		assert.Contains(t, errs["status"], "Please select an invoice status.")
	}

	for _, status := range []string{"pending", "paid"} {
		_, errs := ParseInvoiceInput(InvoiceFormInput{
			CustomerID: "cust-1",
			Amount:     "10",
			Status:     status,
		})
		assert.Nil(t, errs, "status %q", status)
	}
}
