package entity

import "time"

// Invoice status values. Amounts are always integer cents.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // cents
	Status     string
	Date       time.Time
}

// InvoiceRow is an invoice joined with its owning customer's identity fields,
// as listed on the invoices table view.
type InvoiceRow struct {
	ID            string
	Amount        int64 // cents
	Date          time.Time
	Status        string
	CustomerName  string
	CustomerEmail string
	ImageURL      string
}
