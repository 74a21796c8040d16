package entity

// Customer is a billable party. ImageURL points at the customer's avatar in
// object storage.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

// CustomerSummary is a customer row augmented with invoice aggregates.
// Customers without invoices appear with zero totals.
type CustomerSummary struct {
	ID            string
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int
	TotalPending  int64 // cents
	TotalPaid     int64 // cents
}
