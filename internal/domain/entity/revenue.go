package entity

// Revenue is a pre-aggregated monthly revenue sample. Read-only.
type Revenue struct {
	Month   string
	Revenue int64
}
