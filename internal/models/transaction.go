package models

// MonthlyFlow holds the current month's ledger totals split by direction.
// It is derived from the transaction ledger at read time, never stored.
type MonthlyFlow struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
