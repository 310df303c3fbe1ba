package models

import "time"

// Kinds of externally linked accounts.
const (
	AccountKindBank        = "bank"
	AccountKindMobileMoney = "mobile_money"
)

// ConnectedAccount is a balance sourced from the account-linking provider.
// Rows are written by the balance refresh job and read-only to the
// aggregation core. Connected balances always count toward the cash
// asset category.
type ConnectedAccount struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	AccountRef  string    `json:"account_ref"`
	AccountKind string    `json:"account_kind"`
	Balance     float64   `json:"balance"`
	UpdatedAt   time.Time `json:"updated_at"`
}
