package models

import "time"

// Liability categories recognized by the aggregation engine.
const (
	LiabilityCategoryLoans        = "loans"
	LiabilityCategoryCreditCards  = "credit_cards"
	LiabilityCategoryMortgages    = "mortgages"
	LiabilityCategoryBusinessDebt = "business_debt"
	LiabilityCategoryOther        = "other"
)

// Liability represents a manually tracked debt
type Liability struct {
	ID              int64      `json:"id"`
	OwnerID         string     `json:"owner_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Type            string     `json:"type"`
	CurrentBalance  float64    `json:"current_balance"`
	OriginalBalance *float64   `json:"original_balance,omitempty"`
	InterestRate    float64    `json:"interest_rate"`
	MonthlyPayment  float64    `json:"monthly_payment"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
