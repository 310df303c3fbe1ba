package models

import "time"

// Asset categories recognized by the aggregation engine.
const (
	AssetCategoryProperty    = "property"
	AssetCategoryInvestments = "investments"
	AssetCategoryCash        = "cash"
	AssetCategoryVehicles    = "vehicles"
	AssetCategoryPersonal    = "personal"
	AssetCategoryBusiness    = "business"
	AssetCategoryOther       = "other"
)

// Asset represents a manually tracked asset
type Asset struct {
	ID            int64     `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	CurrentValue  float64   `json:"current_value"`
	OriginalValue *float64  `json:"original_value,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
