package models

import "time"

// PricingConfigID is the fixed id of the single pricing configuration record.
const PricingConfigID = "global"

// PricingConfig holds the global profit margin applied on top of base prices.
type PricingConfig struct {
	ID            string    `bson:"id" json:"id"`
	MarginPercent float64   `bson:"marginPercent" json:"marginPercent"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
