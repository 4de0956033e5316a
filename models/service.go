package models

import "time"

// Service catalog entry statuses.
const (
	ServiceAvailable = "available"
	ServiceInactive  = "inactive"
)

// Service is a catalog entry clients can book.
type Service struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Category      string    `bson:"category" json:"category"`
	BasePrice     float64   `bson:"basePrice" json:"basePrice"`
	DurationHours float64   `bson:"durationHours" json:"durationHours"`
	OngID         string    `bson:"ongId" json:"ongId"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceUpdate is the explicit partial update for a catalog entry.
type ServiceUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	BasePrice     *float64 `json:"basePrice,omitempty"`
	DurationHours *float64 `json:"durationHours,omitempty"`
	Status        *string  `json:"status,omitempty"`
}

// ServiceFilter narrows catalog listings.
type ServiceFilter struct {
	Category string
	OngID    string
	Status   string
}
