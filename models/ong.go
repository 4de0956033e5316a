package models

import "time"

// Ong is a partner organization that recruits and supervises jovens.
type Ong struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Location    Location  `bson:"location" json:"location"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// OngUpdate is the explicit partial update for an ONG profile.
type OngUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *Location `json:"location,omitempty"`
}
