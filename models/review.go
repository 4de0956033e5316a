package models

import "time"

// Review target types. Only jovem-targeted reviews feed the statistics rollup.
const (
	ReviewTargetJovem  = "jovem"
	ReviewTargetClient = "client"
)

// Review is an append-only record; it is never mutated after creation.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	JovemID    string    `bson:"jovemId" json:"jovemId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	TargetType string    `bson:"targetType" json:"targetType"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Photos     []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewFilter narrows review listings.
type ReviewFilter struct {
	JovemID   string
	ClientID  string
	BookingID string
}
