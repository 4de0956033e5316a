package models

import "time"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleOng     = "ong"
	RoleJovem   = "jovem"
	RoleCliente = "cliente"
)

// User is an authenticated account of any role.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Type         string    `bson:"type" json:"type"`
	Phone        string    `bson:"phone" json:"phone,omitempty"`
	Location     Location  `bson:"location" json:"location"`
	FirstLogin   bool      `bson:"firstLogin" json:"firstLogin"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserUpdate carries an explicit partial profile update. Nil fields are left
// untouched; there is no dynamic merging of arbitrary payloads.
type UserUpdate struct {
	Name     *string   `json:"name,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	Location *Location `json:"location,omitempty"`
}
