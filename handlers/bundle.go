// Package handlers exposes the HTTP surface over the service layer.
package handlers

import (
	"impulso/services/booking"
	"impulso/services/catalog"
	"impulso/services/jovem"
	"impulso/services/ong"
	"impulso/services/pricing"
	"impulso/services/review"
	"impulso/services/storage"
	"impulso/services/user"
)

// HandlerBundle groups all endpoint handlers over their backing services.
type HandlerBundle struct {
	Users    user.Service
	Bookings booking.Service
	Jovens   jovem.Service
	Ongs     ong.Service
	Catalog  catalog.Service
	Reviews  review.Service
	Pricing  pricing.Service

	// Content is optional; nil disables the upload endpoints.
	Content storage.StorageService
}
