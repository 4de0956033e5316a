package handlers

import (
	"net/http"

	"impulso/models"
	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler books a catalog service for the authenticated client.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.ClientID = c.GetString("userID")

	booking, err := h.Bookings.CreateBooking(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler lists bookings filtered by query parameters.
func (h *HandlerBundle) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		ClientID: c.Query("clientId"),
		JovemID:  c.Query("jovemId"),
		Status:   models.BookingStatus(c.Query("status")),
	}
	// Clients only ever see their own bookings.
	if c.GetString("role") == models.RoleCliente {
		filter.ClientID = c.GetString("userID")
	}

	bookings, err := h.Bookings.ListBookings(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking by id.
func (h *HandlerBundle) GetBookingHandler(c *gin.Context) {
	booking, err := h.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// AcceptBookingHandler confirms a booking on behalf of a jovem.
func (h *HandlerBundle) AcceptBookingHandler(c *gin.Context) {
	var req struct {
		JovemID string `json:"jovemId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	acceptedBy := c.GetString("role")
	booking, err := h.Bookings.AcceptBooking(c.Request.Context(), c.Param("id"), req.JovemID, acceptedBy)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// RejectBookingHandler declines a booking on behalf of a jovem.
func (h *HandlerBundle) RejectBookingHandler(c *gin.Context) {
	var req struct {
		JovemID string `json:"jovemId"`
		Reason  string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Bookings.RejectBooking(c.Request.Context(), c.Param("id"), req.JovemID, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GeneratePinHandler reissues the check-in PIN for the assigned jovem.
func (h *HandlerBundle) GeneratePinHandler(c *gin.Context) {
	var req struct {
		JovemID string `json:"jovemId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Bookings.GenerateCheckInPin(c.Request.Context(), c.Param("id"), req.JovemID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	// The PIN itself travels out of band; the response only confirms reissue.
	c.JSON(http.StatusOK, gin.H{
		"bookingId":   booking.ID,
		"pinIssuedAt": booking.PinIssuedAt,
	})
}

// CheckInHandler validates the PIN submitted by the client and starts the
// service.
func (h *HandlerBundle) CheckInHandler(c *gin.Context) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Bookings.ValidateCheckInPin(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Pin)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CompleteBookingHandler finalizes an in-progress booking with the client's
// review.
func (h *HandlerBundle) CompleteBookingHandler(c *gin.Context) {
	var req models.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.BookingID = c.Param("id")
	req.ClientID = c.GetString("userID")

	booking, err := h.Bookings.CompleteBooking(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels a not-yet-started booking.
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Bookings.CancelBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// RescheduleBookingHandler moves a booking to a new date and time.
func (h *HandlerBundle) RescheduleBookingHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booking, err := h.Bookings.RescheduleBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Date, req.Time)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// AvailableSlotsHandler lists open start times for a jovem/service/date.
func (h *HandlerBundle) AvailableSlotsHandler(c *gin.Context) {
	jovemID := c.Query("jovemId")
	serviceID := c.Query("serviceId")
	date := c.Query("date")
	if jovemID == "" || serviceID == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "jovemId, serviceId and date are required")
		return
	}

	slots, err := h.Bookings.AvailableSlots(c.Request.Context(), jovemID, serviceID, date)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// AvailableServicesHandler lists services bookable by the caller.
func (h *HandlerBundle) AvailableServicesHandler(c *gin.Context) {
	services, err := h.Bookings.AvailableServices(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// PendingForOngHandler lists pending bookings recommending the ONG's jovens.
func (h *HandlerBundle) PendingForOngHandler(c *gin.Context) {
	bookings, err := h.Bookings.PendingForOng(c.Request.Context(), c.Param("ongId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// PendingForJovemHandler lists pending bookings recommending the jovem.
func (h *HandlerBundle) PendingForJovemHandler(c *gin.Context) {
	bookings, err := h.Bookings.PendingForJovem(c.Request.Context(), c.Param("jovemId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
