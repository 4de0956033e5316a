package handlers

import (
	"net/http"

	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// GetMarginHandler returns the global margin percentage.
func (h *HandlerBundle) GetMarginHandler(c *gin.Context) {
	margin, err := h.Pricing.GetMargin(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marginPercent": margin})
}

// SetMarginHandler updates the global margin percentage. Already-completed
// bookings keep their captured prices.
func (h *HandlerBundle) SetMarginHandler(c *gin.Context) {
	var req struct {
		MarginPercent float64 `json:"marginPercent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Pricing.SetMargin(c.Request.Context(), req.MarginPercent); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marginPercent": req.MarginPercent})
}
