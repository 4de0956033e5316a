package handlers

import (
	"net/http"

	"impulso/models"
	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// CreateReviewHandler appends a standalone review (for example a jovem
// reviewing a client after the fact). Completion reviews go through the
// booking completion endpoint instead.
func (h *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	var rev models.Review
	if err := c.ShouldBindJSON(&rev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Reviews.Create(c.Request.Context(), rev)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListReviewsHandler lists reviews filtered by query parameters.
func (h *HandlerBundle) ListReviewsHandler(c *gin.Context) {
	filter := models.ReviewFilter{
		JovemID:   c.Query("jovemId"),
		ClientID:  c.Query("clientId"),
		BookingID: c.Query("bookingId"),
	}

	reviews, err := h.Reviews.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
