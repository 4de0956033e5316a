package handlers

import (
	"net/http"

	"impulso/models"
	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// GetOngHandler returns one ONG profile.
func (h *HandlerBundle) GetOngHandler(c *gin.Context) {
	ong, err := h.Ongs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ong)
}

// MyOngHandler returns the ONG profile of the authenticated account.
func (h *HandlerBundle) MyOngHandler(c *gin.Context) {
	ong, err := h.Ongs.GetByUserID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ong)
}

// ListOngsHandler lists every partner organization.
func (h *HandlerBundle) ListOngsHandler(c *gin.Context) {
	ongs, err := h.Ongs.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ongs)
}

// UpdateOngHandler applies a partial update to an ONG profile.
func (h *HandlerBundle) UpdateOngHandler(c *gin.Context) {
	var upd models.OngUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Ongs.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// OngRosterHandler lists the ONG's jovens with their statistics.
func (h *HandlerBundle) OngRosterHandler(c *gin.Context) {
	roster, err := h.Ongs.Roster(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}
