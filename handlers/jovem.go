package handlers

import (
	"net/http"

	"impulso/models"
	"impulso/services/jovem"
	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// CreateJovemHandler onboards a jovem under the calling ONG.
func (h *HandlerBundle) CreateJovemHandler(c *gin.Context) {
	var req jovem.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.OngID == "" {
		// Resolve the ONG from the authenticated account.
		profile, err := h.Ongs.GetByUserID(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		req.OngID = profile.ID
	}

	created, err := h.Jovens.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetJovemHandler returns one jovem profile with its statistics.
func (h *HandlerBundle) GetJovemHandler(c *gin.Context) {
	jv, err := h.Jovens.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jv)
}

// ListJovensHandler lists jovens, optionally scoped to one ONG.
func (h *HandlerBundle) ListJovensHandler(c *gin.Context) {
	jovens, err := h.Jovens.List(c.Request.Context(), c.Query("ongId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jovens)
}

// UpdateJovemHandler applies a partial update to a jovem profile.
func (h *HandlerBundle) UpdateJovemHandler(c *gin.Context) {
	var upd models.JovemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Jovens.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJovemHandler removes a jovem profile.
func (h *HandlerBundle) DeleteJovemHandler(c *gin.Context) {
	if err := h.Jovens.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "jovem removed"})
}
