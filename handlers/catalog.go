package handlers

import (
	"net/http"

	"impulso/models"
	"impulso/utils"

	"github.com/gin-gonic/gin"
)

// CreateServiceHandler adds a catalog entry.
func (h *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Catalog.Create(c.Request.Context(), svc)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetServiceHandler returns one catalog entry.
func (h *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListServicesHandler lists catalog entries filtered by query parameters.
func (h *HandlerBundle) ListServicesHandler(c *gin.Context) {
	filter := models.ServiceFilter{
		Category: c.Query("category"),
		OngID:    c.Query("ongId"),
		Status:   c.Query("status"),
	}

	services, err := h.Catalog.List(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler applies a partial update to a catalog entry.
func (h *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	var upd models.ServiceUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler removes a catalog entry.
func (h *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service removed"})
}
