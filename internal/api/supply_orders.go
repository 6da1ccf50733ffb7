package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-service/internal/service"
)

type supplyOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending ordered received cancelled"`
}

func (h *Handler) listSupplyOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetSupplyOrders())
}

func (h *Handler) getSupplyOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.store.GetSupplyOrderWithItems(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Supply order not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) createSupplyOrder(c *gin.Context) {
	var req service.CreateSupplyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.orders.CreateSupplyOrder(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMedication) || errors.Is(err, service.ErrInvalidUnitPrice) {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to create supply order")
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *Handler) updateSupplyOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req supplyOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orders.UpdateSupplyOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Supply order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteSupplyOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteSupplyOrder(id) {
		errorJSON(c, http.StatusNotFound, "Supply order not found")
		return
	}
	c.Status(http.StatusNoContent)
}
