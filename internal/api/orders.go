package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pharmacy-service/internal/service"
)

const defaultRecentOrdersLimit = 5

type orderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetOrders())
}

func (h *Handler) listRecentOrders(c *gin.Context) {
	limit := defaultRecentOrdersLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			errorJSON(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	c.JSON(http.StatusOK, h.store.GetRecentOrders(limit))
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	detail, err := h.store.GetOrderWithItems(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) createOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.orders.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMedication) || errors.Is(err, service.ErrInvalidUnitPrice) {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		errorJSON(c, http.StatusInternalServerError, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.store.UpdateOrderStatus(id, req.Status)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteOrder(id) {
		errorJSON(c, http.StatusNotFound, "Order not found")
		return
	}
	c.Status(http.StatusNoContent)
}
