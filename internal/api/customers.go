package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-service/internal/models"
)

type createCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *Handler) listCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetCustomers())
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	customer, err := h.store.GetCustomer(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) listCustomerOrders(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.store.GetCustomer(id); err != nil {
		errorJSON(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, h.store.GetOrdersByCustomer(id))
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	customer := h.store.CreateCustomer(models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.store.UpdateCustomer(id, patch)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteCustomer(id) {
		errorJSON(c, http.StatusNotFound, "Customer not found")
		return
	}
	c.Status(http.StatusNoContent)
}
