package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-service/internal/models"
)

type createSupplierRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}

func (h *Handler) listSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetSuppliers())
}

func (h *Handler) getSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	supplier, err := h.store.GetSupplier(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) createSupplier(c *gin.Context) {
	var req createSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	supplier := h.store.CreateSupplier(models.Supplier{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	c.JSON(http.StatusCreated, supplier)
}

func (h *Handler) updateSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.SupplierPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	supplier, err := h.store.UpdateSupplier(id, patch)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Supplier not found")
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *Handler) deleteSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteSupplier(id) {
		errorJSON(c, http.StatusNotFound, "Supplier not found")
		return
	}
	c.Status(http.StatusNoContent)
}
