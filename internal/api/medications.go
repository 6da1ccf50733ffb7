package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pharmacy-service/internal/models"
)

type createMedicationRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category" binding:"required,oneof=antibiotic analgesic antiviral antihistamine cardiovascular dermatological gastrointestinal hormone respiratory vitamin other"`
	Description  string          `json:"description"`
	Dosage       string          `json:"dosage" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	CurrentStock int             `json:"currentStock" binding:"min=0"`
	MinimumStock int             `json:"minimumStock" binding:"min=0"`
	Unit         string          `json:"unit" binding:"required"`
	SupplierID   int64           `json:"supplierId" binding:"required"`
}

func (h *Handler) listMedications(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetMedications())
}

func (h *Handler) listLowStockMedications(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetLowStockMedications())
}

func (h *Handler) searchMedications(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SearchMedications(c.Query("q")))
}

func (h *Handler) getMedication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	med, err := h.store.GetMedication(id)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Medication not found")
		return
	}
	c.JSON(http.StatusOK, med)
}

func (h *Handler) createMedication(c *gin.Context) {
	var req createMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	med := h.store.CreateMedication(models.Medication{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		Dosage:       req.Dosage,
		Price:        req.Price,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		Unit:         req.Unit,
		SupplierID:   req.SupplierID,
	})
	c.JSON(http.StatusCreated, med)
}

func (h *Handler) updateMedication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.MedicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	med, err := h.store.UpdateMedication(id, patch)
	if err != nil {
		errorJSON(c, http.StatusNotFound, "Medication not found")
		return
	}
	c.JSON(http.StatusOK, med)
}

func (h *Handler) deleteMedication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if !h.store.DeleteMedication(id) {
		errorJSON(c, http.StatusNotFound, "Medication not found")
		return
	}
	c.Status(http.StatusNoContent)
}
