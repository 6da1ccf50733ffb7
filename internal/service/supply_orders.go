package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmacy-service/internal/models"
	"pharmacy-service/internal/util"
)

// SupplyOrderPayload is the order part of a supply order creation request.
type SupplyOrderPayload struct {
	OrderNumber string `json:"orderNumber"`
	SupplierID  int64  `json:"supplierId" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=pending ordered received cancelled"`
	Notes       string `json:"notes"`
}

// SupplyOrderItemPayload is one requested supply order line.
type SupplyOrderItemPayload struct {
	MedicationID int64           `json:"medicationId" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// CreateSupplyOrderRequest carries a new supply order with its lines.
type CreateSupplyOrderRequest struct {
	Order SupplyOrderPayload       `json:"order" binding:"required"`
	Items []SupplyOrderItemPayload `json:"items" binding:"required,min=1,dive"`
}

// CreateSupplyOrder validates every line against the medication catalog and
// stores the replenishment order. As with customer orders, an invalid line
// rejects the whole request before anything is written.
func (s *OrderService) CreateSupplyOrder(ctx context.Context, req *CreateSupplyOrderRequest) (models.SupplyOrderDetail, error) {
	_, span := util.StartSpan(ctx, "OrderService.CreateSupplyOrder")
	defer span.End()

	items := make([]models.SupplyOrderItem, 0, len(req.Items))
	for _, p := range req.Items {
		med, err := s.store.GetMedication(p.MedicationID)
		if err != nil {
			util.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
			return models.SupplyOrderDetail{}, fmt.Errorf("%w: %d", ErrUnknownMedication, p.MedicationID)
		}
		unitPrice := p.UnitPrice
		if unitPrice.IsNegative() {
			util.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
			return models.SupplyOrderDetail{}, fmt.Errorf("%w: medication %d", ErrInvalidUnitPrice, p.MedicationID)
		}
		if unitPrice.IsZero() {
			unitPrice = med.Price
		}
		items = append(items, models.SupplyOrderItem{
			MedicationID: p.MedicationID,
			Quantity:     p.Quantity,
			UnitPrice:    unitPrice,
		})
	}

	order := models.SupplyOrder{
		OrderNumber: req.Order.OrderNumber,
		SupplierID:  req.Order.SupplierID,
		Status:      req.Order.Status,
		Notes:       req.Order.Notes,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber("SUP")
	}

	created, _ := s.store.CreateSupplyOrder(order, items)
	util.SupplyOrdersCreatedTotal.Inc()
	s.logger.Info("Supply order created",
		zap.Int64("supply_order_id", created.ID),
		zap.String("order_number", created.OrderNumber))

	return s.store.GetSupplyOrderWithItems(created.ID)
}

// UpdateSupplyOrderStatus transitions a supply order. Receiving an order
// restocks every referenced medication inside the store.
func (s *OrderService) UpdateSupplyOrderStatus(ctx context.Context, id int64, status string) (models.SupplyOrder, error) {
	_, span := util.StartSpan(ctx, "OrderService.UpdateSupplyOrderStatus")
	defer span.End()

	order, err := s.store.UpdateSupplyOrderStatus(id, status)
	if err != nil {
		return models.SupplyOrder{}, err
	}
	if status == models.SupplyOrderStatusReceived {
		util.SupplyOrdersReceivedTotal.Inc()
		s.logger.Info("Supply order received, stock updated",
			zap.Int64("supply_order_id", order.ID))
	}
	return order, nil
}
