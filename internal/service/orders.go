package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pharmacy-service/internal/models"
	"pharmacy-service/internal/store"
	"pharmacy-service/internal/util"
)

// ErrUnknownMedication is returned when an order line references a medication
// id that does not exist. The whole request is rejected before any write.
var ErrUnknownMedication = errors.New("unknown medication")

// ErrInvalidUnitPrice is returned when an order line carries a negative price.
var ErrInvalidUnitPrice = errors.New("unit price must not be negative")

// OrderService composes order creation and status transitions on top of the
// store, adding reference validation, metrics and tracing.
type OrderService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{
		store:  st,
		logger: util.GetLogger(),
	}
}

// OrderPayload is the order part of a creation request.
type OrderPayload struct {
	OrderNumber string `json:"orderNumber"`
	CustomerID  int64  `json:"customerId" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	Notes       string `json:"notes"`
}

// OrderItemPayload is one requested order line. When the unit price is zero
// the medication's current list price is used.
type OrderItemPayload struct {
	MedicationID int64           `json:"medicationId" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest carries a new order with its lines.
type CreateOrderRequest struct {
	Order OrderPayload       `json:"order" binding:"required"`
	Items []OrderItemPayload `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder validates every line against the medication catalog, then hands
// the whole batch to the store. Nothing is written if any line is invalid, so
// a failed request leaves no partial order behind. Stock is not touched here;
// inventory only moves when a supply order is received.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (models.OrderDetail, error) {
	_, span := util.StartSpan(ctx, "OrderService.CreateOrder")
	defer span.End()

	items, err := s.buildOrderItems(req.Items)
	if err != nil {
		util.OrdersRejectedTotal.WithLabelValues("invalid_items").Inc()
		return models.OrderDetail{}, err
	}

	order := models.Order{
		OrderNumber: req.Order.OrderNumber,
		CustomerID:  req.Order.CustomerID,
		Status:      req.Order.Status,
		Notes:       req.Order.Notes,
	}
	if order.OrderNumber == "" {
		order.OrderNumber = newOrderNumber("ORD")
	}

	created, _ := s.store.CreateOrder(order, items)
	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.Int64("order_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.String("total", created.TotalAmount.String()))

	return s.store.GetOrderWithItems(created.ID)
}

func (s *OrderService) buildOrderItems(payloads []OrderItemPayload) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(payloads))
	for _, p := range payloads {
		med, err := s.store.GetMedication(p.MedicationID)
		if err != nil {
			return nil, fmt.Errorf("%w: %d", ErrUnknownMedication, p.MedicationID)
		}
		unitPrice := p.UnitPrice
		if unitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: medication %d", ErrInvalidUnitPrice, p.MedicationID)
		}
		if unitPrice.IsZero() {
			unitPrice = med.Price
		}
		items = append(items, models.OrderItem{
			MedicationID: p.MedicationID,
			Quantity:     p.Quantity,
			UnitPrice:    unitPrice,
		})
	}
	return items, nil
}

// newOrderNumber generates a short human-readable order number for clients
// that do not supply their own.
func newOrderNumber(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}
