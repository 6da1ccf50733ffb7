package store

import (
	"sort"

	"github.com/shopspring/decimal"

	"pharmacy-service/internal/models"
)

// GetSupplyOrders returns all supply orders in id order.
func (s *Store) GetSupplyOrders() []models.SupplyOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.SupplyOrder, 0, len(s.supplyOrders))
	for _, o := range s.supplyOrders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// GetSupplyOrder retrieves a supply order by id.
func (s *Store) GetSupplyOrder(id int64) (models.SupplyOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.supplyOrders[id]
	if !ok {
		return models.SupplyOrder{}, ErrNotFound
	}
	return order, nil
}

// GetSupplyOrderWithItems joins a supply order with its items, each item's
// medication and the order's supplier.
func (s *Store) GetSupplyOrderWithItems(id int64) (models.SupplyOrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.supplyOrders[id]
	if !ok {
		return models.SupplyOrderDetail{}, ErrNotFound
	}

	detail := models.SupplyOrderDetail{Order: order, Items: make([]models.SupplyOrderItemDetail, 0)}
	if supplier, ok := s.suppliers[order.SupplierID]; ok {
		detail.Supplier = &supplier
	}
	for _, item := range s.supplyOrderItems[id] {
		itemDetail := models.SupplyOrderItemDetail{SupplyOrderItem: item}
		if med, ok := s.medications[item.MedicationID]; ok {
			itemDetail.Medication = &med
		}
		detail.Items = append(detail.Items, itemDetail)
	}
	return detail, nil
}

// CreateSupplyOrder assigns ids, stamps the order date and stores the order
// with its items. Totals are computed the same way as for customer orders.
// The received date stays nil until the order transitions to received.
func (s *Store) CreateSupplyOrder(order models.SupplyOrder, items []models.SupplyOrderItem) (models.SupplyOrder, []models.SupplyOrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextSupplyOrderID
	s.nextSupplyOrderID++
	order.OrderDate = s.now()
	order.ReceivedDate = nil
	if order.Status == "" {
		order.Status = models.SupplyOrderStatusPending
	}

	total := decimal.Zero
	stored := make([]models.SupplyOrderItem, 0, len(items))
	for _, item := range items {
		item.ID = s.nextSupplyOrderItemID
		s.nextSupplyOrderItemID++
		item.SupplyOrderID = order.ID
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.Total)
		stored = append(stored, item)
	}
	order.TotalAmount = total

	s.supplyOrders[order.ID] = order
	s.supplyOrderItems[order.ID] = stored
	return order, stored
}

// UpdateSupplyOrderStatus sets the status of a supply order. Transitioning to
// received stamps the received date and adds each line's quantity to the
// referenced medication's stock; every other transition leaves stock alone.
func (s *Store) UpdateSupplyOrderStatus(id int64, status string) (models.SupplyOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.supplyOrders[id]
	if !ok {
		return models.SupplyOrder{}, ErrNotFound
	}

	order.Status = status
	if status == models.SupplyOrderStatusReceived {
		received := s.now()
		order.ReceivedDate = &received
		for _, item := range s.supplyOrderItems[id] {
			med, ok := s.medications[item.MedicationID]
			if !ok {
				continue
			}
			med.CurrentStock += item.Quantity
			s.medications[med.ID] = med
		}
	}
	s.supplyOrders[id] = order
	return order, nil
}

// DeleteSupplyOrder removes a supply order and cascades to its items.
func (s *Store) DeleteSupplyOrder(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.supplyOrders[id]
	delete(s.supplyOrders, id)
	delete(s.supplyOrderItems, id)
	return ok
}
