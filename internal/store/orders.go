package store

import (
	"sort"

	"github.com/shopspring/decimal"

	"pharmacy-service/internal/models"
)

// GetOrders returns all orders in id order.
func (s *Store) GetOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordersLocked()
}

func (s *Store) ordersLocked() []models.Order {
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

// GetOrder retrieves an order by id.
func (s *Store) GetOrder(id int64) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

// GetOrderWithItems joins an order with its items, each item's medication and
// the order's customer. Dangling references are simply omitted from the join.
func (s *Store) GetOrderWithItems(id int64) (models.OrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return models.OrderDetail{}, ErrNotFound
	}

	detail := models.OrderDetail{Order: order, Items: make([]models.OrderItemDetail, 0)}
	if customer, ok := s.customers[order.CustomerID]; ok {
		detail.Customer = &customer
	}
	for _, item := range s.orderItems[id] {
		itemDetail := models.OrderItemDetail{OrderItem: item}
		if med, ok := s.medications[item.MedicationID]; ok {
			itemDetail.Medication = &med
		}
		detail.Items = append(detail.Items, itemDetail)
	}
	return detail, nil
}

// CreateOrder assigns the order id, stamps the creation date, attaches and
// prices each item, and stores everything. Line totals and the order total are
// computed here so the total always equals the sum of quantity x unit price.
// Stock is deliberately not touched at order creation; inventory only moves
// when a supply order is received.
func (s *Store) CreateOrder(order models.Order, items []models.OrderItem) (models.Order, []models.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++
	order.Date = s.now()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	total := decimal.Zero
	stored := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		item.ID = s.nextOrderItemID
		s.nextOrderItemID++
		item.OrderID = order.ID
		item.Total = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(item.Total)
		stored = append(stored, item)
	}
	order.TotalAmount = total

	s.orders[order.ID] = order
	s.orderItems[order.ID] = stored
	return order, stored
}

// UpdateOrderStatus sets the status of an existing order.
func (s *Store) UpdateOrderStatus(id int64, status string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrNotFound
	}
	order.Status = status
	s.orders[id] = order
	return order, nil
}

// DeleteOrder removes an order and cascades to its items.
func (s *Store) DeleteOrder(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.orders[id]
	delete(s.orders, id)
	delete(s.orderItems, id)
	return ok
}

// GetRecentOrders returns up to limit orders, most recent first.
func (s *Store) GetRecentOrders(limit int) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recentOrdersLocked(limit)
}

func (s *Store) recentOrdersLocked(limit int) []models.Order {
	orders := s.ordersLocked()
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Date.After(orders[j].Date) })
	if limit >= 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders
}

// GetOrdersByCustomer returns all orders placed by one customer, in id order.
func (s *Store) GetOrdersByCustomer(customerID int64) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0)
	for _, o := range s.ordersLocked() {
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders
}
