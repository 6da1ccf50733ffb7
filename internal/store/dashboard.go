package store

import (
	"github.com/shopspring/decimal"

	"pharmacy-service/internal/models"
)

// Growth figures shown on the dashboard are fixed placeholders carried over
// from the demo dataset; there is no historical data to derive them from.
const (
	medicationsGrowth = 3.2
	ordersGrowth      = 12
	lowStockChange    = 2
	revenueGrowth     = 8.1
)

var placeholderSalesData = models.SalesData{
	TotalSales:    42389,
	Customers:     1852,
	Orders:        3426,
	AvgOrderValue: 64.25,
}

// GetDashboardStats derives the dashboard aggregates from current store state:
// total medication count, low-stock count, and the count and summed revenue of
// orders whose creation date falls on today's calendar day. An order from the
// previous calendar day is excluded even when it is less than 24h old.
func (s *Store) GetDashboardStats() models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ty, tm, td := s.now().Date()

	todaysOrders := 0
	revenue := decimal.Zero
	for _, order := range s.orders {
		oy, om, od := order.Date.Date()
		if oy != ty || om != tm || od != td {
			continue
		}
		todaysOrders++
		revenue = revenue.Add(order.TotalAmount)
	}

	return models.DashboardStats{
		TotalMedications:  len(s.medications),
		MedicationsGrowth: medicationsGrowth,
		TodaysOrders:      todaysOrders,
		OrdersGrowth:      ordersGrowth,
		LowStockItems:     len(s.lowStockLocked()),
		LowStockChange:    lowStockChange,
		Revenue:           revenue,
		RevenueGrowth:     revenueGrowth,
		SalesData:         placeholderSalesData,
	}
}
