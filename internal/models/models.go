package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a staff member. The password is stored in plaintext and is
// never serialized in responses.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// User roles
const (
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
	RoleStaff      = "staff"
)

// Medication represents an item in the pharmacy inventory
type Medication struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Dosage       string          `json:"dosage"`
	Price        decimal.Decimal `json:"price"`
	CurrentStock int             `json:"currentStock"`
	MinimumStock int             `json:"minimumStock"`
	Unit         string          `json:"unit"`
	SupplierID   int64           `json:"supplierId"`
}

// Medication categories
const (
	CategoryAntibiotic       = "antibiotic"
	CategoryAnalgesic        = "analgesic"
	CategoryAntiviral        = "antiviral"
	CategoryAntihistamine    = "antihistamine"
	CategoryCardiovascular   = "cardiovascular"
	CategoryDermatological   = "dermatological"
	CategoryGastrointestinal = "gastrointestinal"
	CategoryHormone          = "hormone"
	CategoryRespiratory      = "respiratory"
	CategoryVitamin          = "vitamin"
	CategoryOther            = "other"
)

// IsLowStock reports whether the medication is below its restock threshold.
func (m Medication) IsLowStock() bool {
	return m.CurrentStock < m.MinimumStock
}

// Supplier represents a medication supplier
type Supplier struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Customer represents a pharmacy customer
type Customer struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Order represents a customer sales order
type Order struct {
	ID          int64           `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	CustomerID  int64           `json:"customerId"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem represents one line of a customer order
type OrderItem struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"orderId"`
	MedicationID int64           `json:"medicationId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Total        decimal.Decimal `json:"total"`
}

// SupplyOrder represents a replenishment order placed with a supplier
type SupplyOrder struct {
	ID           int64           `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	SupplierID   int64           `json:"supplierId"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"orderDate"`
	ReceivedDate *time.Time      `json:"receivedDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Notes        string          `json:"notes,omitempty"`
}

// Supply order statuses
const (
	SupplyOrderStatusPending   = "pending"
	SupplyOrderStatusOrdered   = "ordered"
	SupplyOrderStatusReceived  = "received"
	SupplyOrderStatusCancelled = "cancelled"
)

// SupplyOrderItem represents one line of a supply order
type SupplyOrderItem struct {
	ID            int64           `json:"id"`
	SupplyOrderID int64           `json:"supplyOrderId"`
	MedicationID  int64           `json:"medicationId"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
}

// LowStockMedication is a medication joined with its supplier for restock views.
type LowStockMedication struct {
	Medication
	Supplier Supplier `json:"supplier"`
}

// OrderItemDetail is an order item joined with its medication, when it still exists.
type OrderItemDetail struct {
	OrderItem
	Medication *Medication `json:"medication,omitempty"`
}

// OrderDetail is an order joined with its items and customer
type OrderDetail struct {
	Order    Order             `json:"order"`
	Customer *Customer         `json:"customer,omitempty"`
	Items    []OrderItemDetail `json:"items"`
}

// SupplyOrderItemDetail is a supply order item joined with its medication.
type SupplyOrderItemDetail struct {
	SupplyOrderItem
	Medication *Medication `json:"medication,omitempty"`
}

// SupplyOrderDetail is a supply order joined with its items and supplier
type SupplyOrderDetail struct {
	Order    SupplyOrder             `json:"order"`
	Supplier *Supplier               `json:"supplier,omitempty"`
	Items    []SupplyOrderItemDetail `json:"items"`
}

// SalesData holds the aggregate figures shown on the sales overview card.
// Fixed demo values, not computed from history.
type SalesData struct {
	TotalSales    float64 `json:"totalSales"`
	Customers     int     `json:"customers"`
	Orders        int     `json:"orders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// DashboardStats holds the aggregates served by the dashboard endpoint. The
// growth fields are placeholder constants, not derived from historical data.
type DashboardStats struct {
	TotalMedications  int             `json:"totalMedications"`
	MedicationsGrowth float64         `json:"medicationsGrowth"`
	TodaysOrders      int             `json:"todaysOrders"`
	OrdersGrowth      float64         `json:"ordersGrowth"`
	LowStockItems     int             `json:"lowStockItems"`
	LowStockChange    float64         `json:"lowStockChange"`
	Revenue           decimal.Decimal `json:"revenue"`
	RevenueGrowth     float64         `json:"revenueGrowth"`
	SalesData         SalesData       `json:"salesData"`
}
