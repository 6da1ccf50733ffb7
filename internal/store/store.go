package store

import (
	"errors"
	"sync"
	"time"

	"pharmacy-service/internal/models"
)

// ErrNotFound is returned when an operation references a nonexistent record.
var ErrNotFound = errors.New("record not found")

// Store holds every entity in memory for the lifetime of the process. Nothing
// is persisted; main reseeds the sample dataset on startup. A single RWMutex
// keeps map access safe under concurrent requests; updates are last-write-wins
// with no transactional guarantees.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users            map[int64]models.User
	medications      map[int64]models.Medication
	suppliers        map[int64]models.Supplier
	customers        map[int64]models.Customer
	orders           map[int64]models.Order
	orderItems       map[int64][]models.OrderItem // keyed by order id
	supplyOrders     map[int64]models.SupplyOrder
	supplyOrderItems map[int64][]models.SupplyOrderItem // keyed by supply order id

	// Identifier counters are monotonic per entity kind and never reused,
	// even after deletes.
	nextUserID            int64
	nextMedicationID      int64
	nextSupplierID        int64
	nextCustomerID        int64
	nextOrderID           int64
	nextOrderItemID       int64
	nextSupplyOrderID     int64
	nextSupplyOrderItemID int64
}

// NewStore creates an empty store. Callers that want the demo dataset call
// Seed afterwards.
func NewStore() *Store {
	return &Store{
		now:                   time.Now,
		users:                 make(map[int64]models.User),
		medications:           make(map[int64]models.Medication),
		suppliers:             make(map[int64]models.Supplier),
		customers:             make(map[int64]models.Customer),
		orders:                make(map[int64]models.Order),
		orderItems:            make(map[int64][]models.OrderItem),
		supplyOrders:          make(map[int64]models.SupplyOrder),
		supplyOrderItems:      make(map[int64][]models.SupplyOrderItem),
		nextUserID:            1,
		nextMedicationID:      1,
		nextSupplierID:        1,
		nextCustomerID:        1,
		nextOrderID:           1,
		nextOrderItemID:       1,
		nextSupplyOrderID:     1,
		nextSupplyOrderItemID: 1,
	}
}
