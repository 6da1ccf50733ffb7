package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-service/internal/models"
)

func seedOrderFixtures(st *Store) (models.Customer, models.Medication, models.Medication) {
	supplier := st.CreateSupplier(models.Supplier{Name: "MedSupply Inc.", Phone: "555"})
	amoxicillin := st.CreateMedication(models.Medication{
		Name: "Amoxicillin", Category: models.CategoryAntibiotic, Dosage: "500mg",
		Price: decimal.RequireFromString("12.50"),
		CurrentStock: 10, MinimumStock: 20, Unit: "box", SupplierID: supplier.ID,
	})
	ibuprofen := st.CreateMedication(models.Medication{
		Name: "Ibuprofen", Category: models.CategoryAnalgesic, Dosage: "200mg",
		Price: decimal.RequireFromString("6.99"),
		CurrentStock: 45, MinimumStock: 20, Unit: "box", SupplierID: supplier.ID,
	})
	customer := st.CreateCustomer(models.Customer{Name: "John Smith", Phone: "555-123-7890"})
	return customer, amoxicillin, ibuprofen
}

func TestCreateOrderComputesTotals(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, ibuprofen := seedOrderFixtures(st)

	order, items := st.CreateOrder(models.Order{
		OrderNumber: "ORD-0001",
		CustomerID:  customer.ID,
	}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		{MedicationID: ibuprofen.ID, Quantity: 5, UnitPrice: decimal.RequireFromString("6.99")},
	})

	require.Len(t, items, 2)
	assert.True(t, items[0].Total.Equal(decimal.RequireFromString("25.00")), "got %s", items[0].Total)
	assert.True(t, items[1].Total.Equal(decimal.RequireFromString("34.95")), "got %s", items[1].Total)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("59.95")), "got %s", order.TotalAmount)

	for _, item := range items {
		assert.Equal(t, order.ID, item.OrderID)
		assert.NotZero(t, item.ID)
	}

	// defaulted fields
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.Date.IsZero())
}

func TestCreateOrderDoesNotTouchStock(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, _ := seedOrderFixtures(st)

	st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 4, UnitPrice: amoxicillin.Price},
	})

	med, err := st.GetMedication(amoxicillin.ID)
	require.NoError(t, err)
	assert.Equal(t, amoxicillin.CurrentStock, med.CurrentStock)
}

func TestGetRecentOrders(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, _ := seedOrderFixtures(st)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var orderIDs []int64
	for i := 0; i < 5; i++ {
		offset := time.Duration(i) * time.Hour
		st.now = func() time.Time { return base.Add(offset) }
		order, _ := st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
			{MedicationID: amoxicillin.ID, Quantity: 1, UnitPrice: amoxicillin.Price},
		})
		orderIDs = append(orderIDs, order.ID)
	}

	recent := st.GetRecentOrders(3)
	require.Len(t, recent, 3)
	assert.Equal(t, orderIDs[4], recent[0].ID)
	assert.Equal(t, orderIDs[3], recent[1].ID)
	assert.Equal(t, orderIDs[2], recent[2].ID)

	// limit above the population returns everything
	assert.Len(t, st.GetRecentOrders(10), 5)
}

func TestGetOrdersByCustomer(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, _ := seedOrderFixtures(st)
	other := st.CreateCustomer(models.Customer{Name: "Maria Garcia", Phone: "555"})

	mine, _ := st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 1, UnitPrice: amoxicillin.Price},
	})
	st.CreateOrder(models.Order{CustomerID: other.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 1, UnitPrice: amoxicillin.Price},
	})

	orders := st.GetOrdersByCustomer(customer.ID)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	assert.Empty(t, st.GetOrdersByCustomer(999))
}

func TestGetOrderWithItems(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, ibuprofen := seedOrderFixtures(st)

	order, _ := st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 2, UnitPrice: amoxicillin.Price},
		{MedicationID: ibuprofen.ID, Quantity: 1, UnitPrice: ibuprofen.Price},
	})

	detail, err := st.GetOrderWithItems(order.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, customer.ID, detail.Customer.ID)
	require.Len(t, detail.Items, 2)
	require.NotNil(t, detail.Items[0].Medication)
	assert.Equal(t, "Amoxicillin", detail.Items[0].Medication.Name)

	// a deleted medication leaves the line intact but unjoined
	st.DeleteMedication(amoxicillin.ID)
	detail, err = st.GetOrderWithItems(order.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Items[0].Medication)
	assert.Equal(t, amoxicillin.ID, detail.Items[0].MedicationID)

	_, err = st.GetOrderWithItems(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrderCascades(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, _ := seedOrderFixtures(st)

	order, _ := st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 1, UnitPrice: amoxicillin.Price},
	})

	require.True(t, st.DeleteOrder(order.ID))
	_, err := st.GetOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, st.orderItems[order.ID])
	assert.False(t, st.DeleteOrder(order.ID))
}

func TestUpdateOrderStatus(t *testing.T) {
	st := NewStore()
	customer, amoxicillin, _ := seedOrderFixtures(st)

	order, _ := st.CreateOrder(models.Order{CustomerID: customer.ID}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 1, UnitPrice: amoxicillin.Price},
	})

	updated, err := st.UpdateOrderStatus(order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)

	_, err = st.UpdateOrderStatus(999, models.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrNotFound)
}
