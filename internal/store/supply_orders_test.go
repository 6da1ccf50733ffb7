package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-service/internal/models"
)

func seedSupplyFixtures(st *Store) (models.Supplier, models.Medication, models.SupplyOrder) {
	supplier := st.CreateSupplier(models.Supplier{Name: "PharmaDirect", Phone: "555"})
	med := st.CreateMedication(models.Medication{
		Name: "Lisinopril", Category: models.CategoryCardiovascular, Dosage: "10mg",
		Price: decimal.RequireFromString("15.75"),
		CurrentStock: 8, MinimumStock: 15, Unit: "bottle", SupplierID: supplier.ID,
	})
	order, _ := st.CreateSupplyOrder(models.SupplyOrder{
		OrderNumber: "SUP-1001",
		SupplierID:  supplier.ID,
	}, []models.SupplyOrderItem{
		{MedicationID: med.ID, Quantity: 30, UnitPrice: decimal.RequireFromString("10.00")},
	})
	return supplier, med, order
}

func TestCreateSupplyOrderDefaults(t *testing.T) {
	st := NewStore()
	_, _, order := seedSupplyFixtures(st)

	assert.Equal(t, models.SupplyOrderStatusPending, order.Status)
	assert.Nil(t, order.ReceivedDate)
	assert.False(t, order.OrderDate.IsZero())
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("300.00")), "got %s", order.TotalAmount)
}

func TestReceivingSupplyOrderRestocks(t *testing.T) {
	st := NewStore()
	_, med, order := seedSupplyFixtures(st)

	updated, err := st.UpdateSupplyOrderStatus(order.ID, models.SupplyOrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, models.SupplyOrderStatusReceived, updated.Status)
	require.NotNil(t, updated.ReceivedDate)

	restocked, err := st.GetMedication(med.ID)
	require.NoError(t, err)
	assert.Equal(t, 8+30, restocked.CurrentStock)
}

func TestNonReceiveTransitionLeavesStock(t *testing.T) {
	st := NewStore()
	_, med, order := seedSupplyFixtures(st)

	for _, status := range []string{
		models.SupplyOrderStatusOrdered,
		models.SupplyOrderStatusCancelled,
		models.SupplyOrderStatusPending,
	} {
		updated, err := st.UpdateSupplyOrderStatus(order.ID, status)
		require.NoError(t, err)
		assert.Nil(t, updated.ReceivedDate)

		current, err := st.GetMedication(med.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, current.CurrentStock, "status %s must not move stock", status)
	}
}

func TestUpdateSupplyOrderStatusMissing(t *testing.T) {
	st := NewStore()

	_, err := st.UpdateSupplyOrderStatus(42, models.SupplyOrderStatusReceived)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSupplyOrderWithItems(t *testing.T) {
	st := NewStore()
	supplier, med, order := seedSupplyFixtures(st)

	detail, err := st.GetSupplyOrderWithItems(order.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Supplier)
	assert.Equal(t, supplier.ID, detail.Supplier.ID)
	require.Len(t, detail.Items, 1)
	require.NotNil(t, detail.Items[0].Medication)
	assert.Equal(t, med.ID, detail.Items[0].Medication.ID)
}

func TestDeleteSupplyOrderCascades(t *testing.T) {
	st := NewStore()
	_, _, order := seedSupplyFixtures(st)

	require.True(t, st.DeleteSupplyOrder(order.ID))
	_, err := st.GetSupplyOrder(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, st.supplyOrderItems[order.ID])
}
