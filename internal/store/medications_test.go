package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-service/internal/models"
)

func TestGetLowStockMedications(t *testing.T) {
	st := NewStore()
	supplier := st.CreateSupplier(models.Supplier{Name: "MedSupply Inc.", Phone: "555"})

	low := st.CreateMedication(models.Medication{
		Name: "Amoxicillin", Category: models.CategoryAntibiotic, Dosage: "500mg",
		Price: decimal.RequireFromString("12.50"),
		CurrentStock: 10, MinimumStock: 20, Unit: "box", SupplierID: supplier.ID,
	})
	// exactly at the threshold is not low
	st.CreateMedication(models.Medication{
		Name: "Ibuprofen", Category: models.CategoryAnalgesic, Dosage: "200mg",
		Price: decimal.RequireFromString("6.99"),
		CurrentStock: 20, MinimumStock: 20, Unit: "box", SupplierID: supplier.ID,
	})
	st.CreateMedication(models.Medication{
		Name: "Atorvastatin", Category: models.CategoryCardiovascular, Dosage: "20mg",
		Price: decimal.RequireFromString("22.99"),
		CurrentStock: 50, MinimumStock: 25, Unit: "box", SupplierID: supplier.ID,
	})

	result := st.GetLowStockMedications()
	require.Len(t, result, 1)
	assert.Equal(t, low.ID, result[0].ID)
	assert.Equal(t, supplier, result[0].Supplier)
}

func TestLowStockWithDanglingSupplier(t *testing.T) {
	st := NewStore()

	st.CreateMedication(models.Medication{
		Name: "Orphaned", Category: models.CategoryOther, Dosage: "1mg",
		Price: decimal.RequireFromString("1.00"),
		CurrentStock: 0, MinimumStock: 5, Unit: "box", SupplierID: 999,
	})

	result := st.GetLowStockMedications()
	require.Len(t, result, 1)
	assert.Equal(t, "Unknown", result[0].Supplier.Name)
}

func TestSearchMedications(t *testing.T) {
	st := NewStore()
	st.CreateMedication(models.Medication{
		Name: "Amoxicillin", Category: models.CategoryAntibiotic,
		Description: "Common antibiotic", Dosage: "500mg",
		Price: decimal.RequireFromString("12.50"), Unit: "box", SupplierID: 1,
	})
	st.CreateMedication(models.Medication{
		Name: "Lisinopril", Category: models.CategoryCardiovascular,
		Description: "Blood pressure", Dosage: "10mg",
		Price: decimal.RequireFromString("15.75"), Unit: "bottle", SupplierID: 1,
	})

	byName := st.SearchMedications("amox")
	require.Len(t, byName, 1)
	assert.Equal(t, "Amoxicillin", byName[0].Name)

	// matches span category and dosage too
	assert.Len(t, st.SearchMedications("CARDIO"), 1)
	assert.Len(t, st.SearchMedications("500mg"), 1)

	assert.Empty(t, st.SearchMedications("zzz-no-match"))
}

func TestMedicationUpdateMerges(t *testing.T) {
	st := NewStore()
	med := st.CreateMedication(models.Medication{
		Name: "Metformin", Category: models.CategoryHormone, Dosage: "850mg",
		Price: decimal.RequireFromString("8.99"),
		CurrentStock: 15, MinimumStock: 30, Unit: "bottle", SupplierID: 3,
	})

	stock := 40
	updated, err := st.UpdateMedication(med.ID, models.MedicationPatch{CurrentStock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.CurrentStock)
	assert.Equal(t, "Metformin", updated.Name)
	assert.True(t, updated.Price.Equal(med.Price))

	_, err = st.UpdateMedication(999, models.MedicationPatch{CurrentStock: &stock})
	assert.ErrorIs(t, err, ErrNotFound)
}
