package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-service/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSupplierCRUD(t *testing.T) {
	st := NewStore()

	created := st.CreateSupplier(models.Supplier{
		Name:        "MedSupply Inc.",
		ContactName: "John Williams",
		Phone:       "555-111-2222",
	})
	assert.Equal(t, int64(1), created.ID)

	got, err := st.GetSupplier(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := st.UpdateSupplier(created.ID, models.SupplierPatch{
		ContactName: strPtr("Jane Williams"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Williams", updated.ContactName)
	// untouched fields survive the merge
	assert.Equal(t, "MedSupply Inc.", updated.Name)
	assert.Equal(t, "555-111-2222", updated.Phone)

	assert.True(t, st.DeleteSupplier(created.ID))
	_, err = st.GetSupplier(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, st.DeleteSupplier(created.ID))
}

func TestUpdateMissingCustomerDoesNotMutate(t *testing.T) {
	st := NewStore()

	_, err := st.UpdateCustomer(42, models.CustomerPatch{Name: strPtr("Nobody")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, st.GetCustomers())
}

func TestIdentifierMonotonicity(t *testing.T) {
	st := NewStore()

	var ids []int64
	for i := 0; i < 3; i++ {
		ids = append(ids, st.CreateCustomer(models.Customer{Name: "c", Phone: "1"}).ID)
	}

	// Deleting must not free an identifier for reuse.
	require.True(t, st.DeleteCustomer(ids[1]))
	require.True(t, st.DeleteCustomer(ids[2]))

	for i := 0; i < 2; i++ {
		ids = append(ids, st.CreateCustomer(models.Customer{Name: "c", Phone: "1"}).ID)
	}

	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1])
	}
}

func TestListOrderIsStable(t *testing.T) {
	st := NewStore()

	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		st.CreateCustomer(models.Customer{Name: name, Phone: "1"})
	}

	first := st.GetCustomers()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, st.GetCustomers())
	}
	for i := 1; i < len(first); i++ {
		assert.Greater(t, first[i].ID, first[i-1].ID)
	}
}

func TestGetUserByUsername(t *testing.T) {
	st := NewStore()

	created := st.CreateUser(models.User{Username: "admin", Password: "password", Name: "Admin"})

	got, err := st.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = st.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	st := NewStore()

	user := st.CreateUser(models.User{Username: "u", Password: "p", Name: "U"})
	assert.Equal(t, models.RoleStaff, user.Role)
}
