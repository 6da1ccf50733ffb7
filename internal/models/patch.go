package models

import "github.com/shopspring/decimal"

// Patch types carry partial updates. Nil fields are left untouched; the store
// merges the rest into the existing record.

type UserPatch struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin pharmacist staff"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
}

type MedicationPatch struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category" binding:"omitempty,oneof=antibiotic analgesic antiviral antihistamine cardiovascular dermatological gastrointestinal hormone respiratory vitamin other"`
	Description  *string          `json:"description"`
	Dosage       *string          `json:"dosage"`
	Price        *decimal.Decimal `json:"price"`
	CurrentStock *int             `json:"currentStock" binding:"omitempty,min=0"`
	MinimumStock *int             `json:"minimumStock" binding:"omitempty,min=0"`
	Unit         *string          `json:"unit"`
	SupplierID   *int64           `json:"supplierId"`
}

type SupplierPatch struct {
	Name        *string `json:"name"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

type CustomerPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}
