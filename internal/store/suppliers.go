package store

import (
	"sort"

	"pharmacy-service/internal/models"
)

// GetSuppliers returns all suppliers in id order.
func (s *Store) GetSuppliers() []models.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suppliers := make([]models.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		suppliers = append(suppliers, sup)
	}
	sort.Slice(suppliers, func(i, j int) bool { return suppliers[i].ID < suppliers[j].ID })
	return suppliers
}

// GetSupplier retrieves a supplier by id.
func (s *Store) GetSupplier(id int64) (models.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplier, ok := s.suppliers[id]
	if !ok {
		return models.Supplier{}, ErrNotFound
	}
	return supplier, nil
}

// CreateSupplier assigns the next supplier id and stores the record.
func (s *Store) CreateSupplier(supplier models.Supplier) models.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier.ID = s.nextSupplierID
	s.nextSupplierID++
	s.suppliers[supplier.ID] = supplier
	return supplier
}

// UpdateSupplier merges non-nil patch fields into an existing supplier.
func (s *Store) UpdateSupplier(id int64, patch models.SupplierPatch) (models.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, ok := s.suppliers[id]
	if !ok {
		return models.Supplier{}, ErrNotFound
	}
	if patch.Name != nil {
		supplier.Name = *patch.Name
	}
	if patch.ContactName != nil {
		supplier.ContactName = *patch.ContactName
	}
	if patch.Email != nil {
		supplier.Email = *patch.Email
	}
	if patch.Phone != nil {
		supplier.Phone = *patch.Phone
	}
	if patch.Address != nil {
		supplier.Address = *patch.Address
	}
	if patch.Notes != nil {
		supplier.Notes = *patch.Notes
	}
	s.suppliers[id] = supplier
	return supplier, nil
}

// DeleteSupplier removes a supplier, reporting whether it existed.
func (s *Store) DeleteSupplier(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.suppliers[id]
	delete(s.suppliers, id)
	return ok
}
