package store

import (
	"sort"

	"pharmacy-service/internal/models"
)

// GetCustomers returns all customers in id order.
func (s *Store) GetCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(id int64) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	return customer, nil
}

// CreateCustomer assigns the next customer id and stores the record.
func (s *Store) CreateCustomer(customer models.Customer) models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer.ID = s.nextCustomerID
	s.nextCustomerID++
	s.customers[customer.ID] = customer
	return customer
}

// UpdateCustomer merges non-nil patch fields into an existing customer.
func (s *Store) UpdateCustomer(id int64, patch models.CustomerPatch) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return models.Customer{}, ErrNotFound
	}
	if patch.Name != nil {
		customer.Name = *patch.Name
	}
	if patch.Email != nil {
		customer.Email = *patch.Email
	}
	if patch.Phone != nil {
		customer.Phone = *patch.Phone
	}
	if patch.Address != nil {
		customer.Address = *patch.Address
	}
	if patch.Notes != nil {
		customer.Notes = *patch.Notes
	}
	s.customers[id] = customer
	return customer, nil
}

// DeleteCustomer removes a customer, reporting whether it existed.
func (s *Store) DeleteCustomer(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.customers[id]
	delete(s.customers, id)
	return ok
}
