package store

import (
	"sort"
	"strings"

	"pharmacy-service/internal/models"
)

// GetMedications returns all medications in id order.
func (s *Store) GetMedications() []models.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medicationsLocked()
}

func (s *Store) medicationsLocked() []models.Medication {
	meds := make([]models.Medication, 0, len(s.medications))
	for _, m := range s.medications {
		meds = append(meds, m)
	}
	sort.Slice(meds, func(i, j int) bool { return meds[i].ID < meds[j].ID })
	return meds
}

// GetMedication retrieves a medication by id.
func (s *Store) GetMedication(id int64) (models.Medication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	med, ok := s.medications[id]
	if !ok {
		return models.Medication{}, ErrNotFound
	}
	return med, nil
}

// CreateMedication assigns the next medication id and stores the record.
func (s *Store) CreateMedication(med models.Medication) models.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	med.ID = s.nextMedicationID
	s.nextMedicationID++
	s.medications[med.ID] = med
	return med
}

// UpdateMedication merges non-nil patch fields into an existing medication.
func (s *Store) UpdateMedication(id int64, patch models.MedicationPatch) (models.Medication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	med, ok := s.medications[id]
	if !ok {
		return models.Medication{}, ErrNotFound
	}
	if patch.Name != nil {
		med.Name = *patch.Name
	}
	if patch.Category != nil {
		med.Category = *patch.Category
	}
	if patch.Description != nil {
		med.Description = *patch.Description
	}
	if patch.Dosage != nil {
		med.Dosage = *patch.Dosage
	}
	if patch.Price != nil {
		med.Price = *patch.Price
	}
	if patch.CurrentStock != nil {
		med.CurrentStock = *patch.CurrentStock
	}
	if patch.MinimumStock != nil {
		med.MinimumStock = *patch.MinimumStock
	}
	if patch.Unit != nil {
		med.Unit = *patch.Unit
	}
	if patch.SupplierID != nil {
		med.SupplierID = *patch.SupplierID
	}
	s.medications[id] = med
	return med, nil
}

// DeleteMedication removes a medication, reporting whether it existed.
func (s *Store) DeleteMedication(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.medications[id]
	delete(s.medications, id)
	return ok
}

// GetLowStockMedications returns medications whose current stock is strictly
// below their minimum, each joined with its supplier. A dangling supplier
// reference degrades to an "Unknown" placeholder rather than an error.
func (s *Store) GetLowStockMedications() []models.LowStockMedication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lowStockLocked()
}

func (s *Store) lowStockLocked() []models.LowStockMedication {
	low := make([]models.LowStockMedication, 0)
	for _, med := range s.medicationsLocked() {
		if !med.IsLowStock() {
			continue
		}
		supplier, ok := s.suppliers[med.SupplierID]
		if !ok {
			supplier = models.Supplier{Name: "Unknown"}
		}
		low = append(low, models.LowStockMedication{Medication: med, Supplier: supplier})
	}
	return low
}

// SearchMedications filters medications by a case-insensitive substring match
// across name, description, category and dosage.
func (s *Store) SearchMedications(query string) []models.Medication {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]models.Medication, 0)
	for _, med := range s.medicationsLocked() {
		if strings.Contains(strings.ToLower(med.Name), q) ||
			strings.Contains(strings.ToLower(med.Description), q) ||
			strings.Contains(strings.ToLower(med.Category), q) ||
			strings.Contains(strings.ToLower(med.Dosage), q) {
			matches = append(matches, med)
		}
	}
	return matches
}
