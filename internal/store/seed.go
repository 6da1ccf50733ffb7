package store

import (
	"github.com/shopspring/decimal"

	"pharmacy-service/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed loads the fixed sample dataset: one admin user, three suppliers, five
// medications, four customers and four orders. Data lives only for the
// process lifetime, so main reseeds on every startup.
func (s *Store) Seed() {
	s.CreateUser(models.User{
		Username: "admin",
		Password: "password",
		Name:     "Dr. Sarah Johnson",
		Role:     models.RoleAdmin,
		Email:    "admin@pharmacare.com",
		Phone:    "555-123-4567",
	})

	supplier1 := s.CreateSupplier(models.Supplier{
		Name:        "MedSupply Inc.",
		ContactName: "John Williams",
		Email:       "contact@medsupply.com",
		Phone:       "555-111-2222",
		Address:     "123 Medical Way, Pharma City, PC 12345",
		Notes:       "Primary supplier for antibiotics",
	})
	supplier2 := s.CreateSupplier(models.Supplier{
		Name:        "PharmaDirect",
		ContactName: "Emily Davis",
		Email:       "sales@pharmadirect.com",
		Phone:       "555-333-4444",
		Address:     "456 Health Street, Medicine Town, MT 67890",
		Notes:       "Reliable supplier for cardiovascular medications",
	})
	supplier3 := s.CreateSupplier(models.Supplier{
		Name:        "GlobalMed",
		ContactName: "Robert Chen",
		Email:       "info@globalmed.com",
		Phone:       "555-555-6666",
		Address:     "789 Pharma Road, Drug City, DC 54321",
		Notes:       "International supplier with competitive prices",
	})

	amoxicillin := s.CreateMedication(models.Medication{
		Name:         "Amoxicillin",
		Category:     models.CategoryAntibiotic,
		Description:  "Common antibiotic used to treat bacterial infections",
		Dosage:       "500mg",
		Price:        price("12.50"),
		CurrentStock: 10,
		MinimumStock: 20,
		Unit:         "box",
		SupplierID:   supplier1.ID,
	})
	lisinopril := s.CreateMedication(models.Medication{
		Name:         "Lisinopril",
		Category:     models.CategoryCardiovascular,
		Description:  "Used to treat high blood pressure and heart failure",
		Dosage:       "10mg",
		Price:        price("15.75"),
		CurrentStock: 8,
		MinimumStock: 15,
		Unit:         "bottle",
		SupplierID:   supplier2.ID,
	})
	atorvastatin := s.CreateMedication(models.Medication{
		Name:         "Atorvastatin",
		Category:     models.CategoryCardiovascular,
		Description:  "Used to treat high cholesterol and prevent cardiovascular disease",
		Dosage:       "20mg",
		Price:        price("22.99"),
		CurrentStock: 12,
		MinimumStock: 25,
		Unit:         "box",
		SupplierID:   supplier1.ID,
	})
	metformin := s.CreateMedication(models.Medication{
		Name:         "Metformin",
		Category:     models.CategoryHormone,
		Description:  "Used to treat type 2 diabetes",
		Dosage:       "850mg",
		Price:        price("8.99"),
		CurrentStock: 15,
		MinimumStock: 30,
		Unit:         "bottle",
		SupplierID:   supplier3.ID,
	})
	ibuprofen := s.CreateMedication(models.Medication{
		Name:         "Ibuprofen",
		Category:     models.CategoryAnalgesic,
		Description:  "NSAID used to treat pain, fever, and inflammation",
		Dosage:       "200mg",
		Price:        price("6.99"),
		CurrentStock: 45,
		MinimumStock: 20,
		Unit:         "box",
		SupplierID:   supplier1.ID,
	})

	customer1 := s.CreateCustomer(models.Customer{
		Name:    "John Smith",
		Email:   "john.smith@email.com",
		Phone:   "555-123-7890",
		Address: "123 Patient St, Healthy Town, HT 12345",
		Notes:   "Regular customer, has insurance",
	})
	customer2 := s.CreateCustomer(models.Customer{
		Name:    "Maria Garcia",
		Email:   "maria.garcia@email.com",
		Phone:   "555-234-5678",
		Address: "456 Wellness Ave, Care City, CC 67890",
		Notes:   "Has allergies to penicillin",
	})
	customer3 := s.CreateCustomer(models.Customer{
		Name:    "Robert Johnson",
		Email:   "robert.johnson@email.com",
		Phone:   "555-345-6789",
		Address: "789 Health Blvd, Wellbeing Village, WV 54321",
		Notes:   "Senior citizen, needs large print labels",
	})
	customer4 := s.CreateCustomer(models.Customer{
		Name:    "Emily Wilson",
		Email:   "emily.wilson@email.com",
		Phone:   "555-456-7890",
		Address: "101 Recovery Rd, Healing Springs, HS 43210",
		Notes:   "Prefers text message reminders",
	})

	s.CreateOrder(models.Order{
		OrderNumber: "ORD-5392",
		CustomerID:  customer1.ID,
		Status:      models.OrderStatusCompleted,
		Notes:       "Regular prescription refill",
	}, []models.OrderItem{
		{MedicationID: amoxicillin.ID, Quantity: 2, UnitPrice: amoxicillin.Price},
		{MedicationID: ibuprofen.ID, Quantity: 5, UnitPrice: ibuprofen.Price},
	})
	s.CreateOrder(models.Order{
		OrderNumber: "ORD-5391",
		CustomerID:  customer2.ID,
		Status:      models.OrderStatusProcessing,
		Notes:       "New prescription",
	}, []models.OrderItem{
		{MedicationID: lisinopril.ID, Quantity: 3, UnitPrice: lisinopril.Price},
	})
	s.CreateOrder(models.Order{
		OrderNumber: "ORD-5390",
		CustomerID:  customer3.ID,
		Status:      models.OrderStatusCompleted,
		Notes:       "Monthly medication supply",
	}, []models.OrderItem{
		{MedicationID: atorvastatin.ID, Quantity: 2, UnitPrice: atorvastatin.Price},
		{MedicationID: metformin.ID, Quantity: 3, UnitPrice: metformin.Price},
	})
	s.CreateOrder(models.Order{
		OrderNumber: "ORD-5389",
		CustomerID:  customer4.ID,
		Status:      models.OrderStatusPending,
		Notes:       "One-time prescription",
	}, []models.OrderItem{
		{MedicationID: ibuprofen.ID, Quantity: 2, UnitPrice: ibuprofen.Price},
	})
}
