package config

import (
	"log"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedEmployee(); err != nil {
		log.Printf("⚠️ Employee seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedEmployee provisions the bootstrap employee account from env config.
// Without one, no payment could ever leave Pending.
func (s *Seeder) seedEmployee() error {
	if s.cfg.Seed.EmployeeEmail == "" || s.cfg.Seed.EmployeePassword == "" {
		log.Println("⚠️ Skipping employee seed: SEED_EMPLOYEE_EMAIL/PASSWORD not set")
		return nil
	}

	var count int64
	s.db.Model(&models.Employee{}).Count(&count)
	if count > 0 {
		return nil // At least one employee already exists
	}

	hashed, err := password.Hash(s.cfg.Seed.EmployeePassword)
	if err != nil {
		return err
	}

	employee := &models.Employee{
		FullName: "Portal Operator",
		Email:    s.cfg.Seed.EmployeeEmail,
		Password: hashed,
		Role:     models.RoleEmployee,
	}

	if err := s.db.Create(employee).Error; err != nil {
		return err
	}

	log.Printf("✅ Bootstrap employee created: %s", employee.Email)
	return nil
}
