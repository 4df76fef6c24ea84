package config

import (
	"log"

	"coopeasy/internal/adapters/persistence/models"
	"coopeasy/internal/core/domain"
	"coopeasy/internal/pkg/password"

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

	if err := s.seedStaff(string(domain.RolePresident), "Coop", "President", s.cfg.Seed.PresidentEmail, s.cfg.Seed.PresidentPassword); err != nil {
		log.Printf("⚠️ President seeder skipped: %v", err)
	}
	if err := s.seedStaff(string(domain.RoleAccountant), "Coop", "Accountant", s.cfg.Seed.AccountantEmail, s.cfg.Seed.AccountantPassword); err != nil {
		log.Printf("⚠️ Accountant seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedStaff creates one staff account per role if none exists. Staff are
// active from the start; only members go through account approval.
func (s *Seeder) seedStaff(role, firstName, lastName, email, plainPassword string) error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", role).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Status:    domain.MemberActive,
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %s account: %s", role, email)
	return nil
}
