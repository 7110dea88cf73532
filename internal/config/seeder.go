package config

import (
	"context"
	"log"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/pkg/password"

	"github.com/google/uuid"
)

// Seeder plants the reference data every fresh process needs
type Seeder struct {
	accountRepo repositories.AccountRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(accountRepo repositories.AccountRepository) *Seeder {
	return &Seeder{accountRepo: accountRepo}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running seeders...")

	if err := s.seedDemoAccount(ctx); err != nil {
		return err
	}

	log.Println("✅ Seeding completed")
	return nil
}

// seedDemoAccount plants the canonical demo account if it is not
// already present
func (s *Seeder) seedDemoAccount(ctx context.Context) error {
	exists, err := s.accountRepo.ExistsByEmail(ctx, domain.DemoEmail)
	if err != nil {
		return err
	}
	if exists {
		log.Println("ℹ️ Demo account already exists, skipping")
		return nil
	}

	hashed, err := password.Hash(domain.DemoPassword)
	if err != nil {
		return err
	}

	demo := domain.NewDemoAccount()
	demo.ID = uuid.New().String()
	demo.Password = hashed

	if err := s.accountRepo.Create(ctx, demo); err != nil {
		return err
	}

	log.Printf("✅ Demo account seeded: %s", demo.Email)
	return nil
}
