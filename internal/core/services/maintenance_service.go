package services

import (
	"context"
	"log"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// GuestRetention is how long an idle guest account is kept
const GuestRetention = 24 * time.Hour

// MaintenanceService runs scheduled cleanup of the in-memory stores:
// expired or revoked refresh tokens and stale guest accounts.
type MaintenanceService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	accountRepo      repositories.AccountRepository
	cron             *cron.Cron
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	accountRepo repositories.AccountRepository,
) *MaintenanceService {
	return &MaintenanceService{
		refreshTokenRepo: refreshTokenRepo,
		accountRepo:      accountRepo,
		cron:             cron.New(),
	}
}

// Start schedules the hourly cleanup and starts the cron runner
func (s *MaintenanceService) Start() {
	s.cron.AddFunc("@hourly", s.runCleanup)
	s.cron.Start()
	log.Println("🧹 Maintenance service started (hourly cleanup)")
}

// Stop stops the cron runner
func (s *MaintenanceService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Maintenance service stopped")
}

func (s *MaintenanceService) runCleanup() {
	ctx := context.Background()

	tokens, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("❌ Token cleanup error: %v", err)
	} else if tokens > 0 {
		log.Printf("🧹 Purged %d expired/revoked refresh tokens", tokens)
	}

	cutoff := time.Now().Add(-GuestRetention).Unix()
	guests, err := s.accountRepo.DeleteGuestsBefore(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Guest cleanup error: %v", err)
	} else if guests > 0 {
		log.Printf("🧹 Purged %d stale guest accounts", guests)
	}
}
