package services

import (
	"context"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
)

// DashboardService aggregates the per-account numbers the dashboard
// page shows. Live counts come from the session repository; the stored
// stats fields are whatever a scoring pipeline last wrote (fixed
// showcase values for the demo account).
type DashboardService struct {
	accountRepo repositories.AccountRepository
	sessionRepo repositories.SessionRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	accountRepo repositories.AccountRepository,
	sessionRepo repositories.SessionRepository,
) *DashboardService {
	return &DashboardService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
	}
}

// DashboardResponse is the dashboard DTO
type DashboardResponse struct {
	DisplayName     string              `json:"display_name"`
	Kind            domain.AccountKind  `json:"kind"`
	MemberSince     time.Time           `json:"member_since"`
	SessionCount    int64               `json:"session_count"`
	Stats           domain.AccountStats `json:"stats"`
	FavoriteOrigins []string            `json:"favorite_origins,omitempty"`
}

// GetDashboard builds the dashboard for one account
func (s *DashboardService) GetDashboard(ctx context.Context, accountID string) (*DashboardResponse, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	count, err := s.sessionRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		DisplayName:     account.DisplayName,
		Kind:            account.Kind,
		MemberSince:     account.MemberSince,
		SessionCount:    count,
		Stats:           account.Stats,
		FavoriteOrigins: account.FavoriteOrigins,
	}, nil
}
