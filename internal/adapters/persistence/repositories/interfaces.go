package repositories

import (
	"context"

	"cultura-cupping/internal/core/domain"
)

// AccountRepository defines account repository interface.
// Registered accounts are keyed by email; guest accounts live only under
// their ID and never enter the email index.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*domain.Account, error)
	DeleteGuestsBefore(ctx context.Context, cutoffUnix int64) (int, error)
}

// SessionRepository defines the cupping-session repository interface.
// Sessions are append-only: no update or delete operations exist.
type SessionRepository interface {
	Append(ctx context.Context, session *domain.CuppingSession) error
	GetByID(ctx context.Context, accountID, sessionID string) (*domain.CuppingSession, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.CuppingSession, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}

// ProfileRepository defines the saved flavor-profile repository interface
type ProfileRepository interface {
	Save(ctx context.Context, profile *domain.FlavorProfile) error
	ListByAccount(ctx context.Context, accountID string) ([]*domain.FlavorProfile, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id string) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByAccountID(ctx context.Context, accountID string) error
	DeleteExpired(ctx context.Context) (int, error)
	CountActiveByAccountID(ctx context.Context, accountID string) (int64, error)
}
