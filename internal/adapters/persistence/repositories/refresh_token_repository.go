package repositories

import (
	"context"
	"sync"
	"time"

	"cultura-cupping/internal/core/domain"
)

// refreshTokenRepository implements RefreshTokenRepository in memory.
// Tokens are stored hashed; revocation keeps the record until the
// maintenance purge deletes it.
type refreshTokenRepository struct {
	mu     sync.RWMutex
	byID   map[string]*domain.RefreshToken
	byHash map[string]*domain.RefreshToken
}

// NewRefreshTokenRepository creates a new in-memory refresh token repository
func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{
		byID:   make(map[string]*domain.RefreshToken),
		byHash: make(map[string]*domain.RefreshToken),
	}
}

// Create stores a new refresh token
func (r *refreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token.CreatedAt = time.Now()
	r.byID[token.ID] = token
	r.byHash[token.TokenHash] = token
	return nil
}

// GetByTokenHash gets a refresh token by its hash
func (r *refreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.byHash[tokenHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return token, nil
}

// Revoke marks a token revoked by ID
func (r *refreshTokenRepository) Revoke(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

// RevokeByTokenHash marks a token revoked by hash
func (r *refreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, ok := r.byHash[tokenHash]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now()
	token.RevokedAt = &now
	return nil
}

// RevokeAllByAccountID revokes every active token of an account
func (r *refreshTokenRepository) RevokeAllByAccountID(ctx context.Context, accountID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, token := range r.byID {
		if token.AccountID == accountID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

// DeleteExpired drops expired and revoked tokens, returning the count
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, token := range r.byID {
		if token.IsExpired() || token.IsRevoked() {
			delete(r.byID, id)
			delete(r.byHash, token.TokenHash)
			removed++
		}
	}
	return removed, nil
}

// CountActiveByAccountID counts live tokens for an account
func (r *refreshTokenRepository) CountActiveByAccountID(ctx context.Context, accountID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, token := range r.byID {
		if token.AccountID == accountID && !token.IsRevoked() && !token.IsExpired() {
			n++
		}
	}
	return n, nil
}
