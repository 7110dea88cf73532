package repositories

import (
	"context"
	"sync"

	"cultura-cupping/internal/core/domain"
)

// sessionRepository implements SessionRepository with per-account,
// insertion-ordered in-memory slices
type sessionRepository struct {
	mu        sync.RWMutex
	byAccount map[string][]*domain.CuppingSession
}

// NewSessionRepository creates a new in-memory session repository
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		byAccount: make(map[string][]*domain.CuppingSession),
	}
}

// Append adds a session to the end of the owner's sequence
func (r *sessionRepository) Append(ctx context.Context, session *domain.CuppingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byAccount[session.AccountID] = append(r.byAccount[session.AccountID], session)
	return nil
}

// GetByID looks a session up inside the owner's sequence
func (r *sessionRepository) GetByID(ctx context.Context, accountID, sessionID string) (*domain.CuppingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byAccount[accountID] {
		if s.ID == sessionID {
			return s.Clone(), nil
		}
	}
	return nil, domain.ErrSessionNotFound
}

// ListByAccount returns the owner's sessions in creation order.
// An account with no sessions gets an empty slice, not an error.
func (r *sessionRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.CuppingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byAccount[accountID]
	out := make([]*domain.CuppingSession, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.Clone())
	}
	return out, nil
}

// CountByAccount returns the number of sessions the account owns
func (r *sessionRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.byAccount[accountID])), nil
}
