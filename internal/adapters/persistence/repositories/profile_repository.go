package repositories

import (
	"context"
	"sync"

	"cultura-cupping/internal/core/domain"
)

// profileRepository implements ProfileRepository with per-account,
// insertion-ordered in-memory slices
type profileRepository struct {
	mu        sync.RWMutex
	byAccount map[string][]*domain.FlavorProfile
}

// NewProfileRepository creates a new in-memory profile repository
func NewProfileRepository() ProfileRepository {
	return &profileRepository{
		byAccount: make(map[string][]*domain.FlavorProfile),
	}
}

// Save stores a named profile snapshot for its owner
func (r *profileRepository) Save(ctx context.Context, profile *domain.FlavorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byAccount[profile.AccountID] = append(r.byAccount[profile.AccountID], profile)
	return nil
}

// ListByAccount returns the owner's saved profiles in creation order
func (r *profileRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.FlavorProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byAccount[accountID]
	out := make([]*domain.FlavorProfile, 0, len(stored))
	for _, p := range stored {
		cp := *p
		cp.Descriptors = append([]string(nil), p.Descriptors...)
		out = append(out, &cp)
	}
	return out, nil
}
