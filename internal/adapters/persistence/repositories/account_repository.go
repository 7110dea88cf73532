package repositories

import (
	"context"
	"strings"
	"sync"

	"cultura-cupping/internal/core/domain"
)

// accountRepository implements AccountRepository with in-memory maps.
// The application is a pure in-memory model; the mutex makes concurrent
// handler access safe.
type accountRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Account
	byEmail map[string]*domain.Account // registered + demo only, lowercase key
}

// NewAccountRepository creates a new in-memory account repository
func NewAccountRepository() AccountRepository {
	return &accountRepository{
		byID:    make(map[string]*domain.Account),
		byEmail: make(map[string]*domain.Account),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a new account. Guests are indexed by ID only.
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !account.IsGuest() {
		key := emailKey(account.Email)
		if _, exists := r.byEmail[key]; exists {
			return domain.ErrInvalidInput
		}
		r.byEmail[key] = account
	}
	r.byID[account.ID] = account
	return nil
}

// GetByID gets an account by ID
func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// GetByEmail gets a registered account by email
func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

// ExistsByEmail reports whether an email is already registered
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

// List returns all accounts, guests included
func (r *accountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

// DeleteGuestsBefore removes guest accounts created before the cutoff
// and returns how many were removed
func (r *accountRepository) DeleteGuestsBefore(ctx context.Context, cutoffUnix int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, a := range r.byID {
		if a.IsGuest() && a.RegisteredAt.Unix() < cutoffUnix {
			delete(r.byID, id)
			removed++
		}
	}
	return removed, nil
}
