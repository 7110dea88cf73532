package services

import (
	"context"
	"log"
	"strings"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/state"

	"github.com/google/uuid"
)

// FlavorService handles the flavor catalog and the profile builder. The
// working selection lives in the application state; saved profiles live
// on the account record via the repository.
type FlavorService struct {
	catalog     *domain.FlavorCatalog
	appState    *state.AppState
	profileRepo repositories.ProfileRepository
}

// NewFlavorService creates a new flavor service
func NewFlavorService(
	catalog *domain.FlavorCatalog,
	appState *state.AppState,
	profileRepo repositories.ProfileRepository,
) *FlavorService {
	return &FlavorService{
		catalog:     catalog,
		appState:    appState,
		profileRepo: profileRepo,
	}
}

// Catalog returns the static flavor wheel in display order
func (s *FlavorService) Catalog() []domain.Category {
	return s.catalog.Categories
}

// Toggle flips a descriptor in the working selection and reports whether
// it is now selected. Toggling twice restores the original selection.
func (s *FlavorService) Toggle(descriptor string) (bool, error) {
	if !s.catalog.Contains(descriptor) {
		return false, domain.ErrUnknownDescriptor
	}
	return s.appState.ToggleDescriptor(descriptor), nil
}

// Selection returns the working selection in catalog display order
func (s *FlavorService) Selection() []string {
	out := make([]string, 0, s.appState.SelectionSize())
	for _, d := range s.catalog.Descriptors() {
		if s.appState.Selected(d) {
			out = append(out, d)
		}
	}
	return out
}

// Save snapshots the working selection under a name for the given
// account. The working selection is left untouched; an empty selection
// produces an empty profile, which is allowed.
func (s *FlavorService) Save(ctx context.Context, accountID, name string) (*domain.FlavorProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	profile := &domain.FlavorProfile{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Name:        name,
		Descriptors: s.Selection(),
		CreatedAt:   time.Now(),
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	log.Printf("✅ Flavor profile saved: %s (%d descriptors)", profile.Name, len(profile.Descriptors))

	return profile, nil
}

// ListProfiles returns the account's saved profiles in creation order
func (s *FlavorService) ListProfiles(ctx context.Context, accountID string) ([]*domain.FlavorProfile, error) {
	return s.profileRepo.ListByAccount(ctx, accountID)
}
