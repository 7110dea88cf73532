package services

import (
	"context"
	"testing"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlavorService() (*FlavorService, *state.AppState) {
	appState := state.New()
	svc := NewFlavorService(domain.NewFlavorCatalog(), appState, repositories.NewProfileRepository())
	return svc, appState
}

func TestToggle(t *testing.T) {
	svc, _ := newFlavorService()

	selected, err := svc.Toggle("Blackberry")
	require.NoError(t, err)
	assert.True(t, selected)

	selected, err = svc.Toggle("Blackberry")
	require.NoError(t, err)
	assert.False(t, selected)
	assert.Empty(t, svc.Selection())
}

func TestToggle_UnknownDescriptor(t *testing.T) {
	svc, _ := newFlavorService()

	_, err := svc.Toggle("Motor Oil")
	assert.ErrorIs(t, err, domain.ErrUnknownDescriptor)
	assert.Empty(t, svc.Selection())
}

func TestSelection_CatalogOrder(t *testing.T) {
	svc, _ := newFlavorService()

	// Toggle in reverse of the wheel's display order
	for _, d := range []string{"Clove", "Almond", "Strawberry"} {
		_, err := svc.Toggle(d)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Strawberry", "Almond", "Clove"}, svc.Selection())
}

func TestSave(t *testing.T) {
	svc, _ := newFlavorService()
	ctx := context.Background()

	for _, d := range []string{"Blackberry", "Jasmine"} {
		_, err := svc.Toggle(d)
		require.NoError(t, err)
	}

	profile, err := svc.Save(ctx, "acc-1", "  Fruity Favorites  ")
	require.NoError(t, err)
	assert.Equal(t, "Fruity Favorites", profile.Name)
	assert.Equal(t, []string{"Blackberry", "Jasmine"}, profile.Descriptors)

	// Saving snapshots the selection without clearing it
	assert.Equal(t, []string{"Blackberry", "Jasmine"}, svc.Selection())
}

func TestSave_RequiresName(t *testing.T) {
	svc, _ := newFlavorService()

	_, err := svc.Save(context.Background(), "acc-1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSave_EmptySelectionAllowed(t *testing.T) {
	svc, _ := newFlavorService()

	profile, err := svc.Save(context.Background(), "acc-1", "Blank Slate")
	require.NoError(t, err)
	assert.Empty(t, profile.Descriptors)
}

func TestSave_SnapshotIsDetached(t *testing.T) {
	svc, _ := newFlavorService()
	ctx := context.Background()

	_, err := svc.Toggle("Honey Sweet")
	require.NoError(t, err)
	profile, err := svc.Save(ctx, "acc-1", "Sweet")
	require.NoError(t, err)

	// Later toggles do not rewrite the saved profile
	_, err = svc.Toggle("Honey Sweet")
	require.NoError(t, err)
	_, err = svc.Toggle("Vanilla")
	require.NoError(t, err)

	profiles, err := svc.ListProfiles(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, profile.ID, profiles[0].ID)
	assert.Equal(t, []string{"Honey Sweet"}, profiles[0].Descriptors)
}

func TestListProfiles_CreationOrder(t *testing.T) {
	svc, _ := newFlavorService()
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three"} {
		_, err := svc.Save(ctx, "acc-1", name)
		require.NoError(t, err)
	}

	profiles, err := svc.ListProfiles(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "One", profiles[0].Name)
	assert.Equal(t, "Three", profiles[2].Name)
}

func TestProfiles_ScopedToAccount(t *testing.T) {
	svc, _ := newFlavorService()
	ctx := context.Background()

	_, err := svc.Save(ctx, "acc-1", "Mine")
	require.NoError(t, err)

	profiles, err := svc.ListProfiles(ctx, "acc-2")
	require.NoError(t, err)
	assert.Empty(t, profiles)
}
