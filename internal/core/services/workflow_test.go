package services

import (
	"context"
	"testing"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullCuppingWorkflow walks one user through the whole flow:
// register, fail a login, log in, build a session, tag flavors, save a
// profile and read the dashboard.
func TestFullCuppingWorkflow(t *testing.T) {
	ctx := context.Background()

	accountRepo := repositories.NewAccountRepository()
	sessionRepo := repositories.NewSessionRepository()
	profileRepo := repositories.NewProfileRepository()
	tokenRepo := repositories.NewRefreshTokenRepository()
	appState := state.New()
	catalog := domain.NewFlavorCatalog()

	accounts := NewAccountService(accountRepo, tokenRepo, appState, testConfig())
	sessions := NewSessionService(sessionRepo)
	flavors := NewFlavorService(catalog, appState, profileRepo)
	dashboard := NewDashboardService(accountRepo, sessionRepo)

	// Register and immediately sign out again
	reg, err := accounts.Register(ctx, &RegisterInput{
		Name:        "Alice",
		Email:       "alice@example.com",
		Password:    "secret1",
		Confirm:     "secret1",
		AcceptTerms: true,
	})
	require.NoError(t, err)
	require.NoError(t, accounts.Logout(ctx, reg.RefreshToken))

	// Wrong password is rejected without touching the state
	_, err = accounts.Authenticate(ctx, &LoginInput{Email: "alice@example.com", Password: "secret2"})
	require.ErrorIs(t, err, domain.ErrInvalidPassword)
	require.Nil(t, appState.Current())

	// Correct password restores the identity
	auth, err := accounts.Authenticate(ctx, &LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	accountID := auth.Account.ID

	// One session with two samples, five cups each
	_, err = sessions.CreateSession(ctx, accountID, &CreateSessionInput{
		Name:        "Morning Batch",
		Date:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		SampleCount: 2,
		Samples: []SampleInput{
			{Name: "Lot A", Origin: "Colombia", Process: "Washed"},
			{Name: "Lot B", Origin: "Brazil", Process: "Pulped Natural"},
		},
		CupsPerSample: 5,
		Protocol:      "COE Protocol",
	})
	require.NoError(t, err)

	listed, err := sessions.ListSessions(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Morning Batch", listed[0].Name)

	// Tag a few descriptors and snapshot them
	for _, d := range []string{"Blackberry", "Jasmine", "Caramelized"} {
		_, err := flavors.Toggle(d)
		require.NoError(t, err)
	}
	profile, err := flavors.Save(ctx, accountID, "Bright and Sweet")
	require.NoError(t, err)
	assert.Len(t, profile.Descriptors, 3)

	// The dashboard reflects the live session count
	dash, err := dashboard.GetDashboard(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", dash.DisplayName)
	assert.Equal(t, int64(1), dash.SessionCount)

	// Logout keeps the account data but drops the working selection
	require.NoError(t, accounts.Logout(ctx, auth.RefreshToken))
	assert.Empty(t, flavors.Selection())

	again, err := accounts.Authenticate(ctx, &LoginInput{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	listed, err = sessions.ListSessions(ctx, again.Account.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	profiles, err := flavors.ListProfiles(ctx, again.Account.ID)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
