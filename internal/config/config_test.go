package config

import (
	"context"
	"testing"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppMode)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 15, cfg.JWT.AccessTokenMins)
	assert.Equal(t, 7, cfg.JWT.RefreshTokenDays)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdMode(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_JWT_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.Equal(t, "https://cupping.cafecultura.com", cfg.GetAllowedOrigins())
}

func TestSeeder_DemoAccount(t *testing.T) {
	repo := repositories.NewAccountRepository()
	ctx := context.Background()

	seeder := NewSeeder(repo)
	require.NoError(t, seeder.Run(ctx))

	demo, err := repo.GetByEmail(ctx, domain.DemoEmail)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDemo, demo.Kind)
	assert.Equal(t, "Demo Cupper", demo.DisplayName)
	assert.True(t, password.Verify(domain.DemoPassword, demo.Password))
	assert.NotZero(t, demo.Stats.TotalSessions)

	// Seeding twice is a no-op, not an error
	require.NoError(t, seeder.Run(ctx))
}
