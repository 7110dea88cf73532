package repositories

import (
	"context"
	"testing"
	"time"

	"cultura-cupping/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_EmailUniqueness(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	first := &domain.Account{ID: "a1", Kind: domain.KindRegistered, Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, first))

	// Same address, different casing and padding
	dup := &domain.Account{ID: "a2", Kind: domain.KindRegistered, Email: "  ALICE@Example.com "}
	assert.Error(t, repo.Create(ctx, dup))

	exists, err := repo.ExistsByEmail(ctx, "Alice@EXAMPLE.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAccountRepository_GuestsOutsideEmailIndex(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	guest := &domain.Account{ID: "g1", Kind: domain.KindGuest, DisplayName: "Guest Cupper"}
	require.NoError(t, repo.Create(ctx, guest))

	// Reachable by ID but never through the registered index
	found, err := repo.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Guest Cupper", found.DisplayName)

	exists, err := repo.ExistsByEmail(ctx, "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountRepository_DeleteGuestsBefore(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, &domain.Account{
		ID: "g-old", Kind: domain.KindGuest, RegisteredAt: old,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Account{
		ID: "g-new", Kind: domain.KindGuest, RegisteredAt: time.Now(),
	}))
	require.NoError(t, repo.Create(ctx, &domain.Account{
		ID: "r1", Kind: domain.KindRegistered, Email: "keep@example.com", RegisteredAt: old,
	}))

	cutoff := time.Now().Add(-24 * time.Hour).Unix()
	removed, err := repo.DeleteGuestsBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.GetByID(ctx, "g-old")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByID(ctx, "g-new")
	assert.NoError(t, err)
	// Registered accounts are never purged
	_, err = repo.GetByID(ctx, "r1")
	assert.NoError(t, err)
}

func TestSessionRepository_ReadsAreCopies(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	session := &domain.CuppingSession{
		ID:        "s1",
		AccountID: "a1",
		Name:      "Morning Batch",
		Samples:   []domain.Sample{{Name: "Lot A", Origin: "Colombia", Process: domain.ProcessWashed}},
	}
	require.NoError(t, repo.Append(ctx, session))

	got, err := repo.GetByID(ctx, "a1", "s1")
	require.NoError(t, err)
	got.Name = "Tampered"
	got.Samples[0].Origin = "Mars"

	again, err := repo.GetByID(ctx, "a1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Morning Batch", again.Name)
	assert.Equal(t, "Colombia", again.Samples[0].Origin)
}

func TestSessionRepository_OrderAndScope(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	for i, name := range []string{"First", "Second"} {
		require.NoError(t, repo.Append(ctx, &domain.CuppingSession{
			ID: name, AccountID: "a1", Name: name, CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Append(ctx, &domain.CuppingSession{ID: "x", AccountID: "a2", Name: "Other"}))

	sessions, err := repo.ListByAccount(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "First", sessions[0].Name)
	assert.Equal(t, "Second", sessions[1].Name)

	count, err := repo.CountByAccount(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = repo.GetByID(ctx, "a1", "x")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRefreshTokenRepository_RevokeAndPurge(t *testing.T) {
	repo := NewRefreshTokenRepository()
	ctx := context.Background()

	live := &domain.RefreshToken{
		ID: "t1", AccountID: "a1", TokenHash: "h1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	expired := &domain.RefreshToken{
		ID: "t2", AccountID: "a1", TokenHash: "h2",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, expired))

	n, err := repo.CountActiveByAccountID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, repo.RevokeByTokenHash(ctx, "h1"))
	got, err := repo.GetByTokenHash(ctx, "h1")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())

	// The purge drops both the expired and the revoked record
	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = repo.GetByTokenHash(ctx, "h1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRefreshTokenRepository_RevokeAllByAccountID(t *testing.T) {
	repo := NewRefreshTokenRepository()
	ctx := context.Background()

	for _, id := range []string{"t1", "t2"} {
		require.NoError(t, repo.Create(ctx, &domain.RefreshToken{
			ID: id, AccountID: "a1", TokenHash: "h-" + id,
			ExpiresAt: time.Now().Add(time.Hour),
		}))
	}
	require.NoError(t, repo.Create(ctx, &domain.RefreshToken{
		ID: "t3", AccountID: "a2", TokenHash: "h-t3",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.RevokeAllByAccountID(ctx, "a1"))

	n, err := repo.CountActiveByAccountID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = repo.CountActiveByAccountID(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProfileRepository(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &domain.FlavorProfile{
		ID: "p1", AccountID: "a1", Name: "Fruity", Descriptors: []string{"Blackberry"},
	}))
	require.NoError(t, repo.Save(ctx, &domain.FlavorProfile{
		ID: "p2", AccountID: "a1", Name: "Sweet",
	}))

	profiles, err := repo.ListByAccount(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Fruity", profiles[0].Name)

	other, err := repo.ListByAccount(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
