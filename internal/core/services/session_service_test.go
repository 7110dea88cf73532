package services

import (
	"context"
	"testing"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService() *SessionService {
	return NewSessionService(repositories.NewSessionRepository())
}

func validSessionInput() *CreateSessionInput {
	return &CreateSessionInput{
		Name:        "Morning Batch",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		SampleCount: 2,
		Samples: []SampleInput{
			{Name: "Huila Lot 4", Origin: "Colombia", Process: "Washed"},
			{Name: "Yirgacheffe", Origin: "Ethiopia", Process: "Natural"},
		},
		CupsPerSample: 5,
		Protocol:      "SCA Standard",
	}
}

func TestCreateSession_Success(t *testing.T) {
	svc := newSessionService()

	session, err := svc.CreateSession(context.Background(), "acc-1", validSessionInput())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "acc-1", session.AccountID)
	assert.Equal(t, "Morning Batch", session.Name)
	assert.Len(t, session.Samples, 2)
	assert.Equal(t, 5, session.CupsPerSample)
	assert.Equal(t, domain.ProtocolSCA, session.Protocol)
}

func TestCreateSession_SampleCountMismatch(t *testing.T) {
	svc := newSessionService()

	input := validSessionInput()
	input.SampleCount = 3
	_, err := svc.CreateSession(context.Background(), "acc-1", input)

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.True(t, valErr.Has("samples"))

	// Declaring the count the form actually has fixes it
	input.SampleCount = 2
	_, err = svc.CreateSession(context.Background(), "acc-1", input)
	assert.NoError(t, err)
}

func TestCreateSession_Bounds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*CreateSessionInput)
		field  string
	}{
		{"empty name", func(in *CreateSessionInput) { in.Name = "  " }, "name"},
		{"zero samples", func(in *CreateSessionInput) { in.SampleCount = 0; in.Samples = nil }, "sample_count"},
		{"too many samples", func(in *CreateSessionInput) { in.SampleCount = 9 }, "sample_count"},
		{"too few cups", func(in *CreateSessionInput) { in.CupsPerSample = 2 }, "cups_per_sample"},
		{"too many cups", func(in *CreateSessionInput) { in.CupsPerSample = 6 }, "cups_per_sample"},
		{"unknown protocol", func(in *CreateSessionInput) { in.Protocol = "Freestyle" }, "protocol"},
		{"unknown process", func(in *CreateSessionInput) { in.Samples[0].Process = "Anaerobic" }, "samples[0].process"},
		{"blank origin", func(in *CreateSessionInput) { in.Samples[1].Origin = "" }, "samples[1].origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSessionService()
			input := validSessionInput()
			tt.mutate(input)

			_, err := svc.CreateSession(ctx, "acc-1", input)
			var valErr *domain.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.True(t, valErr.Has(tt.field))
		})
	}
}

func TestCreateSession_CollectsAllViolations(t *testing.T) {
	svc := newSessionService()

	_, err := svc.CreateSession(context.Background(), "acc-1", &CreateSessionInput{
		Name:          "",
		SampleCount:   1,
		Samples:       []SampleInput{{Name: "", Origin: "", Process: "Washed"}},
		CupsPerSample: 1,
		Protocol:      "Freestyle",
	})

	var valErr *domain.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.True(t, valErr.Has("name"))
	assert.True(t, valErr.Has("cups_per_sample"))
	assert.True(t, valErr.Has("protocol"))
	assert.True(t, valErr.Has("samples[0].name"))
	assert.True(t, valErr.Has("samples[0].origin"))
}

func TestCreateSession_DefaultsDate(t *testing.T) {
	svc := newSessionService()

	input := validSessionInput()
	input.Date = time.Time{}
	session, err := svc.CreateSession(context.Background(), "acc-1", input)
	require.NoError(t, err)
	assert.False(t, session.Date.IsZero())
}

func TestListSessions_CreationOrder(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		input := validSessionInput()
		input.Name = name
		_, err := svc.CreateSession(ctx, "acc-1", input)
		require.NoError(t, err)
	}

	sessions, err := svc.ListSessions(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	for i, name := range names {
		assert.Equal(t, name, sessions[i].Name)
	}
}

func TestListSessions_Empty(t *testing.T) {
	svc := newSessionService()

	sessions, err := svc.ListSessions(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestGetSession(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	created, err := svc.CreateSession(ctx, "acc-1", validSessionInput())
	require.NoError(t, err)

	found, err := svc.GetSession(ctx, "acc-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)

	// Sessions are scoped to their owner
	_, err = svc.GetSession(ctx, "acc-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCountSessions_FailedCreationDoesNotCount(t *testing.T) {
	svc := newSessionService()
	ctx := context.Background()

	input := validSessionInput()
	input.CupsPerSample = 9
	_, err := svc.CreateSession(ctx, "acc-1", input)
	require.Error(t, err)

	count, err := svc.CountSessions(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
