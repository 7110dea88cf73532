package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/core/domain"

	"github.com/google/uuid"
)

// Session bounds
const (
	MinSamples       = 1
	MaxSamples       = 8
	MinCupsPerSample = 3
	MaxCupsPerSample = 5
)

// SessionService handles cupping-session business logic
type SessionService struct {
	sessionRepo repositories.SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repositories.SessionRepository) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

// SampleInput represents one sample row of the creation form
type SampleInput struct {
	Name    string `json:"name"`
	Origin  string `json:"origin"`
	Process string `json:"process"`
}

// CreateSessionInput represents the fully-filled session creation form
type CreateSessionInput struct {
	Name          string        `json:"name"`
	Date          time.Time     `json:"date"`
	SampleCount   int           `json:"sample_count"`
	Samples       []SampleInput `json:"samples"`
	CupsPerSample int           `json:"cups_per_sample"`
	Protocol      string        `json:"protocol"`
	Blind         bool          `json:"blind"`
	AllowNotes    bool          `json:"allow_notes"`
}

// CreateSession validates the whole form at once and, on success,
// appends the new session to the owner's sequence and returns an
// immutable copy.
func (s *SessionService) CreateSession(ctx context.Context, accountID string, input *CreateSessionInput) (*domain.CuppingSession, error) {
	var violations []domain.Violation

	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, domain.Violation{Field: "name", Reason: "session name is required"})
	}

	if input.SampleCount < MinSamples || input.SampleCount > MaxSamples {
		violations = append(violations, domain.Violation{
			Field:  "sample_count",
			Reason: fmt.Sprintf("sample count must be between %d and %d", MinSamples, MaxSamples),
		})
	} else if len(input.Samples) != input.SampleCount {
		violations = append(violations, domain.Violation{
			Field:  "samples",
			Reason: fmt.Sprintf("expected %d samples, got %d", input.SampleCount, len(input.Samples)),
		})
	}

	if input.CupsPerSample < MinCupsPerSample || input.CupsPerSample > MaxCupsPerSample {
		violations = append(violations, domain.Violation{
			Field:  "cups_per_sample",
			Reason: fmt.Sprintf("cups per sample must be between %d and %d", MinCupsPerSample, MaxCupsPerSample),
		})
	}

	protocol := domain.Protocol(input.Protocol)
	if !domain.ValidProtocol(protocol) {
		violations = append(violations, domain.Violation{Field: "protocol", Reason: "unknown evaluation protocol"})
	}

	samples := make([]domain.Sample, 0, len(input.Samples))
	for i, in := range input.Samples {
		field := fmt.Sprintf("samples[%d]", i)
		if strings.TrimSpace(in.Name) == "" {
			violations = append(violations, domain.Violation{Field: field + ".name", Reason: "sample name is required"})
		}
		if strings.TrimSpace(in.Origin) == "" {
			violations = append(violations, domain.Violation{Field: field + ".origin", Reason: "sample origin is required"})
		}
		process := domain.ProcessMethod(in.Process)
		if !domain.ValidProcessMethod(process) {
			violations = append(violations, domain.Violation{Field: field + ".process", Reason: "unknown process method"})
		}
		samples = append(samples, domain.Sample{
			Name:    strings.TrimSpace(in.Name),
			Origin:  strings.TrimSpace(in.Origin),
			Process: process,
		})
	}

	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().Truncate(24 * time.Hour)
	}

	session := &domain.CuppingSession{
		ID:            uuid.New().String(),
		AccountID:     accountID,
		Name:          strings.TrimSpace(input.Name),
		Date:          date,
		Samples:       samples,
		CupsPerSample: input.CupsPerSample,
		Protocol:      protocol,
		Blind:         input.Blind,
		AllowNotes:    input.AllowNotes,
		CreatedAt:     time.Now(),
	}

	if err := s.sessionRepo.Append(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("✅ Cupping session created: %s (%d samples)", session.Name, len(session.Samples))

	return session.Clone(), nil
}

// ListSessions returns the account's sessions in creation order. No
// sessions is an empty slice, not an error.
func (s *SessionService) ListSessions(ctx context.Context, accountID string) ([]*domain.CuppingSession, error) {
	return s.sessionRepo.ListByAccount(ctx, accountID)
}

// GetSession looks one session up inside the owner's sequence
func (s *SessionService) GetSession(ctx context.Context, accountID, sessionID string) (*domain.CuppingSession, error) {
	return s.sessionRepo.GetByID(ctx, accountID, sessionID)
}

// CountSessions returns how many sessions the account owns
func (s *SessionService) CountSessions(ctx context.Context, accountID string) (int64, error) {
	return s.sessionRepo.CountByAccount(ctx, accountID)
}
