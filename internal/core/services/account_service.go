package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cultura-cupping/internal/adapters/persistence/repositories"
	"cultura-cupping/internal/config"
	"cultura-cupping/internal/core/domain"
	"cultura-cupping/internal/core/state"
	"cultura-cupping/internal/pkg/jwt"
	"cultura-cupping/internal/pkg/password"

	"github.com/google/uuid"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
)

// GuestDefaultName is the display name used when a guest gives none
const GuestDefaultName = "Guest Cupper"

// AccountService handles account registration and authentication
type AccountService struct {
	accountRepo      repositories.AccountRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	appState         *state.AppState
	cfg              *config.Config
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repositories.AccountRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	appState *state.AppState,
	cfg *config.Config,
) *AccountService {
	return &AccountService{
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		appState:         appState,
		cfg:              cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Password        string                 `json:"password"`
	Confirm         string                 `json:"confirm"`
	Company         string                 `json:"company"`
	Role            domain.Role            `json:"role"`
	Experience      domain.ExperienceLevel `json:"experience"`
	FavoriteOrigins []string               `json:"favorite_origins"`
	Newsletter      bool                   `json:"newsletter"`
	PublicProfile   bool                   `json:"public_profile"`
	AcceptTerms     bool                   `json:"accept_terms"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse is the account DTO handed to the UI layer
type AccountResponse struct {
	ID              string                 `json:"id"`
	Kind            domain.AccountKind     `json:"kind"`
	Email           string                 `json:"email,omitempty"`
	DisplayName     string                 `json:"display_name"`
	Company         string                 `json:"company,omitempty"`
	Role            domain.Role            `json:"role"`
	Experience      domain.ExperienceLevel `json:"experience"`
	FavoriteOrigins []string               `json:"favorite_origins,omitempty"`
	Newsletter      bool                   `json:"newsletter"`
	PublicProfile   bool                   `json:"public_profile"`
	MemberSince     time.Time              `json:"member_since"`
	Stats           domain.AccountStats    `json:"stats"`
}

// NewAccountResponse builds the DTO, never exposing the password hash
func NewAccountResponse(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:              a.ID,
		Kind:            a.Kind,
		Email:           a.Email,
		DisplayName:     a.DisplayName,
		Company:         a.Company,
		Role:            a.Role,
		Experience:      a.Experience,
		FavoriteOrigins: a.FavoriteOrigins,
		Newsletter:      a.Newsletter,
		PublicProfile:   a.PublicProfile,
		MemberSince:     a.MemberSince,
		Stats:           a.Stats,
	}
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Account      *AccountResponse `json:"account"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
}

// Register registers a new account. Every violated rule is collected so
// the form can show the complete list at once.
func (s *AccountService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	var violations []domain.Violation

	// 1. Name
	if strings.TrimSpace(input.Name) == "" {
		violations = append(violations, domain.Violation{Field: "name", Reason: "name is required"})
	}

	// 2. Email shape
	email := strings.TrimSpace(input.Email)
	if email == "" {
		violations = append(violations, domain.Violation{Field: "email", Reason: "email is required"})
	} else if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		violations = append(violations, domain.Violation{Field: "email", Reason: "email is not valid"})
	}

	// 3. Password strength
	if input.Password == "" {
		violations = append(violations, domain.Violation{Field: "password", Reason: "password is required"})
	} else if !password.ValidateLength(input.Password) {
		violations = append(violations, domain.Violation{Field: "password", Reason: "password must be at least 6 characters"})
	}

	// 4. Confirmation
	if input.Password != input.Confirm {
		violations = append(violations, domain.Violation{Field: "confirm", Reason: "passwords do not match"})
	}

	// 5. Duplicate email
	if email != "" {
		exists, err := s.accountRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			violations = append(violations, domain.Violation{Field: "email", Reason: "email is already registered"})
		}
	}

	// 6. Reserved demo email
	if strings.EqualFold(email, domain.DemoEmail) {
		violations = append(violations, domain.Violation{Field: "email", Reason: "email is reserved"})
	}

	// 7. Optional enum fields
	role := input.Role
	if role == "" {
		role = domain.RoleEnthusiast
	} else if !domain.ValidRole(role) {
		violations = append(violations, domain.Violation{Field: "role", Reason: "unknown role"})
	}
	experience := input.Experience
	if experience == "" {
		experience = domain.ExperienceBeginner
	} else if !domain.ValidExperienceLevel(experience) {
		violations = append(violations, domain.Violation{Field: "experience", Reason: "unknown experience level"})
	}

	// 8. Terms
	if !input.AcceptTerms {
		violations = append(violations, domain.Violation{Field: "terms", Reason: "terms must be accepted"})
	}

	if len(violations) > 0 {
		return nil, &domain.RegistrationError{Violations: violations}
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &domain.Account{
		ID:              uuid.New().String(),
		Kind:            domain.KindRegistered,
		Email:           email,
		DisplayName:     strings.TrimSpace(input.Name),
		Password:        hashedPassword,
		Company:         strings.TrimSpace(input.Company),
		Role:            role,
		Experience:      experience,
		FavoriteOrigins: input.FavoriteOrigins,
		Newsletter:      input.Newsletter,
		PublicProfile:   input.PublicProfile,
		MemberSince:     now,
		RegisteredAt:    now,
		Stats:           domain.AccountStats{Badges: []string{}},
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, account.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	// A fresh registration becomes the active identity right away
	s.appState.Login(account)

	log.Printf("✅ Account registered: %s (%s)", account.DisplayName, account.Email)

	return &AuthResponse{
		Account:      NewAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Authenticate checks credentials and logs the account into the
// application state. The demo identity short-circuits against its fixed
// literal credential regardless of what else is registered.
func (s *AccountService) Authenticate(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	email := strings.TrimSpace(input.Email)

	var account *domain.Account
	if strings.EqualFold(email, domain.DemoEmail) {
		if input.Password != domain.DemoPassword {
			return nil, domain.ErrInvalidPassword
		}
		demo, err := s.accountRepo.GetByEmail(ctx, domain.DemoEmail)
		if err != nil {
			return nil, err
		}
		account = demo
	} else {
		found, err := s.accountRepo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUserNotFound
			}
			return nil, err
		}
		if !password.Verify(input.Password, found.Password) {
			return nil, domain.ErrInvalidPassword
		}
		account = found
	}

	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, account.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	s.appState.Login(account)

	log.Printf("✅ Login: %s", account.DisplayName)

	return &AuthResponse{
		Account:      NewAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Guest creates an ephemeral guest identity. It always succeeds and the
// guest never enters the registered set.
func (s *AccountService) Guest(ctx context.Context, optionalName string) (*AuthResponse, error) {
	name := strings.TrimSpace(optionalName)
	if name == "" {
		name = GuestDefaultName
	}

	now := time.Now()
	account := &domain.Account{
		ID:           uuid.New().String(),
		Kind:         domain.KindGuest,
		DisplayName:  name,
		Role:         domain.RoleEnthusiast,
		Experience:   domain.ExperienceBeginner,
		MemberSince:  now,
		RegisteredAt: now,
		Stats:        domain.AccountStats{Badges: []string{}},
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, account.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	s.appState.Login(account)

	log.Printf("✅ Guest session started: %s", account.DisplayName)

	return &AuthResponse{
		Account:      NewAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Refresh rotates the refresh token and issues a new pair
func (s *AccountService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	// 1. Validate refresh token JWT
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	// 2. Find the stored (hashed) token
	tokenHash := password.HashToken(refreshToken)
	storedToken, err := s.refreshTokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	// 3. Revocation and expiry
	if storedToken.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if storedToken.IsExpired() {
		return nil, ErrTokenExpired
	}

	// 4. Resolve the account
	account, err := s.accountRepo.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 5. Rotate: revoke old, issue new
	if err := s.refreshTokenRepo.Revoke(ctx, storedToken.ID); err != nil {
		return nil, err
	}
	tokens, err := s.generateTokens(account)
	if err != nil {
		return nil, err
	}
	if err := s.storeRefreshToken(ctx, account.ID, tokens.RefreshToken); err != nil {
		return nil, err
	}

	log.Printf("✅ Token refreshed for: %s", account.DisplayName)

	return &AuthResponse{
		Account:      NewAccountResponse(account),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout revokes the refresh token and clears the active identity and
// its working flavor selection. Saved sessions and profiles stay on the
// account record.
func (s *AccountService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		tokenHash := password.HashToken(refreshToken)
		if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, tokenHash); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
	}

	s.appState.Logout()

	log.Printf("✅ Logged out")
	return nil
}

// LogoutAll revokes every refresh token of an account
func (s *AccountService) LogoutAll(ctx context.Context, accountID string) error {
	if err := s.refreshTokenRepo.RevokeAllByAccountID(ctx, accountID); err != nil {
		return err
	}

	log.Printf("✅ All sessions revoked for account: %s", accountID)
	return nil
}

// GetByID gets an account by ID
func (s *AccountService) GetByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.GetByID(ctx, accountID)
}

// generateTokens generates an access and refresh token pair
func (s *AccountService) generateTokens(account *domain.Account) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		account.ID,
		account.Email,
		account.DisplayName,
		string(account.Kind),
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.New().String()
	refreshToken, err := jwt.GenerateRefreshToken(
		account.ID,
		tokenID,
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// storeRefreshToken stores the hash of a refresh token
func (s *AccountService) storeRefreshToken(ctx context.Context, accountID, refreshToken string) error {
	token := &domain.RefreshToken{
		ID:        uuid.New().String(),
		AccountID: accountID,
		TokenHash: password.HashToken(refreshToken),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	return s.refreshTokenRepo.Create(ctx, token)
}
