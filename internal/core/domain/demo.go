package domain

import "time"

// Demo account literals carried over from the original prototype. The
// email is reserved: it can never be registered, and it always
// authenticates against the fixed password.
const (
	DemoEmail    = "demo@coffee.com"
	DemoPassword = "demo123"
)

// NewDemoAccount builds the canonical demo account with its showcase
// statistics. The password hash is filled in by the seeder.
func NewDemoAccount() *Account {
	memberSince := time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC)
	return &Account{
		Kind:            KindDemo,
		Email:           DemoEmail,
		DisplayName:     "Demo Cupper",
		Company:         "Cafe Cultura",
		Role:            RoleQGrader,
		Experience:      ExperienceProfessional,
		FavoriteOrigins: []string{"Ethiopia", "Colombia", "Guatemala"},
		Newsletter:      true,
		PublicProfile:   true,
		MemberSince:     memberSince,
		RegisteredAt:    memberSince,
		Stats: AccountStats{
			TotalSessions: 47,
			AverageScore:  86.5,
			Badges:        []string{"Q Grader", "100 Cups", "Origin Explorer"},
		},
	}
}
