package domain

import "time"

// AccountKind represents the account variant
type AccountKind string

const (
	KindDemo       AccountKind = "DEMO"
	KindRegistered AccountKind = "REGISTERED"
	KindGuest      AccountKind = "GUEST"
)

// Role represents a cupper's role in the coffee trade
type Role string

const (
	RoleCupper     Role = "CUPPER"
	RoleRoaster    Role = "ROASTER"
	RoleBarista    Role = "BARISTA"
	RoleQGrader    Role = "Q_GRADER"
	RoleProducer   Role = "PRODUCER"
	RoleEnthusiast Role = "ENTHUSIAST"
)

// ExperienceLevel represents self-reported cupping experience
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
	ExperienceProfessional ExperienceLevel = "PROFESSIONAL"
)

// ValidRole checks a role against the fixed set
func ValidRole(r Role) bool {
	switch r {
	case RoleCupper, RoleRoaster, RoleBarista, RoleQGrader, RoleProducer, RoleEnthusiast:
		return true
	}
	return false
}

// ValidExperienceLevel checks an experience level against the fixed set
func ValidExperienceLevel(l ExperienceLevel) bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceProfessional:
		return true
	}
	return false
}

// AccountStats holds aggregate cupping statistics for an account.
// Only a scoring pipeline would mutate these; the demo account carries
// fixed showcase values.
type AccountStats struct {
	TotalSessions int      `json:"total_sessions"`
	AverageScore  float64  `json:"average_score"`
	Badges        []string `json:"badges"`
}

// Account represents a user account in the domain layer
type Account struct {
	ID              string
	Kind            AccountKind
	Email           string // unique key for registered accounts, empty for guests
	DisplayName     string
	Password        string // bcrypt hash, empty for guests
	Company         string
	Role            Role
	Experience      ExperienceLevel
	FavoriteOrigins []string
	Newsletter      bool
	PublicProfile   bool
	MemberSince     time.Time
	RegisteredAt    time.Time
	Stats           AccountStats
}

// IsGuest reports whether the account is an ephemeral guest identity
func (a *Account) IsGuest() bool {
	return a.Kind == KindGuest
}

// ProcessMethod represents how a coffee sample was processed
type ProcessMethod string

const (
	ProcessWashed        ProcessMethod = "Washed"
	ProcessNatural       ProcessMethod = "Natural"
	ProcessHoney         ProcessMethod = "Honey"
	ProcessPulpedNatural ProcessMethod = "Pulped Natural"
)

// ValidProcessMethod checks a process method against the four allowed values
func ValidProcessMethod(p ProcessMethod) bool {
	switch p {
	case ProcessWashed, ProcessNatural, ProcessHoney, ProcessPulpedNatural:
		return true
	}
	return false
}

// Protocol represents the evaluation protocol of a cupping session
type Protocol string

const (
	ProtocolSCA    Protocol = "SCA Standard"
	ProtocolCOE    Protocol = "COE Protocol"
	ProtocolCustom Protocol = "Custom"
)

// ValidProtocol checks a protocol against the three allowed values
func ValidProtocol(p Protocol) bool {
	switch p {
	case ProtocolSCA, ProtocolCOE, ProtocolCustom:
		return true
	}
	return false
}

// Sample represents one coffee on the cupping table.
// Owned by its parent session, no identity of its own.
type Sample struct {
	Name    string        `json:"name"`
	Origin  string        `json:"origin"`
	Process ProcessMethod `json:"process"`
}

// CuppingSession represents a cupping session aggregate.
// Immutable once created; sessions are append-only per account.
type CuppingSession struct {
	ID            string
	AccountID     string
	Name          string
	Date          time.Time
	Samples       []Sample
	CupsPerSample int
	Protocol      Protocol
	Blind         bool
	AllowNotes    bool
	CreatedAt     time.Time
}

// Clone returns a deep copy so callers cannot mutate the stored session
func (s *CuppingSession) Clone() *CuppingSession {
	cp := *s
	cp.Samples = make([]Sample, len(s.Samples))
	copy(cp.Samples, s.Samples)
	return &cp
}

// FlavorProfile represents a named snapshot of selected flavor descriptors
type FlavorProfile struct {
	ID          string
	AccountID   string
	Name        string
	Descriptors []string // catalog order
	CreatedAt   time.Time
}
