package domain

import "time"

// Role is a closed two-variant enumeration. It is validated at every boundary
// (registration input, token claims) so no third value can propagate.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleRecruiter Role = "RECRUITER"
)

// Valid reports whether r is one of the two known variants.
func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleRecruiter
}

// Label returns the plural, human-readable form used in role-gate messages.
func (r Role) Label() string {
	switch r {
	case RoleApplicant:
		return "applicants"
	case RoleRecruiter:
		return "recruiters"
	}
	return "users"
}

// User models an account in the system.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Education    string    `json:"education,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
