package ports

import "github.com/jobtrackr/jobtrackr-api/internal/core/domain"

// Identity is the verified caller identity produced by the auth middleware
// and consumed by services for ownership checks.
type Identity struct {
	UserID int64
	Role   domain.Role
}
