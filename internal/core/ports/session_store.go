package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// SessionStore tracks which session identifiers are currently live, i.e. not
// logged out, independent of token expiry.
//
// Absence of a session is not an error condition: Get returns (nil, nil) when
// the session was logged out, evicted by TTL, or never existed. Connectivity
// failures are returned as errors and must be surfaced as Internal faults,
// never treated as "not authenticated".
type SessionStore interface {
	// Put inserts or overwrites the session record and refreshes its TTL.
	Put(ctx context.Context, sessionID string, session *domain.Session) error
	// Get returns the session record, or (nil, nil) when it is not live.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// Delete removes the session record. Deleting an absent record is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
