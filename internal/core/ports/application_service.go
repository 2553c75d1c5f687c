package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// CreateApplicationInput carries the data for a new application. JobID zero
// means an external/custom job, which requires Title and CompanyName.
type CreateApplicationInput struct {
	JobID       int64
	Title       string
	CompanyName string
	JobLink     string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error)
	Create(ctx context.Context, caller Identity, input CreateApplicationInput) (*domain.Application, error)
	// Get returns the application; only its owner may read it.
	Get(ctx context.Context, caller Identity, id int64) (*domain.Application, error)
	Update(ctx context.Context, caller Identity, id int64, patch ApplicationPatch) (*domain.Application, error)
	Delete(ctx context.Context, caller Identity, id int64) error
}
