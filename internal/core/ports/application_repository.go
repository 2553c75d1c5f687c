package ports

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
)

// ApplicationPatch is the typed partial-update structure for an application.
// Nil means "leave unchanged".
type ApplicationPatch struct {
	Status      *domain.ApplicationStatus
	Notes       *string
	Title       *string
	CompanyName *string
	JobLink     *string
}

// Empty reports whether the patch changes nothing.
func (p ApplicationPatch) Empty() bool {
	return p.Status == nil && p.Notes == nil && p.Title == nil &&
		p.CompanyName == nil && p.JobLink == nil
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	// FindByUserAndJob returns the user's application to the given job, or a
	// NotFound error. Used for the double-apply check.
	FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error)
	// ListByUser returns the user's applications ordered by applied_at desc.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error)
	Update(ctx context.Context, id int64, patch ApplicationPatch) (*domain.Application, error)
	Delete(ctx context.Context, id int64) error
}
