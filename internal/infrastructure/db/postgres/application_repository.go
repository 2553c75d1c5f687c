package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ApplicationRepository implements ports.ApplicationRepository on PostgreSQL.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)

const applicationColumns = `id, user_id, job_id, title, company_name, job_link, status, notes, applied_at`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.Title, &a.CompanyName,
		&a.JobLink, &a.Status, &a.Notes, &a.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	query := `INSERT INTO applications (user_id, job_id, title, company_name, job_link, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + applicationColumns
	created, err := scanApplication(r.pool.QueryRow(ctx, query,
		app.UserID, app.JobID, app.Title, app.CompanyName, app.JobLink, app.Status, app.Notes))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict("You have already applied for this job.")
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	a, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Application not found")
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepository) FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 AND job_id = $2`
	a, err := scanApplication(r.pool.QueryRow(ctx, query, userID, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Application not found")
		}
		return nil, fmt.Errorf("find application by user and job: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE user_id = $1 ORDER BY applied_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := []*domain.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepository) Update(ctx context.Context, id int64, patch ports.ApplicationPatch) (*domain.Application, error) {
	set := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.CompanyName != nil {
		add("company_name", *patch.CompanyName)
	}
	if patch.JobLink != nil {
		add("job_link", *patch.JobLink)
	}

	query := `UPDATE applications SET ` + strings.Join(set, ", ") + ` WHERE id = $1 RETURNING ` + applicationColumns
	a, err := scanApplication(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Application not found")
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Application not found")
	}
	return nil
}
