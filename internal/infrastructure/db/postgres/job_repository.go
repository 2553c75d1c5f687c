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

// JobRepository implements ports.JobRepository on PostgreSQL.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

var _ ports.JobRepository = (*JobRepository)(nil)

const jobColumns = `id, recruiter_id, title, company_name, description, requirements, salary_range, job_link, created_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.CompanyName, &j.Description,
		&j.Requirements, &j.SalaryRange, &j.JobLink, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `INSERT INTO jobs (recruiter_id, title, company_name, description, requirements, salary_range, job_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + jobColumns
	j, err := scanJob(r.pool.QueryRow(ctx, query,
		job.RecruiterID, job.Title, job.CompanyName, job.Description,
		job.Requirements, job.SalaryRange, job.JobLink))
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return j, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Job not found")
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return j, nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	where := []string{"true"}
	args := []any{}

	add := func(condition string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(condition, len(args)))
	}
	if filter.RecruiterID > 0 {
		add("recruiter_id = $%d", filter.RecruiterID)
	}
	if filter.CompanyName != "" {
		add("company_name ILIKE '%%' || $%d || '%%'", filter.CompanyName)
	}
	if filter.Title != "" {
		add("title ILIKE '%%' || $%d || '%%'", filter.Title)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, id int64, patch ports.JobPatch) (*domain.Job, error) {
	set := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.CompanyName != nil {
		add("company_name", *patch.CompanyName)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Requirements != nil {
		add("requirements", *patch.Requirements)
	}
	if patch.SalaryRange != nil {
		add("salary_range", *patch.SalaryRange)
	}
	if patch.JobLink != nil {
		add("job_link", *patch.JobLink)
	}

	query := `UPDATE jobs SET ` + strings.Join(set, ", ") + ` WHERE id = $1 RETURNING ` + jobColumns
	j, err := scanJob(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Job not found")
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("Job not found")
	}
	return nil
}

func (r *JobRepository) ListApplicants(ctx context.Context, jobID int64) ([]*ports.Applicant, error) {
	query := `SELECT u.id, u.name, u.email, u.education, COALESCE(r.resume_url, '')
		FROM applications a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN resumes r ON r.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	applicants := []*ports.Applicant{}
	for rows.Next() {
		var a ports.Applicant
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Education, &a.ResumeURL); err != nil {
			return nil, fmt.Errorf("scan applicant: %w", err)
		}
		a.HasResume = a.ResumeURL != ""
		applicants = append(applicants, &a)
	}
	return applicants, rows.Err()
}
