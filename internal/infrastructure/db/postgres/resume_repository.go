package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jobtrackr/jobtrackr-api/internal/core/domain"
	"github.com/jobtrackr/jobtrackr-api/internal/core/ports"
)

// ResumeRepository implements ports.ResumeRepository on PostgreSQL.
type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

var _ ports.ResumeRepository = (*ResumeRepository)(nil)

const resumeColumns = `id, user_id, resume_url, ai_feedback, created_at`

func scanResume(row pgx.Row) (*domain.Resume, error) {
	var res domain.Resume
	err := row.Scan(&res.ID, &res.UserID, &res.ResumeURL, &res.AIFeedback, &res.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	query := `INSERT INTO resumes (user_id, resume_url, ai_feedback)
		VALUES ($1, $2, $3)
		RETURNING ` + resumeColumns
	created, err := scanResume(r.pool.QueryRow(ctx, query,
		resume.UserID, resume.ResumeURL, resume.AIFeedback))
	if err != nil {
		return nil, fmt.Errorf("insert resume: %w", err)
	}
	return created, nil
}

func (r *ResumeRepository) FindByUser(ctx context.Context, userID int64) (*domain.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE user_id = $1`
	res, err := scanResume(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Resume not found")
		}
		return nil, fmt.Errorf("find resume: %w", err)
	}
	return res, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	return nil
}

func (r *ResumeRepository) ListByJob(ctx context.Context, jobID int64) ([]*ports.ApplicantResume, error) {
	query := `SELECT u.name, u.email, COALESCE(r.resume_url, '')
		FROM applications a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN resumes r ON r.user_id = u.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list resumes by job: %w", err)
	}
	defer rows.Close()

	out := []*ports.ApplicantResume{}
	for rows.Next() {
		var ar ports.ApplicantResume
		if err := rows.Scan(&ar.Name, &ar.Email, &ar.ResumeURL); err != nil {
			return nil, fmt.Errorf("scan applicant resume: %w", err)
		}
		out = append(out, &ar)
	}
	return out, rows.Err()
}
