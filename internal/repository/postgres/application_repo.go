package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	a.id, a.job_post_id, a.job_seeker_profile_id, a.cover_letter, a.status,
	a.employer_notes, a.rejection_reason, a.last_status_change, a.created_at, a.updated_at`

const applicationJoins = `
	u.first_name || ' ' || u.last_name AS seeker_name,
	sp.headline, sp.resume_url,
	j.title, j.slug, e.company_name`

func scanApplication(row pgx.Row, withJoins bool) (*domain.JobApplication, error) {
	var a domain.JobApplication
	dest := []any{
		&a.ID, &a.JobPostID, &a.JobSeekerID, &a.CoverLetter, &a.Status,
		&a.EmployerNotes, &a.RejectionReason, &a.LastStatusChange, &a.CreatedAt, &a.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &a.SeekerName, &a.SeekerHeadline, &a.SeekerResume, &a.JobTitle, &a.JobSlug, &a.CompanyName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts a PENDING application and increments the post's
// application_count in the same transaction. The unique index on
// (job_post_id, job_seeker_profile_id) is the backstop for concurrent
// submissions; its violation surfaces as ErrDuplicateApplication.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	app.LastStatusChange = &now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO job_applications (job_post_id, job_seeker_profile_id, cover_letter, status,
			last_status_change, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		app.JobPostID, app.JobSeekerID, app.CoverLetter, app.Status,
		app.LastStatusChange, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateApplication
		}
		return err
	}

	if err := adjustApplicationCount(ctx, tx, app.JobPostID, +1); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + applicationJoins + `
		FROM job_applications a
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		WHERE a.id = $1`

	return scanApplication(r.db.QueryRow(ctx, query, id), true)
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobPostID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + applicationJoins + `
		FROM job_applications a
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		WHERE a.job_post_id = $1
		ORDER BY a.created_at DESC`

	return r.fetch(ctx, query, jobPostID)
}

func (r *applicationRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `, ` + applicationJoins + `
		FROM job_applications a
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		WHERE a.job_seeker_profile_id = $1
		ORDER BY a.created_at DESC`

	return r.fetch(ctx, query, seekerID)
}

func (r *applicationRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		a, err := scanApplication(rows, true)
		if err != nil {
			return nil, err
		}
		applications = append(applications, *a)
	}
	return applications, nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobPostID, seekerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_post_id = $1 AND job_seeker_profile_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobPostID, seekerID).Scan(&exists)
	return exists, err
}

// UpdateStatus applies an employer-side status change in one transaction: the
// application row is locked, the counter delta is computed from the old status
// via domain.CounterDelta and applied to the post, then the row is rewritten.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, upd domain.ApplicationStatusUpdate) (*domain.JobApplication, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var jobPostID int64
	var oldStatus string
	err = tx.QueryRow(ctx,
		`SELECT job_post_id, status FROM job_applications WHERE id = $1 FOR UPDATE`, id,
	).Scan(&jobPostID, &oldStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	// Notes and reason mirror the request as-is; omitting either clears the
	// stored value.
	now := time.Now()
	_, err = tx.Exec(ctx, `
		UPDATE job_applications SET
			status = $2,
			employer_notes = $3,
			rejection_reason = $4,
			last_status_change = $5,
			updated_at = $5
		WHERE id = $1`,
		id, upd.Status, upd.EmployerNotes, upd.RejectionReason, now,
	)
	if err != nil {
		return nil, err
	}

	if delta := domain.CounterDelta(oldStatus, upd.Status); delta != 0 {
		if err := adjustApplicationCount(ctx, tx, jobPostID, delta); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Withdraw sets the application to WITHDRAWN and decrements the post's counter.
// The decrement is unconditional: a withdrawn OFFERED application still takes
// one off the count.
func (r *applicationRepo) Withdraw(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var jobPostID int64
	var status string
	err = tx.QueryRow(ctx,
		`SELECT job_post_id, status FROM job_applications WHERE id = $1 FOR UPDATE`, id,
	).Scan(&jobPostID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if status == domain.ApplicationStatusWithdrawn {
		return domain.ErrAlreadyWithdrawn
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `
		UPDATE job_applications SET status = $2, last_status_change = $3, updated_at = $3 WHERE id = $1`,
		id, domain.ApplicationStatusWithdrawn, now,
	)
	if err != nil {
		return err
	}

	if err := adjustApplicationCount(ctx, tx, jobPostID, -1); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Reapply restores a WITHDRAWN application to PENDING and increments the counter
func (r *applicationRepo) Reapply(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var jobPostID int64
	var status string
	err = tx.QueryRow(ctx,
		`SELECT job_post_id, status FROM job_applications WHERE id = $1 FOR UPDATE`, id,
	).Scan(&jobPostID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	if status != domain.ApplicationStatusWithdrawn {
		return domain.ErrNotWithdrawn
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `
		UPDATE job_applications SET status = $2, last_status_change = $3, updated_at = $3 WHERE id = $1`,
		id, domain.ApplicationStatusPending, now,
	)
	if err != nil {
		return err
	}

	if err := adjustApplicationCount(ctx, tx, jobPostID, +1); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func adjustApplicationCount(ctx context.Context, tx pgx.Tx, jobPostID int64, delta int) error {
	_, err := tx.Exec(ctx,
		`UPDATE job_posts SET application_count = application_count + $2 WHERE id = $1`,
		jobPostID, delta,
	)
	return err
}
