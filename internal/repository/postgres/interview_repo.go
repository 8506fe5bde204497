package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview-schedule repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

const interviewColumns = `
	iv.id, iv.job_application_id, iv.title, iv.scheduled_at, iv.location_url,
	iv.type, iv.interview_status, iv.feedback, iv.created_at, iv.updated_at`

const interviewJoins = `
	j.title AS job_title, e.company_name,
	u.first_name || ' ' || u.last_name AS seeker_name`

func scanInterview(row pgx.Row, withJoins bool) (*domain.InterviewSchedule, error) {
	var iv domain.InterviewSchedule
	dest := []any{
		&iv.ID, &iv.JobApplicationID, &iv.Title, &iv.ScheduledAt, &iv.LocationURL,
		&iv.Type, &iv.InterviewStatus, &iv.Feedback, &iv.CreatedAt, &iv.UpdatedAt,
	}
	if withJoins {
		dest = append(dest, &iv.JobTitle, &iv.CompanyName, &iv.SeekerName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}

// Upsert writes the single interview record of an application: scheduling
// again replaces the row in place. The same transaction forces the parent
// application to INTERVIEW_SCHEDULED whatever its current status; the post's
// application_count is not touched.
func (r *interviewRepo) Upsert(ctx context.Context, iv *domain.InterviewSchedule) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	iv.UpdatedAt = now

	err = tx.QueryRow(ctx, `
		INSERT INTO interview_schedules (job_application_id, title, scheduled_at, location_url,
			type, interview_status, feedback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, $7, $7)
		ON CONFLICT (job_application_id) DO UPDATE SET
			title = EXCLUDED.title,
			scheduled_at = EXCLUDED.scheduled_at,
			location_url = EXCLUDED.location_url,
			type = EXCLUDED.type,
			interview_status = EXCLUDED.interview_status,
			feedback = NULL,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`,
		iv.JobApplicationID, iv.Title, iv.ScheduledAt, iv.LocationURL,
		iv.Type, iv.InterviewStatus, now,
	).Scan(&iv.ID, &iv.CreatedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE job_applications SET status = $2, last_status_change = $3, updated_at = $3 WHERE id = $1`,
		iv.JobApplicationID, domain.ApplicationStatusInterviewScheduled, now,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *interviewRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewSchedule, error) {
	query := `
		SELECT ` + interviewColumns + `, ` + interviewJoins + `
		FROM interview_schedules iv
		JOIN job_applications a ON iv.job_application_id = a.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE iv.id = $1`

	return scanInterview(r.db.QueryRow(ctx, query, id), true)
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.InterviewSchedule, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interview_schedules iv
		WHERE iv.job_application_id = $1
		ORDER BY iv.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.InterviewSchedule
	for rows.Next() {
		iv, err := scanInterview(rows, false)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

func (r *interviewRepo) GetForSeeker(ctx context.Context, seekerID int64) ([]domain.InterviewSchedule, error) {
	query := `
		SELECT ` + interviewColumns + `, ` + interviewJoins + `
		FROM interview_schedules iv
		JOIN job_applications a ON iv.job_application_id = a.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE a.job_seeker_profile_id = $1
		ORDER BY iv.scheduled_at`

	return r.fetchJoined(ctx, query, seekerID)
}

func (r *interviewRepo) GetUpcomingForEmployer(ctx context.Context, employerProfileID int64, limit int) ([]domain.InterviewSchedule, error) {
	query := `
		SELECT ` + interviewColumns + `, ` + interviewJoins + `
		FROM interview_schedules iv
		JOIN job_applications a ON iv.job_application_id = a.id
		JOIN job_posts j ON a.job_post_id = j.id
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_seeker_profiles sp ON a.job_seeker_profile_id = sp.id
		JOIN users u ON sp.user_id = u.id
		WHERE j.employer_profile_id = $1
			AND iv.interview_status = 'SCHEDULED'
			AND iv.scheduled_at >= NOW()
		ORDER BY iv.scheduled_at
		LIMIT $2`

	return r.fetchJoined(ctx, query, employerProfileID, limit)
}

func (r *interviewRepo) fetchJoined(ctx context.Context, query string, args ...any) ([]domain.InterviewSchedule, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []domain.InterviewSchedule
	for rows.Next() {
		iv, err := scanInterview(rows, true)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, *iv)
	}
	return interviews, nil
}

// UpdateStatus records an interview outcome in one transaction. Feedback
// mirrors the request as-is, so an omitted field clears the stored value;
// when present it also overwrites the application's employer notes. COMPLETED
// and CANCELLED additionally force the application status per
// domain.InterviewOutcomeStatus. The post counter is left alone in all cases.
func (r *interviewRepo) UpdateStatus(ctx context.Context, id int64, upd domain.InterviewStatusUpdate) (*domain.InterviewSchedule, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var applicationID int64
	err = tx.QueryRow(ctx,
		`SELECT job_application_id FROM interview_schedules WHERE id = $1 FOR UPDATE`, id,
	).Scan(&applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	_, err = tx.Exec(ctx, `
		UPDATE interview_schedules SET
			interview_status = $2,
			feedback = $3,
			updated_at = $4
		WHERE id = $1`,
		id, upd.InterviewStatus, upd.Feedback, now,
	)
	if err != nil {
		return nil, err
	}

	if upd.Feedback != nil {
		_, err = tx.Exec(ctx,
			`UPDATE job_applications SET employer_notes = $2, updated_at = $3 WHERE id = $1`,
			applicationID, upd.Feedback, now,
		)
		if err != nil {
			return nil, err
		}
	}

	if appStatus, ok := domain.InterviewOutcomeStatus(upd.InterviewStatus); ok {
		_, err = tx.Exec(ctx, `
			UPDATE job_applications SET status = $2, last_status_change = $3, updated_at = $3 WHERE id = $1`,
			applicationID, appStatus, now,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
