package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new work-experience repository
func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `id, job_seeker_profile_id, job_title, company_name, location, employment_type,
	start_date, end_date, description, created_at, updated_at`

func scanExperience(row pgx.Row) (*domain.SeekerExperience, error) {
	var e domain.SeekerExperience
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.JobTitle, &e.CompanyName, &e.Location, &e.EmploymentType,
		&e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.SeekerExperience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM job_seeker_experiences
		WHERE job_seeker_profile_id = $1
		ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []domain.SeekerExperience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, nil
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerExperience, error) {
	query := `SELECT ` + experienceColumns + ` FROM job_seeker_experiences WHERE id = $1`
	return scanExperience(r.db.QueryRow(ctx, query, id))
}

// Create inserts a record after validating its period against the owner's
// others inside the same transaction. The profile row is locked first so two
// concurrent submissions for the same owner serialize instead of both passing
// the check.
func (r *experienceRepo) Create(ctx context.Context, exp *domain.SeekerExperience) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := checkExperienceRange(ctx, tx, exp); err != nil {
		return err
	}

	now := time.Now()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	err = tx.QueryRow(ctx, `
		INSERT INTO job_seeker_experiences (job_seeker_profile_id, job_title, company_name, location,
			employment_type, start_date, end_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		exp.ProfileID, exp.JobTitle, exp.CompanyName, exp.Location,
		exp.EmploymentType, exp.StartDate, exp.EndDate, exp.Description,
		exp.CreatedAt, exp.UpdatedAt,
	).Scan(&exp.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites a record with the same transactional range validation,
// excluding the record itself from the comparison set.
func (r *experienceRepo) Update(ctx context.Context, exp *domain.SeekerExperience) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := checkExperienceRange(ctx, tx, exp); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE job_seeker_experiences SET
			job_title = $2,
			company_name = $3,
			location = $4,
			employment_type = $5,
			start_date = $6,
			end_date = $7,
			description = $8,
			updated_at = $9
		WHERE id = $1`,
		exp.ID, exp.JobTitle, exp.CompanyName, exp.Location,
		exp.EmploymentType, exp.StartDate, exp.EndDate, exp.Description,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_seeker_experiences WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func checkExperienceRange(ctx context.Context, tx pgx.Tx, exp *domain.SeekerExperience) error {
	var lockedID int64
	err := tx.QueryRow(ctx,
		`SELECT id FROM job_seeker_profiles WHERE id = $1 FOR UPDATE`,
		exp.ProfileID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, start_date, end_date FROM job_seeker_experiences WHERE job_seeker_profile_id = $1`,
		exp.ProfileID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var existing []domain.Range
	for rows.Next() {
		var id int64
		var start time.Time
		var end *time.Time
		if err := rows.Scan(&id, &start, &end); err != nil {
			return err
		}
		e := domain.SeekerExperience{ID: id, StartDate: start, EndDate: end}
		existing = append(existing, e.Range())
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return domain.CheckRange(existing, exp.Range(), domain.Today())
}
