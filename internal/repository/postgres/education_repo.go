package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{db: db}
}

const educationColumns = `id, job_seeker_profile_id, institution, qualification_name, field_of_study,
	education_level, start_year, end_year, description, created_at, updated_at`

func scanEducation(row pgx.Row) (*domain.SeekerEducation, error) {
	var e domain.SeekerEducation
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.QualificationName, &e.FieldOfStudy,
		&e.EducationLevel, &e.StartYear, &e.EndYear, &e.Description, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *educationRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.SeekerEducation, error) {
	query := `
		SELECT ` + educationColumns + `
		FROM job_seeker_educations
		WHERE job_seeker_profile_id = $1
		ORDER BY start_year DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var educations []domain.SeekerEducation
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		educations = append(educations, *e)
	}
	return educations, nil
}

func (r *educationRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerEducation, error) {
	query := `SELECT ` + educationColumns + ` FROM job_seeker_educations WHERE id = $1`
	return scanEducation(r.db.QueryRow(ctx, query, id))
}

// Create validates the year range against the owner's other records under the
// same profile-row lock as work experience, then inserts.
func (r *educationRepo) Create(ctx context.Context, edu *domain.SeekerEducation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := checkEducationRange(ctx, tx, edu); err != nil {
		return err
	}

	now := time.Now()
	edu.CreatedAt = now
	edu.UpdatedAt = now

	err = tx.QueryRow(ctx, `
		INSERT INTO job_seeker_educations (job_seeker_profile_id, institution, qualification_name,
			field_of_study, education_level, start_year, end_year, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		edu.ProfileID, edu.Institution, edu.QualificationName,
		edu.FieldOfStudy, edu.EducationLevel, edu.StartYear, edu.EndYear, edu.Description,
		edu.CreatedAt, edu.UpdatedAt,
	).Scan(&edu.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *educationRepo) Update(ctx context.Context, edu *domain.SeekerEducation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := checkEducationRange(ctx, tx, edu); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE job_seeker_educations SET
			institution = $2,
			qualification_name = $3,
			field_of_study = $4,
			education_level = $5,
			start_year = $6,
			end_year = $7,
			description = $8,
			updated_at = $9
		WHERE id = $1`,
		edu.ID, edu.Institution, edu.QualificationName, edu.FieldOfStudy,
		edu.EducationLevel, edu.StartYear, edu.EndYear, edu.Description,
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

func (r *educationRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_seeker_educations WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func checkEducationRange(ctx context.Context, tx pgx.Tx, edu *domain.SeekerEducation) error {
	var lockedID int64
	err := tx.QueryRow(ctx,
		`SELECT id FROM job_seeker_profiles WHERE id = $1 FOR UPDATE`,
		edu.ProfileID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, start_year, end_year FROM job_seeker_educations WHERE job_seeker_profile_id = $1`,
		edu.ProfileID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var existing []domain.Range
	for rows.Next() {
		var id int64
		var start int
		var end *int
		if err := rows.Scan(&id, &start, &end); err != nil {
			return err
		}
		e := domain.SeekerEducation{ID: id, StartYear: start, EndYear: end}
		existing = append(existing, e.Range())
	}
	if err := rows.Err(); err != nil {
		return err
	}

	return domain.CheckRange(existing, edu.Range(), domain.CurrentYear())
}
