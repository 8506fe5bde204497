package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerRepo struct {
	db *pgxpool.Pool
}

// NewSeekerRepository creates a new seeker-profile repository
func NewSeekerRepository(db *pgxpool.Pool) domain.SeekerRepository {
	return &seekerRepo{db: db}
}

const seekerColumns = `
	p.id, p.user_id, p.profile_picture_url, p.headline, p.summary, p.location,
	p.current_position, p.experience_years, p.resume_url, p.profile_visibility,
	p.created_at, p.updated_at,
	u.first_name || ' ' || u.last_name AS user_name,
	u.email`

func scanSeeker(row pgx.Row) (*domain.SeekerProfile, error) {
	var p domain.SeekerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.ProfilePictureURL, &p.Headline, &p.Summary, &p.Location,
		&p.CurrentPosition, &p.ExperienceYears, &p.ResumeURL, &p.ProfileVisibility,
		&p.CreatedAt, &p.UpdatedAt,
		&p.UserName, &p.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Fetch returns profiles of ACTIVE users, newest first
func (r *seekerRepo) Fetch(ctx context.Context) ([]domain.SeekerProfile, error) {
	query := `
		SELECT ` + seekerColumns + `
		FROM job_seeker_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE u.status = 'ACTIVE'
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.SeekerProfile
	for rows.Next() {
		p, err := scanSeeker(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (r *seekerRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	query := `
		SELECT ` + seekerColumns + `
		FROM job_seeker_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	return scanSeeker(r.db.QueryRow(ctx, query, id))
}

func (r *seekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SeekerProfile, error) {
	query := `
		SELECT ` + seekerColumns + `
		FROM job_seeker_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`

	return scanSeeker(r.db.QueryRow(ctx, query, userID))
}

func (r *seekerRepo) Create(ctx context.Context, profile *domain.SeekerProfile) error {
	query := `
		INSERT INTO job_seeker_profiles (user_id, profile_picture_url, headline, summary, location,
			current_position, experience_years, resume_url, profile_visibility, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.ProfilePictureURL, profile.Headline, profile.Summary, profile.Location,
		profile.CurrentPosition, profile.ExperienceYears, profile.ResumeURL, profile.ProfileVisibility,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *seekerRepo) Update(ctx context.Context, profile *domain.SeekerProfile) error {
	query := `UPDATE job_seeker_profiles SET
		profile_picture_url = $2,
		headline = $3,
		summary = $4,
		location = $5,
		current_position = $6,
		experience_years = $7,
		resume_url = $8,
		profile_visibility = $9,
		updated_at = $10
	WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.ProfilePictureURL, profile.Headline, profile.Summary, profile.Location,
		profile.CurrentPosition, profile.ExperienceYears, profile.ResumeURL, profile.ProfileVisibility,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *seekerRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_seeker_profiles WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *seekerRepo) GetSkills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.name, s.created_at, s.updated_at, js.proficiency
		FROM skills s
		JOIN job_seeker_skills js ON js.skill_id = s.id
		WHERE js.job_seeker_profile_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.CreatedAt, &skill.UpdatedAt, &skill.Proficiency); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func (r *seekerRepo) GetSkillIDs(ctx context.Context, profileID int64) ([]int64, error) {
	query := `SELECT skill_id FROM job_seeker_skills WHERE job_seeker_profile_id = $1`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SyncSkills replaces the profile's skill set in one transaction: clear, then
// reinsert the given rows.
func (r *seekerRepo) SyncSkills(ctx context.Context, profileID int64, skills []domain.SeekerSkillInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM job_seeker_skills WHERE job_seeker_profile_id = $1`, profileID); err != nil {
		return err
	}

	now := time.Now()
	for _, s := range skills {
		_, err := tx.Exec(ctx, `
			INSERT INTO job_seeker_skills (job_seeker_profile_id, skill_id, proficiency, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)`,
			profileID, s.SkillID, s.Proficiency, now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *seekerRepo) DetachSkill(ctx context.Context, profileID, skillID int64) error {
	query := `DELETE FROM job_seeker_skills WHERE job_seeker_profile_id = $1 AND skill_id = $2`
	result, err := r.db.Exec(ctx, query, profileID, skillID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
