package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobPostRepo struct {
	db *pgxpool.Pool
}

// NewJobPostRepository creates a new job-post repository
func NewJobPostRepository(db *pgxpool.Pool) domain.JobPostRepository {
	return &jobPostRepo{db: db}
}

const jobPostColumns = `
	j.id, j.employer_profile_id, j.job_category_id, j.title, j.slug, j.workplace_type,
	j.location, j.employment_type, j.experience_level, j.description, j.responsibilities,
	j.qualifications, j.salary_min, j.salary_max, j.currency, j.salary_visible, j.status,
	j.expires_at, j.application_count, j.created_at, j.updated_at,
	e.company_name, e.company_logo_url, c.name AS category_name`

func scanJobPost(row pgx.Row) (*domain.JobPost, error) {
	var j domain.JobPost
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.CategoryID, &j.Title, &j.Slug, &j.WorkplaceType,
		&j.Location, &j.EmploymentType, &j.ExperienceLevel, &j.Description, &j.Responsibilities,
		&j.Qualifications, &j.SalaryMin, &j.SalaryMax, &j.Currency, &j.SalaryVisible, &j.Status,
		&j.ExpiresAt, &j.ApplicationCount, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.CompanyLogoURL, &j.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

// Create inserts the post and its skill set in one transaction. The slug is
// finalized as "<slug>-<id>" once the id is known, which keeps it unique
// without a retry loop.
func (r *jobPostRepo) Create(ctx context.Context, post *domain.JobPost, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	err = tx.QueryRow(ctx, `
		INSERT INTO job_posts (employer_profile_id, job_category_id, title, slug, workplace_type,
			location, employment_type, experience_level, description, responsibilities,
			qualifications, salary_min, salary_max, currency, salary_visible, status,
			expires_at, application_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 0, $18, $19)
		RETURNING id`,
		post.EmployerID, post.CategoryID, post.Title, post.Slug, post.WorkplaceType,
		post.Location, post.EmploymentType, post.ExperienceLevel, post.Description, post.Responsibilities,
		post.Qualifications, post.SalaryMin, post.SalaryMax, post.Currency, post.SalaryVisible, post.Status,
		post.ExpiresAt, post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return err
	}

	post.Slug = fmt.Sprintf("%s-%d", post.Slug, post.ID)
	if _, err := tx.Exec(ctx, `UPDATE job_posts SET slug = $2 WHERE id = $1`, post.ID, post.Slug); err != nil {
		return err
	}

	if err := insertJobSkills(ctx, tx, post.ID, skillIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts j
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_categories c ON j.job_category_id = c.id
		WHERE j.id = $1`

	post, err := scanJobPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if post.Skills, err = r.fetchSkills(ctx, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

// GetOpenBySlug serves the public detail page; anything not OPEN reads as absent
func (r *jobPostRepo) GetOpenBySlug(ctx context.Context, slug string) (*domain.JobPost, error) {
	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts j
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_categories c ON j.job_category_id = c.id
		WHERE j.slug = $1 AND j.status = 'OPEN'`

	post, err := scanJobPost(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		return nil, err
	}
	if post.Skills, err = r.fetchSkills(ctx, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

func (r *jobPostRepo) FetchOpen(ctx context.Context) ([]domain.JobPost, error) {
	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts j
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_categories c ON j.job_category_id = c.id
		WHERE j.status = 'OPEN'
		ORDER BY j.created_at DESC`

	return r.fetch(ctx, query)
}

func (r *jobPostRepo) FetchOpenLatest(ctx context.Context, limit int) ([]domain.JobPost, error) {
	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts j
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_categories c ON j.job_category_id = c.id
		WHERE j.status = 'OPEN'
		ORDER BY j.created_at DESC
		LIMIT $1`

	return r.fetch(ctx, query, limit)
}

func (r *jobPostRepo) FetchByEmployer(ctx context.Context, employerProfileID int64) ([]domain.JobPost, error) {
	query := `
		SELECT ` + jobPostColumns + `
		FROM job_posts j
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN job_categories c ON j.job_category_id = c.id
		WHERE j.employer_profile_id = $1
		ORDER BY j.created_at DESC`

	return r.fetch(ctx, query, employerProfileID)
}

func (r *jobPostRepo) fetch(ctx context.Context, query string, args ...any) ([]domain.JobPost, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.JobPost
	for rows.Next() {
		p, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, nil
}

// Update rewrites the editable columns and replaces the skill set in one
// transaction. Slug, status and application_count stay untouched.
func (r *jobPostRepo) Update(ctx context.Context, post *domain.JobPost, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE job_posts SET
			job_category_id = $2,
			title = $3,
			workplace_type = $4,
			location = $5,
			employment_type = $6,
			experience_level = $7,
			description = $8,
			responsibilities = $9,
			qualifications = $10,
			salary_min = $11,
			salary_max = $12,
			currency = $13,
			expires_at = $14,
			updated_at = $15
		WHERE id = $1`,
		post.ID, post.CategoryID, post.Title, post.WorkplaceType, post.Location,
		post.EmploymentType, post.ExperienceLevel, post.Description, post.Responsibilities,
		post.Qualifications, post.SalaryMin, post.SalaryMax, post.Currency, post.ExpiresAt,
		time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM job_post_skills WHERE job_post_id = $1`, post.ID); err != nil {
		return err
	}
	if err := insertJobSkills(ctx, tx, post.ID, skillIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobPostRepo) SetStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE job_posts SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobPostRepo) SetSalaryVisible(ctx context.Context, id int64, visible bool) error {
	query := `UPDATE job_posts SET salary_visible = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, visible, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobPostRepo) GetSkillIDs(ctx context.Context, id int64) ([]int64, error) {
	query := `SELECT skill_id FROM job_post_skills WHERE job_post_id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var skillID int64
		if err := rows.Scan(&skillID); err != nil {
			return nil, err
		}
		ids = append(ids, skillID)
	}
	return ids, nil
}

func (r *jobPostRepo) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_posts WHERE status = 'OPEN'`).Scan(&count)
	return count, err
}

func (r *jobPostRepo) CountByEmployerStatus(ctx context.Context, employerProfileID int64, status string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_posts WHERE employer_profile_id = $1 AND status = $2`,
		employerProfileID, status,
	).Scan(&count)
	return count, err
}

func (r *jobPostRepo) SumApplicationsByEmployer(ctx context.Context, employerProfileID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(application_count), 0) FROM job_posts WHERE employer_profile_id = $1`,
		employerProfileID,
	).Scan(&total)
	return total, err
}

func (r *jobPostRepo) fetchSkills(ctx context.Context, postID int64) ([]domain.Skill, error) {
	query := `
		SELECT s.id, s.name, s.created_at, s.updated_at
		FROM skills s
		JOIN job_post_skills js ON js.skill_id = s.id
		WHERE js.job_post_id = $1
		ORDER BY s.name`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var skill domain.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.CreatedAt, &skill.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func insertJobSkills(ctx context.Context, tx pgx.Tx, postID int64, skillIDs []int64) error {
	for _, skillID := range skillIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_post_skills (job_post_id, skill_id) VALUES ($1, $2)`,
			postID, skillID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
