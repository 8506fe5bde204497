package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

// NewCategoryRepository creates a new job-category repository
func NewCategoryRepository(db *pgxpool.Pool) domain.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Fetch(ctx context.Context) ([]domain.JobCategory, error) {
	query := `SELECT id, name, "desc", created_at, updated_at FROM job_categories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.JobCategory
	for rows.Next() {
		var c domain.JobCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Desc, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*domain.JobCategory, error) {
	query := `SELECT id, name, "desc", created_at, updated_at FROM job_categories WHERE id = $1`

	var c domain.JobCategory
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Desc, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	query := `
		INSERT INTO job_categories (name, "desc", created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	return r.db.QueryRow(ctx, query, category.Name, category.Desc, category.CreatedAt, category.UpdatedAt).Scan(&category.ID)
}

func (r *categoryRepo) Update(ctx context.Context, category *domain.JobCategory) error {
	query := `UPDATE job_categories SET name = $2, "desc" = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, category.ID, category.Name, category.Desc, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM job_categories WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// TopByOpenJobs returns categories that currently have open posts, busiest first
func (r *categoryRepo) TopByOpenJobs(ctx context.Context, limit int) ([]domain.JobCategory, error) {
	query := `
		SELECT c.id, c.name, c."desc", c.created_at, c.updated_at, COUNT(j.id) AS open_jobs
		FROM job_categories c
		JOIN job_posts j ON j.job_category_id = c.id AND j.status = 'OPEN'
		GROUP BY c.id
		ORDER BY open_jobs DESC, c.name
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.JobCategory
	for rows.Next() {
		var c domain.JobCategory
		var count int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Desc, &c.CreatedAt, &c.UpdatedAt, &count); err != nil {
			return nil, err
		}
		c.OpenJobCount = &count
		categories = append(categories, c)
	}
	return categories, nil
}
