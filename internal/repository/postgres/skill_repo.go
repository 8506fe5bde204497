package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, name, created_at, updated_at FROM skills ORDER BY name`

	rows, err := r.db.Query(ctx, query)
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

func (r *skillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	query := `SELECT id, name, created_at, updated_at FROM skills WHERE id = $1`

	var skill domain.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(&skill.ID, &skill.Name, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM skills WHERE LOWER(name) = LOWER($1) AND id <> $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	query := `INSERT INTO skills (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id`

	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	return r.db.QueryRow(ctx, query, skill.Name, skill.CreatedAt, skill.UpdatedAt).Scan(&skill.ID)
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET name = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, skill.ID, skill.Name, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM skills WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
