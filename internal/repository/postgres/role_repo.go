package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roleRepo struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) domain.RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) Fetch(ctx context.Context) ([]domain.Role, error) {
	query := `SELECT id, name, "desc", status, created_at, updated_at FROM roles ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Desc, &role.Status, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *roleRepo) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	query := `SELECT id, name, "desc", status, created_at, updated_at FROM roles WHERE id = $1`

	var role domain.Role
	err := r.db.QueryRow(ctx, query, id).Scan(
		&role.ID, &role.Name, &role.Desc, &role.Status, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(ctx context.Context, role *domain.Role) error {
	query := `
		INSERT INTO roles (name, "desc", status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now
	if role.Status == "" {
		role.Status = domain.UserStatusActive
	}

	return r.db.QueryRow(ctx, query, role.Name, role.Desc, role.Status, role.CreatedAt, role.UpdatedAt).Scan(&role.ID)
}

func (r *roleRepo) Update(ctx context.Context, role *domain.Role) error {
	query := `UPDATE roles SET name = $2, "desc" = $3, status = $4, updated_at = $5 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, role.ID, role.Name, role.Desc, role.Status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *roleRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM roles WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
