package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `
	u.id, u.role_id, u.first_name, u.last_name, u.email, u.phone, u.password, u.status, u.created_at, u.updated_at,
	r.id, r.name, r."desc", r.status, r.created_at, r.updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var role domain.Role
	err := row.Scan(
		&user.ID, &user.RoleID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Password, &user.Status, &user.CreatedAt, &user.UpdatedAt,
		&role.ID, &role.Name, &role.Desc, &role.Status, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	user.Role = &role
	return &user, nil
}

func (r *userRepo) Fetch(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON u.role_id = r.id
		ORDER BY u.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.id = $1`

	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		JOIN roles r ON u.role_id = r.id
		WHERE u.email = $1`

	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (role_id, first_name, last_name, email, phone, password, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Status == "" {
		user.Status = domain.UserStatusActive
	}

	return r.db.QueryRow(ctx, query,
		user.RoleID, user.FirstName, user.LastName, user.Email, user.Phone,
		user.Password, user.Status, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET
		role_id = $2,
		first_name = $3,
		last_name = $4,
		email = $5,
		phone = $6,
		password = $7,
		updated_at = $8
	WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		user.ID, user.RoleID, user.FirstName, user.LastName, user.Email, user.Phone,
		user.Password, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
