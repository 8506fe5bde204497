package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

// NewEmployerRepository creates a new employer-profile repository
func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `
	p.id, p.user_id, p.company_name, p.company_logo_url, p.tagline, p.about_us, p.website_url,
	p.industry, p.headquarters_location, p.company_size, p.founded_year, p.specialties,
	p.linkedin_url, p.is_verified, p.created_at, p.updated_at,
	u.first_name || ' ' || u.last_name AS user_name,
	u.email`

func scanEmployer(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyLogoURL, &p.Tagline, &p.AboutUs, &p.WebsiteURL,
		&p.Industry, &p.HeadquartersLocation, &p.CompanySize, &p.FoundedYear, &p.Specialties,
		&p.LinkedinURL, &p.IsVerified, &p.CreatedAt, &p.UpdatedAt,
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

func (r *employerRepo) Fetch(ctx context.Context) ([]domain.EmployerProfile, error) {
	query := `
		SELECT ` + employerColumns + `
		FROM employer_profiles p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.company_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.EmployerProfile
	for rows.Next() {
		p, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	query := `
		SELECT ` + employerColumns + `
		FROM employer_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	return scanEmployer(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	query := `
		SELECT ` + employerColumns + `
		FROM employer_profiles p
		JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1`

	return scanEmployer(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (user_id, company_name, company_logo_url, tagline, about_us,
			website_url, industry, headquarters_location, company_size, founded_year, specialties,
			linkedin_url, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.CompanyLogoURL, profile.Tagline, profile.AboutUs,
		profile.WebsiteURL, profile.Industry, profile.HeadquartersLocation, profile.CompanySize,
		profile.FoundedYear, profile.Specialties, profile.LinkedinURL, profile.IsVerified,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
}

func (r *employerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `UPDATE employer_profiles SET
		company_name = $2,
		company_logo_url = $3,
		tagline = $4,
		about_us = $5,
		website_url = $6,
		industry = $7,
		headquarters_location = $8,
		company_size = $9,
		founded_year = $10,
		specialties = $11,
		linkedin_url = $12,
		updated_at = $13
	WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.CompanyLogoURL, profile.Tagline, profile.AboutUs,
		profile.WebsiteURL, profile.Industry, profile.HeadquartersLocation, profile.CompanySize,
		profile.FoundedYear, profile.Specialties, profile.LinkedinURL, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employer_profiles WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employer_profiles`).Scan(&count)
	return count, err
}
