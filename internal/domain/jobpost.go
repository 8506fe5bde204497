package domain

import (
	"context"
	"time"
)

// Job post status constants
const (
	JobPostStatusOpen     = "OPEN"
	JobPostStatusClosed   = "CLOSED"
	JobPostStatusArchived = "ARCHIVED"
)

// Workplace type constants
const (
	WorkplaceOnSite = "ON-SITE"
	WorkplaceRemote = "REMOTE"
	WorkplaceHybrid = "HYBRID"
)

type JobPost struct {
	ID               int64      `json:"id"`
	EmployerID       int64      `json:"employer_profile_id"`
	CategoryID       int64      `json:"job_category_id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	WorkplaceType    string     `json:"workplace_type"`
	Location         string     `json:"location"`
	EmploymentType   string     `json:"employment_type"`
	ExperienceLevel  string     `json:"experience_level"`
	Description      string     `json:"description"`
	Responsibilities *string    `json:"responsibilities,omitempty"`
	Qualifications   *string    `json:"qualifications,omitempty"`
	SalaryMin        *float64   `json:"salary_min,omitempty"`
	SalaryMax        *float64   `json:"salary_max,omitempty"`
	Currency         string     `json:"currency"`
	SalaryVisible    bool       `json:"salary_visible"`
	Status           string     `json:"status"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	ApplicationCount int        `json:"application_count"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Joined data
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyLogoURL *string `json:"company_logo_url,omitempty"`
	CategoryName   *string `json:"category_name,omitempty"`
	Skills         []Skill `json:"skills,omitempty"`
}

type JobPostRepository interface {
	// Create inserts the post and its skill set, finalizing the slug with the
	// generated id, in one transaction.
	Create(ctx context.Context, post *JobPost, skillIDs []int64) error
	GetByID(ctx context.Context, id int64) (*JobPost, error)
	// GetOpenBySlug returns an OPEN post by slug with employer, category and
	// skills joined, ErrNotFound otherwise.
	GetOpenBySlug(ctx context.Context, slug string) (*JobPost, error)
	FetchOpen(ctx context.Context) ([]JobPost, error)
	FetchOpenLatest(ctx context.Context, limit int) ([]JobPost, error)
	FetchByEmployer(ctx context.Context, employerProfileID int64) ([]JobPost, error)
	Update(ctx context.Context, post *JobPost, skillIDs []int64) error
	SetStatus(ctx context.Context, id int64, status string) error
	SetSalaryVisible(ctx context.Context, id int64, visible bool) error
	GetSkillIDs(ctx context.Context, id int64) ([]int64, error)
	CountOpen(ctx context.Context) (int64, error)
	CountByEmployerStatus(ctx context.Context, employerProfileID int64, status string) (int64, error)
	SumApplicationsByEmployer(ctx context.Context, employerProfileID int64) (int64, error)
}

type JobPostUsecase interface {
	CreatePost(ctx context.Context, post *JobPost, skillIDs []int64) (*JobPost, error)
	GetPost(ctx context.Context, id int64) (*JobPost, error)
	GetOpenPostBySlug(ctx context.Context, slug string) (*JobPost, error)
	ListOpenPosts(ctx context.Context) ([]JobPost, error)
	ListByEmployer(ctx context.Context, employerProfileID int64) (*EmployerProfile, []JobPost, error)
	UpdatePost(ctx context.Context, post *JobPost, skillIDs []int64) (*JobPost, error)
	// ArchivePost soft-removes the post (status ARCHIVED); RestorePost reopens it.
	ArchivePost(ctx context.Context, id int64) error
	RestorePost(ctx context.Context, id int64) error
	// ToggleVisibility flips OPEN<->CLOSED. Archived posts cannot be toggled.
	ToggleVisibility(ctx context.Context, id int64) (string, error)
	ToggleSalaryVisibility(ctx context.Context, id int64) (bool, error)
}
