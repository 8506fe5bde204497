package domain

import (
	"context"
	"time"
)

type EmployerProfile struct {
	ID                   int64     `json:"id"`
	UserID               int64     `json:"user_id"`
	CompanyName          string    `json:"company_name"`
	CompanyLogoURL       *string   `json:"company_logo_url,omitempty"`
	Tagline              *string   `json:"tagline,omitempty"`
	AboutUs              *string   `json:"about_us,omitempty"`
	WebsiteURL           *string   `json:"website_url,omitempty"`
	Industry             *string   `json:"industry,omitempty"`
	HeadquartersLocation *string   `json:"headquarters_location,omitempty"`
	CompanySize          *string   `json:"company_size,omitempty"`
	FoundedYear          *int      `json:"founded_year,omitempty"`
	Specialties          *string   `json:"specialties,omitempty"`
	LinkedinURL          *string   `json:"linkedin_url,omitempty"`
	IsVerified           bool      `json:"is_verified"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Joined data
	UserName  *string `json:"user_name,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
}

type EmployerRepository interface {
	Fetch(ctx context.Context) ([]EmployerProfile, error)
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
	Create(ctx context.Context, profile *EmployerProfile) error
	Update(ctx context.Context, profile *EmployerProfile) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// EmployerHomeData backs the employer landing page.
type EmployerHomeData struct {
	Profile *EmployerProfile `json:"profile"`
	Stats   struct {
		OpenPosts         int64 `json:"open_posts"`
		ClosedPosts       int64 `json:"closed_posts"`
		TotalApplications int64 `json:"total_applications"`
	} `json:"stats"`
	UpcomingInterviews []InterviewSchedule `json:"upcoming_interviews"`
}

type EmployerUsecase interface {
	ListProfiles(ctx context.Context) ([]EmployerProfile, error)
	GetProfile(ctx context.Context, id int64) (*EmployerProfile, error)
	CreateProfile(ctx context.Context, profile *EmployerProfile) error
	UpdateProfile(ctx context.Context, profile *EmployerProfile) error
	DeleteProfile(ctx context.Context, id int64) error
	HomeData(ctx context.Context, id int64) (*EmployerHomeData, error)
}
