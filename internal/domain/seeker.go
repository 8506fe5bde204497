package domain

import (
	"context"
	"time"
)

// Profile visibility constants
const (
	ProfileVisibilityPublic  = "PUBLIC"
	ProfileVisibilityPrivate = "PRIVATE"
)

// SeekerProfile is a job seeker's public face: headline, history and resume.
// One per user. Resume and picture are stored as URLs, upload handling lives
// outside this service.
type SeekerProfile struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	ProfilePictureURL *string   `json:"profile_picture_url,omitempty"`
	Headline          *string   `json:"headline,omitempty"`
	Summary           *string   `json:"summary,omitempty"`
	Location          *string   `json:"location,omitempty"`
	CurrentPosition   *string   `json:"current_position,omitempty"`
	ExperienceYears   *int      `json:"experience_years,omitempty"`
	ResumeURL         *string   `json:"resume_url,omitempty"`
	ProfileVisibility string    `json:"profile_visibility"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Joined data
	UserName  *string `json:"user_name,omitempty"`
	UserEmail *string `json:"user_email,omitempty"`
}

// SeekerSkillInput is one row of a replace-all skill sync.
type SeekerSkillInput struct {
	SkillID     int64 `json:"id"`
	Proficiency int   `json:"proficiency"`
}

type SeekerRepository interface {
	Fetch(ctx context.Context) ([]SeekerProfile, error)
	GetByID(ctx context.Context, id int64) (*SeekerProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*SeekerProfile, error)
	Create(ctx context.Context, profile *SeekerProfile) error
	Update(ctx context.Context, profile *SeekerProfile) error
	Delete(ctx context.Context, id int64) error

	// Skill attachment (job_seeker_skills join table)
	GetSkills(ctx context.Context, profileID int64) ([]Skill, error)
	GetSkillIDs(ctx context.Context, profileID int64) ([]int64, error)
	SyncSkills(ctx context.Context, profileID int64, skills []SeekerSkillInput) error
	DetachSkill(ctx context.Context, profileID, skillID int64) error
}

// SeekerHomeData backs the seeker landing page.
type SeekerHomeData struct {
	Stats struct {
		ActiveJobs   int64 `json:"active_jobs"`
		TopCompanies int64 `json:"top_companies"`
	} `json:"stats"`
	Categories   []JobCategory `json:"categories"`
	FeaturedJobs []JobPost     `json:"featured_jobs"`
}

type SeekerUsecase interface {
	ListProfiles(ctx context.Context) ([]SeekerProfile, error)
	GetProfile(ctx context.Context, id int64) (*SeekerProfile, error)
	// GetProfileByUser resolves the profile owned by a user account.
	GetProfileByUser(ctx context.Context, userID int64) (*SeekerProfile, error)
	CreateProfile(ctx context.Context, profile *SeekerProfile) error
	UpdateProfile(ctx context.Context, profile *SeekerProfile) error
	DeleteProfile(ctx context.Context, id int64) error

	ListSkills(ctx context.Context, profileID int64) (*SeekerProfile, []Skill, error)
	SyncSkills(ctx context.Context, profileID int64, skills []SeekerSkillInput) ([]Skill, error)
	DetachSkill(ctx context.Context, profileID, skillID int64) error

	HomeData(ctx context.Context) (*SeekerHomeData, error)
}
