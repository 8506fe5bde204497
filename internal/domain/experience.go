package domain

import (
	"context"
	"time"
)

// Employment type constants for experience records
const (
	ExperienceFullTime = "FULL-TIME"
	ExperiencePartTime = "PART-TIME"
)

// SeekerExperience is one period of work history. EndDate nil means the role
// is ongoing; per owner at most one record may be ongoing and no two periods
// may overlap.
type SeekerExperience struct {
	ID             int64      `json:"id"`
	ProfileID      int64      `json:"job_seeker_profile_id"`
	JobTitle       string     `json:"job_title"`
	CompanyName    string     `json:"company_name"`
	Location       *string    `json:"location,omitempty"`
	EmploymentType string     `json:"employment_type"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Description    *string    `json:"description,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Range reduces the record to day-granular comparable units.
func (e *SeekerExperience) Range() Range {
	r := Range{ID: e.ID, Start: dayUnit(e.StartDate)}
	if e.EndDate != nil {
		end := dayUnit(*e.EndDate)
		r.End = &end
	}
	return r
}

func dayUnit(t time.Time) int64 {
	return t.Unix() / 86400
}

// Today returns the current day in experience range units.
func Today() int64 {
	return dayUnit(time.Now())
}

// ExperienceRepository persists work history. Create and Update validate the
// candidate range against the owner's other records inside the same
// transaction, holding a lock on the profile row so concurrent submissions
// serialize.
type ExperienceRepository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]SeekerExperience, error)
	GetByID(ctx context.Context, id int64) (*SeekerExperience, error)
	Create(ctx context.Context, exp *SeekerExperience) error
	Update(ctx context.Context, exp *SeekerExperience) error
	Delete(ctx context.Context, id int64) error
}

type ExperienceUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) (*SeekerProfile, []SeekerExperience, error)
	Create(ctx context.Context, exp *SeekerExperience) error
	Update(ctx context.Context, exp *SeekerExperience) error
	Delete(ctx context.Context, id int64) error
}
