package domain

import (
	"context"
	"time"
)

// Education level constants
const (
	EducationCertificate = "CERTIFICATE"
	EducationDiploma     = "DIPLOMA"
	EducationBachelor    = "BACHELOR"
	EducationMaster      = "MASTER"
	EducationPhD         = "PHD"
)

// SeekerEducation is one period of study, year-grained. EndYear nil means
// ongoing; the same single-open-range and no-overlap rules as work experience
// apply, with the year as the unit.
type SeekerEducation struct {
	ID                int64     `json:"id"`
	ProfileID         int64     `json:"job_seeker_profile_id"`
	Institution       string    `json:"institution"`
	QualificationName string    `json:"qualification_name"`
	FieldOfStudy      *string   `json:"field_of_study,omitempty"`
	EducationLevel    string    `json:"education_level"`
	StartYear         int       `json:"start_year"`
	EndYear           *int      `json:"end_year,omitempty"`
	Description       *string   `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Range reduces the record to year-granular comparable units.
func (e *SeekerEducation) Range() Range {
	r := Range{ID: e.ID, Start: int64(e.StartYear)}
	if e.EndYear != nil {
		end := int64(*e.EndYear)
		r.End = &end
	}
	return r
}

// CurrentYear returns the current year in education range units.
func CurrentYear() int64 {
	return int64(time.Now().Year())
}

// EducationRepository persists study history with the same transactional
// range validation as ExperienceRepository.
type EducationRepository interface {
	ListByProfile(ctx context.Context, profileID int64) ([]SeekerEducation, error)
	GetByID(ctx context.Context, id int64) (*SeekerEducation, error)
	Create(ctx context.Context, edu *SeekerEducation) error
	Update(ctx context.Context, edu *SeekerEducation) error
	Delete(ctx context.Context, id int64) error
}

type EducationUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) (*SeekerProfile, []SeekerEducation, error)
	Create(ctx context.Context, edu *SeekerEducation) error
	Update(ctx context.Context, edu *SeekerEducation) error
	Delete(ctx context.Context, id int64) error
}
