package domain

import (
	"context"
	"time"
)

// Interview status constants
const (
	InterviewStatusScheduled   = "SCHEDULED"
	InterviewStatusCompleted   = "COMPLETED"
	InterviewStatusCancelled   = "CANCELLED"
	InterviewStatusRescheduled = "RESCHEDULED"
)

// Interview medium constants
const (
	InterviewTypeOnline   = "ONLINE"
	InterviewTypeInPerson = "IN-PERSON"
	InterviewTypePhone    = "PHONE"
)

// InterviewOutcomeStatus maps an interview status to the application status it
// forces on the parent application. The coupling between the two state
// machines lives here and nowhere else: COMPLETED pushes the application to
// INTERVIEWED, CANCELLED drops it back to SHORTLISTED, the rest leave it alone.
func InterviewOutcomeStatus(interviewStatus string) (string, bool) {
	switch interviewStatus {
	case InterviewStatusCompleted:
		return ApplicationStatusInterviewed, true
	case InterviewStatusCancelled:
		return ApplicationStatusShortlisted, true
	}
	return "", false
}

// InterviewSchedule is the single interview record of a job application.
// Scheduling again for the same application replaces it in place.
type InterviewSchedule struct {
	ID               int64     `json:"id"`
	JobApplicationID int64     `json:"job_application_id"`
	Title            string    `json:"title"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	LocationURL      string    `json:"location_url"`
	Type             string    `json:"type"`
	InterviewStatus  string    `json:"interview_status"`
	Feedback         *string   `json:"feedback,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Joined data for seeker-facing lists
	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	SeekerName  *string `json:"seeker_name,omitempty"`
}

// InterviewStatusUpdate carries an interview status change with optional feedback.
type InterviewStatusUpdate struct {
	InterviewStatus string
	Feedback        *string
}

// InterviewRepository defines data access for interview schedules. Upsert and
// UpdateStatus run as single transactions that also apply the forced
// application-status side effects.
type InterviewRepository interface {
	Upsert(ctx context.Context, iv *InterviewSchedule) error
	GetByID(ctx context.Context, id int64) (*InterviewSchedule, error)
	GetByApplicationID(ctx context.Context, applicationID int64) ([]InterviewSchedule, error)
	GetForSeeker(ctx context.Context, seekerID int64) ([]InterviewSchedule, error)
	GetUpcomingForEmployer(ctx context.Context, employerProfileID int64, limit int) ([]InterviewSchedule, error)
	UpdateStatus(ctx context.Context, id int64, upd InterviewStatusUpdate) (*InterviewSchedule, error)
}

// InterviewUsecase defines business logic for interview coordination
type InterviewUsecase interface {
	Schedule(ctx context.Context, iv *InterviewSchedule) (*InterviewSchedule, error)
	UpdateStatus(ctx context.Context, id int64, upd InterviewStatusUpdate) (*InterviewSchedule, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]InterviewSchedule, error)
	ListForSeeker(ctx context.Context, seekerID int64) ([]InterviewSchedule, error)
}
