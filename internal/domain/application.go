package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending            = "PENDING"
	ApplicationStatusReviewing          = "REVIEWING"
	ApplicationStatusShortlisted        = "SHORTLISTED"
	ApplicationStatusInterviewScheduled = "INTERVIEW_SCHEDULED"
	ApplicationStatusInterviewed        = "INTERVIEWED"
	ApplicationStatusOffered            = "OFFERED"
	ApplicationStatusRejected           = "REJECTED"
	ApplicationStatusWithdrawn          = "WITHDRAWN"
)

// ActiveApplicationStatuses are the statuses counted toward a job post's
// application_count. OFFERED belongs to neither set: an offer leaves the
// counter untouched in either direction.
var ActiveApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewing,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusInterviewed,
}

var InactiveApplicationStatuses = []string{
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

// UpdatableApplicationStatuses are the statuses an employer may set directly.
// PENDING is entry-only.
var UpdatableApplicationStatuses = []string{
	ApplicationStatusReviewing,
	ApplicationStatusShortlisted,
	ApplicationStatusInterviewScheduled,
	ApplicationStatusInterviewed,
	ApplicationStatusOffered,
	ApplicationStatusRejected,
	ApplicationStatusWithdrawn,
}

func statusIn(status string, set []string) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

// IsActiveApplicationStatus reports whether status counts toward application_count.
func IsActiveApplicationStatus(status string) bool {
	return statusIn(status, ActiveApplicationStatuses)
}

// CounterDelta is the single source of truth for application_count adjustments
// on a status change. Every mutating transition goes through it so the
// denormalized counter cannot drift between call sites.
func CounterDelta(oldStatus, newStatus string) int {
	switch {
	case statusIn(oldStatus, ActiveApplicationStatuses) && statusIn(newStatus, InactiveApplicationStatuses):
		return -1
	case statusIn(oldStatus, InactiveApplicationStatuses) && statusIn(newStatus, ActiveApplicationStatuses):
		return +1
	}
	return 0
}

// JobApplication represents one seeker's candidacy for one job post.
// At most one exists per (job_post_id, job_seeker_id) pair.
type JobApplication struct {
	ID               int64      `json:"id"`
	JobPostID        int64      `json:"job_post_id"`
	JobSeekerID      int64      `json:"job_seeker_id"`
	CoverLetter      *string    `json:"cover_letter,omitempty"`
	Status           string     `json:"status"`
	EmployerNotes    *string    `json:"employer_notes,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	LastStatusChange *time.Time `json:"last_status_change,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Joined data for list responses
	SeekerName     *string `json:"seeker_name,omitempty"`
	SeekerHeadline *string `json:"seeker_headline,omitempty"`
	SeekerResume   *string `json:"seeker_resume_url,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	JobSlug        *string `json:"job_slug,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
}

// ApplicationStatusUpdate carries an employer-side status change.
type ApplicationStatusUpdate struct {
	Status          string
	EmployerNotes   *string
	RejectionReason *string
}

// ApplicationRepository defines data access for applications. Create,
// UpdateStatus, Withdraw and Reapply each run as a single transaction that
// also applies the matching application_count adjustment on the job post.
type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	GetByJobID(ctx context.Context, jobPostID int64) ([]JobApplication, error)
	GetBySeekerID(ctx context.Context, seekerID int64) ([]JobApplication, error)
	Exists(ctx context.Context, jobPostID, seekerID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, upd ApplicationStatusUpdate) (*JobApplication, error)
	Withdraw(ctx context.Context, id int64) error
	Reapply(ctx context.Context, id int64) error
}

// ApplicationUsecase defines business logic for the application lifecycle
type ApplicationUsecase interface {
	Apply(ctx context.Context, jobPostID, seekerID int64, coverLetter string) (*JobApplication, error)
	HasApplied(ctx context.Context, jobPostID, seekerID int64) (bool, error)
	ListByJob(ctx context.Context, jobPostID int64) ([]JobApplication, error)
	ListBySeeker(ctx context.Context, seekerID int64) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, id int64, upd ApplicationStatusUpdate) (*JobApplication, error)
	Withdraw(ctx context.Context, id int64) error
	Reapply(ctx context.Context, id int64) error
}
