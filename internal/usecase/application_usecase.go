package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobPostRepo     domain.JobPostRepository
	seekerRepo      domain.SeekerRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobPostRepo domain.JobPostRepository,
	seekerRepo domain.SeekerRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobPostRepo:     jobPostRepo,
		seekerRepo:      seekerRepo,
	}
}

// Apply submits a seeker's application for an open job post.
// Preconditions: the post is OPEN, the seeker has a resume attached, and when
// the post declares skills the seeker's skill set intersects them.
func (uc *applicationUsecase) Apply(ctx context.Context, jobPostID, seekerID int64, coverLetter string) (*domain.JobApplication, error) {
	// 1. Job post must exist
	job, err := uc.jobPostRepo.GetByID(ctx, jobPostID)
	if err != nil {
		return nil, apperror.NotFound("Job post not found")
	}

	// 2. Seeker profile must exist and carry a resume
	seeker, err := uc.seekerRepo.GetByID(ctx, seekerID)
	if err != nil {
		return nil, apperror.NotFound("Seeker profile not found")
	}
	if seeker.ResumeURL == nil || *seeker.ResumeURL == "" {
		return nil, apperror.Forbidden("Your profile must have a resume before applying.")
	}

	// 3. Skill eligibility: at least one of the post's skills must be on the profile
	jobSkillIDs, err := uc.jobPostRepo.GetSkillIDs(ctx, jobPostID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(jobSkillIDs) > 0 {
		seekerSkillIDs, err := uc.seekerRepo.GetSkillIDs(ctx, seekerID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if !intersects(jobSkillIDs, seekerSkillIDs) {
			return nil, apperror.Forbidden("You do not have the required skills in your profile to apply for this role.")
		}
	}

	// 4. Post must still accept applications
	if job.Status != domain.JobPostStatusOpen {
		return nil, apperror.BadRequest("This vacancy is no longer accepting applications.")
	}

	// 5. One application per (post, seeker) pair
	exists, err := uc.applicationRepo.Exists(ctx, jobPostID, seekerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	// 6. Create in PENDING; the repository increments application_count in the
	// same transaction, with the unique index as backstop for races.
	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.JobApplication{
		JobPostID:   jobPostID,
		JobSeekerID: seekerID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// HasApplied reports whether the seeker already applied to the post
func (uc *applicationUsecase) HasApplied(ctx context.Context, jobPostID, seekerID int64) (bool, error) {
	applied, err := uc.applicationRepo.Exists(ctx, jobPostID, seekerID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return applied, nil
}

// ListByJob returns the application pipeline for a job post, newest first
func (uc *applicationUsecase) ListByJob(ctx context.Context, jobPostID int64) ([]domain.JobApplication, error) {
	return uc.applicationRepo.GetByJobID(ctx, jobPostID)
}

// ListBySeeker returns all applications a seeker has submitted
func (uc *applicationUsecase) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.JobApplication, error) {
	return uc.applicationRepo.GetBySeekerID(ctx, seekerID)
}

// UpdateStatus applies an employer-side status change. Any enumerated status
// may follow any other; the only precondition is a rejection reason when the
// new status is REJECTED. Counter adjustment happens in the repository
// transaction via domain.CounterDelta.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, id int64, upd domain.ApplicationStatusUpdate) (*domain.JobApplication, error) {
	valid := false
	for _, s := range domain.UpdatableApplicationStatuses {
		if s == upd.Status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperror.BadRequest("Invalid status")
	}

	if upd.Status == domain.ApplicationStatusRejected && (upd.RejectionReason == nil || *upd.RejectionReason == "") {
		return nil, apperror.Unprocessable("Validation error", map[string][]string{
			"rejection_reason": {"The rejection reason field is required when status is REJECTED."},
		})
	}

	app, err := uc.applicationRepo.UpdateStatus(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// Withdraw sets the application to WITHDRAWN and decrements the post's counter
func (uc *applicationUsecase) Withdraw(ctx context.Context, id int64) error {
	err := uc.applicationRepo.Withdraw(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Application not found")
	case errors.Is(err, domain.ErrAlreadyWithdrawn):
		return apperror.Conflict("Already withdrawn")
	default:
		return apperror.Internal(err)
	}
}

// Reapply restores a withdrawn application to PENDING
func (uc *applicationUsecase) Reapply(ctx context.Context, id int64) error {
	err := uc.applicationRepo.Reapply(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Application not found")
	case errors.Is(err, domain.ErrNotWithdrawn):
		return apperror.BadRequest("Application is already active")
	default:
		return apperror.Internal(err)
	}
}

func intersects(a, b []int64) bool {
	set := make(map[int64]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
