package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type interviewUsecase struct {
	interviewRepo   domain.InterviewRepository
	applicationRepo domain.ApplicationRepository
}

// NewInterviewUsecase creates a new interview usecase
func NewInterviewUsecase(
	interviewRepo domain.InterviewRepository,
	applicationRepo domain.ApplicationRepository,
) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo:   interviewRepo,
		applicationRepo: applicationRepo,
	}
}

// Schedule upserts the single interview record of an application. Scheduling
// again replaces the existing record, resets its status to SCHEDULED and
// forces the application to INTERVIEW_SCHEDULED regardless of its current
// status. Both writes happen in the repository transaction.
func (uc *interviewUsecase) Schedule(ctx context.Context, iv *domain.InterviewSchedule) (*domain.InterviewSchedule, error) {
	if _, err := uc.applicationRepo.GetByID(ctx, iv.JobApplicationID); err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	iv.InterviewStatus = domain.InterviewStatusScheduled
	if err := uc.interviewRepo.Upsert(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

// UpdateStatus records an interview outcome. Feedback, when present,
// overwrites the application's employer notes; COMPLETED and CANCELLED force
// the application status per domain.InterviewOutcomeStatus.
func (uc *interviewUsecase) UpdateStatus(ctx context.Context, id int64, upd domain.InterviewStatusUpdate) (*domain.InterviewSchedule, error) {
	switch upd.InterviewStatus {
	case domain.InterviewStatusScheduled,
		domain.InterviewStatusCompleted,
		domain.InterviewStatusCancelled,
		domain.InterviewStatusRescheduled:
	default:
		return nil, apperror.BadRequest("Invalid interview status")
	}

	iv, err := uc.interviewRepo.UpdateStatus(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview record not found")
		}
		return nil, apperror.Internal(err)
	}
	return iv, nil
}

// ListByApplication returns interview records of one application, newest first
func (uc *interviewUsecase) ListByApplication(ctx context.Context, applicationID int64) ([]domain.InterviewSchedule, error) {
	return uc.interviewRepo.GetByApplicationID(ctx, applicationID)
}

// ListForSeeker returns a seeker's interviews ordered by schedule time
func (uc *interviewUsecase) ListForSeeker(ctx context.Context, seekerID int64) ([]domain.InterviewSchedule, error) {
	return uc.interviewRepo.GetForSeeker(ctx, seekerID)
}
