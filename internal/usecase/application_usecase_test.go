package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func openPost(id int64) *domain.JobPost {
	return &domain.JobPost{ID: id, Status: domain.JobPostStatusOpen}
}

func seekerWithResume(id int64) *domain.SeekerProfile {
	return &domain.SeekerProfile{ID: id, ResumeURL: strPtr("https://cdn.example.com/resume.pdf")}
}

func TestApplicationSubmission(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when seeker has no resume", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		jobRepo.On("GetByID", ctx, int64(1)).Return(openPost(1), nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)

		_, err := uc.Apply(ctx, 1, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must have a resume")
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should fail when seeker skills do not intersect the post's", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		jobRepo.On("GetByID", ctx, int64(1)).Return(openPost(1), nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(seekerWithResume(7), nil)
		jobRepo.On("GetSkillIDs", ctx, int64(1)).Return([]int64{10, 11}, nil)
		seekerRepo.On("GetSkillIDs", ctx, int64(7)).Return([]int64{20, 21}, nil)

		_, err := uc.Apply(ctx, 1, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "required skills")
	})

	t.Run("Should fail when the post is no longer open", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		closed := &domain.JobPost{ID: 1, Status: domain.JobPostStatusClosed}
		jobRepo.On("GetByID", ctx, int64(1)).Return(closed, nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(seekerWithResume(7), nil)
		jobRepo.On("GetSkillIDs", ctx, int64(1)).Return([]int64{}, nil)

		_, err := uc.Apply(ctx, 1, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("Should reject a second application for the same post", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		jobRepo.On("GetByID", ctx, int64(1)).Return(openPost(1), nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(seekerWithResume(7), nil)
		jobRepo.On("GetSkillIDs", ctx, int64(1)).Return([]int64{}, nil)
		appRepo.On("Exists", ctx, int64(1), int64(7)).Return(true, nil)

		_, err := uc.Apply(ctx, 1, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should submit as PENDING when all preconditions hold", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		jobRepo.On("GetByID", ctx, int64(1)).Return(openPost(1), nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(seekerWithResume(7), nil)
		jobRepo.On("GetSkillIDs", ctx, int64(1)).Return([]int64{10}, nil)
		seekerRepo.On("GetSkillIDs", ctx, int64(7)).Return([]int64{10, 20}, nil)
		appRepo.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)

		app, err := uc.Apply(ctx, 1, 7, "I would love to join.")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.NotNil(t, app.CoverLetter)
	})

	t.Run("Should map a duplicate-key race to a conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobPostRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, seekerRepo)

		jobRepo.On("GetByID", ctx, int64(1)).Return(openPost(1), nil)
		seekerRepo.On("GetByID", ctx, int64(7)).Return(seekerWithResume(7), nil)
		jobRepo.On("GetSkillIDs", ctx, int64(1)).Return([]int64{}, nil)
		appRepo.On("Exists", ctx, int64(1), int64(7)).Return(false, nil)
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(ctx, 1, 7, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})
}

func TestApplicationStatusUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject statuses outside the enum", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.ApplicationStatusUpdate{Status: "HIRED"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should reject PENDING as a target status", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.ApplicationStatusUpdate{Status: domain.ApplicationStatusPending})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid status")
	})

	t.Run("Should require a rejection reason for REJECTED", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.ApplicationStatusUpdate{Status: domain.ApplicationStatusRejected})
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 422, appErr.Code)
		bag := appErr.Fields.(map[string][]string)
		assert.Contains(t, bag, "rejection_reason")
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should pass a valid update through to the repository", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		upd := domain.ApplicationStatusUpdate{
			Status:          domain.ApplicationStatusRejected,
			RejectionReason: strPtr("Position filled"),
		}
		updated := &domain.JobApplication{ID: 1, Status: domain.ApplicationStatusRejected}
		appRepo.On("UpdateStatus", ctx, int64(1), upd).Return(updated, nil)

		app, err := uc.UpdateStatus(ctx, 1, upd)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, app.Status)
	})

	t.Run("Should clear employer notes when the update omits them", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		// The mock matches on the exact struct, so a nil EmployerNotes must
		// reach the repository untouched and come back as a cleared column.
		upd := domain.ApplicationStatusUpdate{Status: domain.ApplicationStatusShortlisted}
		updated := &domain.JobApplication{ID: 1, Status: domain.ApplicationStatusShortlisted}
		appRepo.On("UpdateStatus", ctx, int64(1), upd).Return(updated, nil)

		app, err := uc.UpdateStatus(ctx, 1, upd)
		assert.NoError(t, err)
		assert.Nil(t, app.EmployerNotes)
	})
}

func TestApplicationWithdrawReapply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should conflict when withdrawing twice", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		appRepo.On("Withdraw", ctx, int64(1)).Return(domain.ErrAlreadyWithdrawn)

		err := uc.Withdraw(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Already withdrawn")
	})

	t.Run("Should reject reapply on an active application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		appRepo.On("Reapply", ctx, int64(1)).Return(domain.ErrNotWithdrawn)

		err := uc.Reapply(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already active")
	})

	t.Run("Should 404 on unknown applications", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobPostRepo), new(MockSeekerRepo))

		appRepo.On("Withdraw", ctx, int64(99)).Return(domain.ErrNotFound)

		err := uc.Withdraw(ctx, 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
