package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInterviewScheduling(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when the application does not exist", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo)

		appRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)

		_, err := uc.Schedule(ctx, &domain.InterviewSchedule{JobApplicationID: 42})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Application not found")
		ivRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should force the interview status to SCHEDULED", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, appRepo)

		appRepo.On("GetByID", ctx, int64(42)).Return(&domain.JobApplication{ID: 42}, nil)
		ivRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.InterviewSchedule")).Return(nil).Run(func(args mock.Arguments) {
			iv := args.Get(1).(*domain.InterviewSchedule)
			assert.Equal(t, domain.InterviewStatusScheduled, iv.InterviewStatus)
		})

		iv := &domain.InterviewSchedule{
			JobApplicationID: 42,
			Title:            "Technical round",
			ScheduledAt:      time.Now().Add(48 * time.Hour),
			Type:             domain.InterviewTypeOnline,
			InterviewStatus:  domain.InterviewStatusCompleted, // client-supplied, must be overridden
		}
		scheduled, err := uc.Schedule(ctx, iv)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusScheduled, scheduled.InterviewStatus)
	})
}

func TestInterviewStatusUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject statuses outside the enum", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo))

		_, err := uc.UpdateStatus(ctx, 1, domain.InterviewStatusUpdate{InterviewStatus: "DONE"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid interview status")
	})

	t.Run("Should pass valid outcomes through to the repository", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo))

		upd := domain.InterviewStatusUpdate{
			InterviewStatus: domain.InterviewStatusCompleted,
			Feedback:        strPtr("Strong candidate"),
		}
		done := &domain.InterviewSchedule{ID: 1, InterviewStatus: domain.InterviewStatusCompleted}
		ivRepo.On("UpdateStatus", ctx, int64(1), upd).Return(done, nil)

		iv, err := uc.UpdateStatus(ctx, 1, upd)
		assert.NoError(t, err)
		assert.Equal(t, domain.InterviewStatusCompleted, iv.InterviewStatus)
	})

	t.Run("Should clear feedback when the update omits it", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo))

		// The mock matches on the exact struct, so nil feedback must reach
		// the repository untouched and come back as a cleared column.
		upd := domain.InterviewStatusUpdate{InterviewStatus: domain.InterviewStatusCompleted}
		done := &domain.InterviewSchedule{ID: 1, InterviewStatus: domain.InterviewStatusCompleted}
		ivRepo.On("UpdateStatus", ctx, int64(1), upd).Return(done, nil)

		iv, err := uc.UpdateStatus(ctx, 1, upd)
		assert.NoError(t, err)
		assert.Nil(t, iv.Feedback)
	})

	t.Run("Should 404 on unknown interview records", func(t *testing.T) {
		ivRepo := new(MockInterviewRepo)
		uc := usecase.NewInterviewUsecase(ivRepo, new(MockApplicationRepo))

		upd := domain.InterviewStatusUpdate{InterviewStatus: domain.InterviewStatusCancelled}
		ivRepo.On("UpdateStatus", ctx, int64(9), upd).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateStatus(ctx, 9, upd)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
