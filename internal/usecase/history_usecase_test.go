package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func fieldBag(t *testing.T, err error) map[string][]string {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, 422, appErr.Code)
	return appErr.Fields.(map[string][]string)
}

func TestExperienceDateValidation(t *testing.T) {
	ctx := context.Background()
	expRepo := new(MockExperienceRepo)
	seekerRepo := new(MockSeekerRepo)
	uc := usecase.NewExperienceUsecase(expRepo, seekerRepo)

	seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)

	t.Run("Should reject a future start date", func(t *testing.T) {
		exp := &domain.SeekerExperience{
			ProfileID: 7,
			StartDate: time.Now().AddDate(1, 0, 0),
		}
		err := uc.Create(ctx, exp)
		assert.Error(t, err)
		assert.Contains(t, fieldBag(t, err), "start_date")
	})

	t.Run("Should reject an end date before the start date", func(t *testing.T) {
		exp := &domain.SeekerExperience{
			ProfileID: 7,
			StartDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   timePtr(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)),
		}
		err := uc.Create(ctx, exp)
		assert.Error(t, err)
		assert.Contains(t, fieldBag(t, err), "end_date")
		expRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestExperienceRangeRules(t *testing.T) {
	ctx := context.Background()

	valid := func() *domain.SeekerExperience {
		return &domain.SeekerExperience{
			ProfileID:   7,
			JobTitle:    "Backend Engineer",
			CompanyName: "Acme",
			StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     timePtr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)),
		}
	}

	t.Run("Should map an overlap to the start_date field", func(t *testing.T) {
		expRepo := new(MockExperienceRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewExperienceUsecase(expRepo, seekerRepo)

		seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)
		expRepo.On("Create", ctx, mock.Anything).Return(domain.ErrRangeOverlap)

		err := uc.Create(ctx, valid())
		assert.Error(t, err)
		bag := fieldBag(t, err)
		assert.Contains(t, bag["start_date"][0], "overlaps")
	})

	t.Run("Should map a second open range to the end_date field", func(t *testing.T) {
		expRepo := new(MockExperienceRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewExperienceUsecase(expRepo, seekerRepo)

		seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)
		expRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateOpenRange)

		exp := valid()
		exp.EndDate = nil
		err := uc.Create(ctx, exp)
		assert.Error(t, err)
		bag := fieldBag(t, err)
		assert.Contains(t, bag["end_date"][0], "Current")
	})

	t.Run("Should keep the record owned by its original profile on update", func(t *testing.T) {
		expRepo := new(MockExperienceRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewExperienceUsecase(expRepo, seekerRepo)

		existing := valid()
		existing.ID = 3
		expRepo.On("GetByID", ctx, int64(3)).Return(existing, nil)
		expRepo.On("Update", ctx, mock.AnythingOfType("*domain.SeekerExperience")).Return(nil).Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.SeekerExperience)
			assert.Equal(t, int64(7), e.ProfileID)
		})

		edit := valid()
		edit.ID = 3
		edit.ProfileID = 999
		err := uc.Update(ctx, edit)
		assert.NoError(t, err)
	})
}

func TestEducationYearRules(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an end year before the start year", func(t *testing.T) {
		eduRepo := new(MockEducationRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewEducationUsecase(eduRepo, seekerRepo)

		seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)

		edu := &domain.SeekerEducation{
			ProfileID:   7,
			Institution: "State University",
			StartYear:   2020,
			EndYear:     intPtr(2018),
		}
		err := uc.Create(ctx, edu)
		assert.Error(t, err)
		assert.Contains(t, fieldBag(t, err), "end_year")
	})

	t.Run("Should map year-grained range violations like experience", func(t *testing.T) {
		eduRepo := new(MockEducationRepo)
		seekerRepo := new(MockSeekerRepo)
		uc := usecase.NewEducationUsecase(eduRepo, seekerRepo)

		seekerRepo.On("GetByID", ctx, int64(7)).Return(&domain.SeekerProfile{ID: 7}, nil)
		eduRepo.On("Create", ctx, mock.Anything).Return(domain.ErrRangeOverlap)

		edu := &domain.SeekerEducation{
			ProfileID:   7,
			Institution: "State University",
			StartYear:   2019,
			EndYear:     intPtr(2022),
		}
		err := uc.Create(ctx, edu)
		assert.Error(t, err)
		bag := fieldBag(t, err)
		assert.Contains(t, bag["start_year"][0], "overlaps")
	})
}
