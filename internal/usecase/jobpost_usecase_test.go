package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "acme-corp-senior-go-engineer", usecase.Slugify("Acme Corp-Senior Go Engineer"))
	assert.Equal(t, "blue-bird-devops", usecase.Slugify("  Blue Bird!! DevOps  "))
	assert.Equal(t, "a-b", usecase.Slugify("a---b"))
	assert.Equal(t, "", usecase.Slugify("!!!"))
}

func TestJobPostVisibilityToggles(t *testing.T) {
	ctx := context.Background()

	t.Run("Should flip OPEN to CLOSED", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, new(MockEmployerRepo), new(MockCategoryRepo), new(MockSkillRepo))

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobPost{ID: 1, Status: domain.JobPostStatusOpen}, nil)
		jobRepo.On("SetStatus", ctx, int64(1), domain.JobPostStatusClosed).Return(nil)

		status, err := uc.ToggleVisibility(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobPostStatusClosed, status)
	})

	t.Run("Should flip CLOSED back to OPEN", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, new(MockEmployerRepo), new(MockCategoryRepo), new(MockSkillRepo))

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobPost{ID: 1, Status: domain.JobPostStatusClosed}, nil)
		jobRepo.On("SetStatus", ctx, int64(1), domain.JobPostStatusOpen).Return(nil)

		status, err := uc.ToggleVisibility(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobPostStatusOpen, status)
	})

	t.Run("Should refuse to toggle an archived post", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, new(MockEmployerRepo), new(MockCategoryRepo), new(MockSkillRepo))

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobPost{ID: 1, Status: domain.JobPostStatusArchived}, nil)

		_, err := uc.ToggleVisibility(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Archived posts cannot be toggled")
		jobRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should only restore archived posts", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, new(MockEmployerRepo), new(MockCategoryRepo), new(MockSkillRepo))

		jobRepo.On("GetByID", ctx, int64(1)).Return(&domain.JobPost{ID: 1, Status: domain.JobPostStatusOpen}, nil)

		err := uc.RestorePost(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only archived posts")
	})
}

func TestJobPostCreation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject salary_max below salary_min", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		employerRepo := new(MockEmployerRepo)
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, employerRepo, categoryRepo, new(MockSkillRepo))

		employerRepo.On("GetByID", ctx, int64(5)).Return(&domain.EmployerProfile{ID: 5, CompanyName: "Acme"}, nil)
		categoryRepo.On("GetByID", ctx, int64(2)).Return(&domain.JobCategory{ID: 2}, nil)

		min, max := 90000.0, 60000.0
		post := &domain.JobPost{
			EmployerID: 5,
			CategoryID: 2,
			Title:      "Go Engineer",
			SalaryMin:  &min,
			SalaryMax:  &max,
		}
		_, err := uc.CreatePost(ctx, post, nil)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should derive the slug from company and title", func(t *testing.T) {
		jobRepo := new(MockJobPostRepo)
		employerRepo := new(MockEmployerRepo)
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewJobPostUsecase(jobRepo, employerRepo, categoryRepo, new(MockSkillRepo))

		employerRepo.On("GetByID", ctx, int64(5)).Return(&domain.EmployerProfile{ID: 5, CompanyName: "Acme Corp"}, nil)
		categoryRepo.On("GetByID", ctx, int64(2)).Return(&domain.JobCategory{ID: 2}, nil)
		jobRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobPost"), []int64(nil)).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.JobPost)
			assert.Equal(t, "acme-corp-go-engineer", p.Slug)
			assert.Equal(t, domain.JobPostStatusOpen, p.Status)
			p.ID = 10
		})
		jobRepo.On("GetByID", ctx, int64(10)).Return(&domain.JobPost{ID: 10, Slug: "acme-corp-go-engineer-10"}, nil)

		created, err := uc.CreatePost(ctx, &domain.JobPost{EmployerID: 5, CategoryID: 2, Title: "Go Engineer"}, nil)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
	})
}
