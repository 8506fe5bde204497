package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryNameUniqueness(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a duplicate name on create", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewCategoryUsecase(categoryRepo)

		categoryRepo.On("ExistsByName", ctx, "Engineering", int64(0)).Return(true, nil)

		err := uc.CreateCategory(ctx, &domain.JobCategory{Name: "Engineering"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create when the name is free", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewCategoryUsecase(categoryRepo)

		categoryRepo.On("ExistsByName", ctx, "Engineering", int64(0)).Return(false, nil)
		categoryRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobCategory")).Return(nil)

		err := uc.CreateCategory(ctx, &domain.JobCategory{Name: "Engineering"})
		assert.NoError(t, err)
		categoryRepo.AssertCalled(t, "ExistsByName", ctx, "Engineering", int64(0))
	})

	t.Run("Should reject an update that takes another category's name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewCategoryUsecase(categoryRepo)

		categoryRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobCategory{ID: 5, Name: "Design"}, nil)
		categoryRepo.On("ExistsByName", ctx, "Engineering", int64(5)).Return(true, nil)

		err := uc.UpdateCategory(ctx, &domain.JobCategory{ID: 5, Name: "Engineering"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		categoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should let an update keep its own name", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepo)
		uc := usecase.NewCategoryUsecase(categoryRepo)

		categoryRepo.On("GetByID", ctx, int64(5)).Return(&domain.JobCategory{ID: 5, Name: "Design"}, nil)
		categoryRepo.On("ExistsByName", ctx, "Design", int64(5)).Return(false, nil)
		categoryRepo.On("Update", ctx, mock.AnythingOfType("*domain.JobCategory")).Return(nil)

		err := uc.UpdateCategory(ctx, &domain.JobCategory{ID: 5, Name: "Design"})
		assert.NoError(t, err)
	})
}
