package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type categoryUsecase struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryUsecase creates a new job-category usecase
func NewCategoryUsecase(categoryRepo domain.CategoryRepository) domain.CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (uc *categoryUsecase) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	return uc.categoryRepo.Fetch(ctx)
}

func (uc *categoryUsecase) GetCategory(ctx context.Context, id int64) (*domain.JobCategory, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job category not found")
	}
	return category, nil
}

func (uc *categoryUsecase) CreateCategory(ctx context.Context, category *domain.JobCategory) error {
	exists, err := uc.categoryRepo.ExistsByName(ctx, category.Name, 0)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict("Job category already exists")
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *categoryUsecase) UpdateCategory(ctx context.Context, category *domain.JobCategory) error {
	if _, err := uc.categoryRepo.GetByID(ctx, category.ID); err != nil {
		return apperror.NotFound("Job category not found")
	}
	// The name must stay unique, but keeping the current one is fine.
	exists, err := uc.categoryRepo.ExistsByName(ctx, category.Name, category.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict("Job category already exists")
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *categoryUsecase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Job category not found")
	}
	// Job posts keep a foreign key to their category; the delete fails while
	// any still reference it.
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return apperror.Conflict("Category has job posts attached and cannot be deleted")
	}
	return nil
}
