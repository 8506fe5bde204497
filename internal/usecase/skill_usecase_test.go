package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSkillNameUniqueness(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject a duplicate name on create", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo)

		skillRepo.On("ExistsByName", ctx, "Go", int64(0)).Return(true, nil)

		err := uc.CreateSkill(ctx, &domain.Skill{Name: "Go"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		skillRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should create when the name is free", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo)

		skillRepo.On("ExistsByName", ctx, "Go", int64(0)).Return(false, nil)
		skillRepo.On("Create", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil)

		err := uc.CreateSkill(ctx, &domain.Skill{Name: "Go"})
		assert.NoError(t, err)
	})

	t.Run("Should reject an update that takes another skill's name", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo)

		skillRepo.On("GetByID", ctx, int64(3)).Return(&domain.Skill{ID: 3, Name: "Golang"}, nil)
		skillRepo.On("ExistsByName", ctx, "Go", int64(3)).Return(true, nil)

		err := uc.UpdateSkill(ctx, &domain.Skill{ID: 3, Name: "Go"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		skillRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Should let an update keep its own name", func(t *testing.T) {
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(skillRepo)

		skillRepo.On("GetByID", ctx, int64(3)).Return(&domain.Skill{ID: 3, Name: "Go"}, nil)
		skillRepo.On("ExistsByName", ctx, "Go", int64(3)).Return(false, nil)
		skillRepo.On("Update", ctx, mock.AnythingOfType("*domain.Skill")).Return(nil)

		err := uc.UpdateSkill(ctx, &domain.Skill{ID: 3, Name: "Go"})
		assert.NoError(t, err)
	})
}
