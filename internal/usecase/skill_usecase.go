package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (uc *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return uc.skillRepo.Fetch(ctx)
}

func (uc *skillUsecase) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Skill not found")
	}
	return skill, nil
}

func (uc *skillUsecase) CreateSkill(ctx context.Context, skill *domain.Skill) error {
	exists, err := uc.skillRepo.ExistsByName(ctx, skill.Name, 0)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict("Skill already exists")
	}
	if err := uc.skillRepo.Create(ctx, skill); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *skillUsecase) UpdateSkill(ctx context.Context, skill *domain.Skill) error {
	if _, err := uc.skillRepo.GetByID(ctx, skill.ID); err != nil {
		return apperror.NotFound("Skill not found")
	}
	// The name must stay unique, but keeping the current one is fine.
	exists, err := uc.skillRepo.ExistsByName(ctx, skill.Name, skill.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict("Skill already exists")
	}
	if err := uc.skillRepo.Update(ctx, skill); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *skillUsecase) DeleteSkill(ctx context.Context, id int64) error {
	if _, err := uc.skillRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Skill not found")
	}
	if err := uc.skillRepo.Delete(ctx, id); err != nil {
		return apperror.Conflict("Skill is still in use")
	}
	return nil
}
