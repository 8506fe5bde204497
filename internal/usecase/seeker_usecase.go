package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type seekerUsecase struct {
	seekerRepo   domain.SeekerRepository
	skillRepo    domain.SkillRepository
	jobPostRepo  domain.JobPostRepository
	categoryRepo domain.CategoryRepository
	employerRepo domain.EmployerRepository
}

// NewSeekerUsecase creates a new seeker-profile usecase
func NewSeekerUsecase(
	seekerRepo domain.SeekerRepository,
	skillRepo domain.SkillRepository,
	jobPostRepo domain.JobPostRepository,
	categoryRepo domain.CategoryRepository,
	employerRepo domain.EmployerRepository,
) domain.SeekerUsecase {
	return &seekerUsecase{
		seekerRepo:   seekerRepo,
		skillRepo:    skillRepo,
		jobPostRepo:  jobPostRepo,
		categoryRepo: categoryRepo,
		employerRepo: employerRepo,
	}
}

// ListProfiles returns profiles of ACTIVE users, newest first
func (uc *seekerUsecase) ListProfiles(ctx context.Context) ([]domain.SeekerProfile, error) {
	return uc.seekerRepo.Fetch(ctx)
}

func (uc *seekerUsecase) GetProfile(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	profile, err := uc.seekerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (uc *seekerUsecase) GetProfileByUser(ctx context.Context, userID int64) (*domain.SeekerProfile, error) {
	profile, err := uc.seekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (uc *seekerUsecase) CreateProfile(ctx context.Context, profile *domain.SeekerProfile) error {
	if existing, err := uc.seekerRepo.GetByUserID(ctx, profile.UserID); err == nil && existing != nil {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"user_id": {"The user id has already been taken."},
		})
	}
	if profile.ProfileVisibility == "" {
		profile.ProfileVisibility = domain.ProfileVisibilityPublic
	}
	if err := uc.seekerRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *seekerUsecase) UpdateProfile(ctx context.Context, profile *domain.SeekerProfile) error {
	existing, err := uc.seekerRepo.GetByID(ctx, profile.ID)
	if err != nil {
		return apperror.NotFound("Profile not found")
	}
	// Profiles never migrate between users
	profile.UserID = existing.UserID
	if err := uc.seekerRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *seekerUsecase) DeleteProfile(ctx context.Context, id int64) error {
	if _, err := uc.seekerRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Profile not found")
	}
	if err := uc.seekerRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListSkills returns the profile together with its attached skills
func (uc *seekerUsecase) ListSkills(ctx context.Context, profileID int64) (*domain.SeekerProfile, []domain.Skill, error) {
	profile, err := uc.seekerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.NotFound("Profile not found")
	}
	skills, err := uc.seekerRepo.GetSkills(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return profile, skills, nil
}

// SyncSkills replaces the profile's whole skill set: rows absent from the
// input are detached, present ones are upserted with their proficiency.
func (uc *seekerUsecase) SyncSkills(ctx context.Context, profileID int64, skills []domain.SeekerSkillInput) ([]domain.Skill, error) {
	if _, err := uc.seekerRepo.GetByID(ctx, profileID); err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	for _, s := range skills {
		if _, err := uc.skillRepo.GetByID(ctx, s.SkillID); err != nil {
			return nil, apperror.Unprocessable("Validation error", map[string][]string{
				"skills": {"The selected skills are invalid."},
			})
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			return nil, apperror.Unprocessable("Validation error", map[string][]string{
				"skills": {"The proficiency must be between 0 and 100."},
			})
		}
	}
	if err := uc.seekerRepo.SyncSkills(ctx, profileID, skills); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.seekerRepo.GetSkills(ctx, profileID)
}

func (uc *seekerUsecase) DetachSkill(ctx context.Context, profileID, skillID int64) error {
	if _, err := uc.seekerRepo.GetByID(ctx, profileID); err != nil {
		return apperror.NotFound("Profile not found")
	}
	if err := uc.seekerRepo.DetachSkill(ctx, profileID, skillID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// HomeData assembles the seeker landing page aggregates
func (uc *seekerUsecase) HomeData(ctx context.Context) (*domain.SeekerHomeData, error) {
	home := &domain.SeekerHomeData{}

	activeJobs, err := uc.jobPostRepo.CountOpen(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	employers, err := uc.employerRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	home.Stats.ActiveJobs = activeJobs
	home.Stats.TopCompanies = employers

	if home.Categories, err = uc.categoryRepo.TopByOpenJobs(ctx, 8); err != nil {
		return nil, apperror.Internal(err)
	}
	if home.FeaturedJobs, err = uc.jobPostRepo.FetchOpenLatest(ctx, 6); err != nil {
		return nil, apperror.Internal(err)
	}
	return home, nil
}
