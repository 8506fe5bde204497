package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type employerUsecase struct {
	employerRepo  domain.EmployerRepository
	jobPostRepo   domain.JobPostRepository
	interviewRepo domain.InterviewRepository
}

// NewEmployerUsecase creates a new employer-profile usecase
func NewEmployerUsecase(
	employerRepo domain.EmployerRepository,
	jobPostRepo domain.JobPostRepository,
	interviewRepo domain.InterviewRepository,
) domain.EmployerUsecase {
	return &employerUsecase{
		employerRepo:  employerRepo,
		jobPostRepo:   jobPostRepo,
		interviewRepo: interviewRepo,
	}
}

func (uc *employerUsecase) ListProfiles(ctx context.Context) ([]domain.EmployerProfile, error) {
	return uc.employerRepo.Fetch(ctx)
}

func (uc *employerUsecase) GetProfile(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	profile, err := uc.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	return profile, nil
}

func (uc *employerUsecase) CreateProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	if existing, err := uc.employerRepo.GetByUserID(ctx, profile.UserID); err == nil && existing != nil {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"user_id": {"The user id has already been taken."},
		})
	}
	if err := uc.employerRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *employerUsecase) UpdateProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	existing, err := uc.employerRepo.GetByID(ctx, profile.ID)
	if err != nil {
		return apperror.NotFound("Employer profile not found")
	}
	profile.UserID = existing.UserID
	if err := uc.employerRepo.Update(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *employerUsecase) DeleteProfile(ctx context.Context, id int64) error {
	if _, err := uc.employerRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Employer profile not found")
	}
	if err := uc.employerRepo.Delete(ctx, id); err != nil {
		return apperror.Conflict("Employer profile has job posts attached and cannot be deleted")
	}
	return nil
}

// HomeData assembles the employer landing page: post counts, pipeline size
// and the next interviews across the employer's posts.
func (uc *employerUsecase) HomeData(ctx context.Context, id int64) (*domain.EmployerHomeData, error) {
	profile, err := uc.employerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}

	home := &domain.EmployerHomeData{Profile: profile}

	if home.Stats.OpenPosts, err = uc.jobPostRepo.CountByEmployerStatus(ctx, id, domain.JobPostStatusOpen); err != nil {
		return nil, apperror.Internal(err)
	}
	if home.Stats.ClosedPosts, err = uc.jobPostRepo.CountByEmployerStatus(ctx, id, domain.JobPostStatusClosed); err != nil {
		return nil, apperror.Internal(err)
	}
	if home.Stats.TotalApplications, err = uc.jobPostRepo.SumApplicationsByEmployer(ctx, id); err != nil {
		return nil, apperror.Internal(err)
	}
	if home.UpcomingInterviews, err = uc.interviewRepo.GetUpcomingForEmployer(ctx, id, 5); err != nil {
		return nil, apperror.Internal(err)
	}
	return home, nil
}
