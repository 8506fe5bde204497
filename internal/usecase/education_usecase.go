package usecase

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type educationUsecase struct {
	educationRepo domain.EducationRepository
	seekerRepo    domain.SeekerRepository
}

// NewEducationUsecase creates a new education usecase
func NewEducationUsecase(
	educationRepo domain.EducationRepository,
	seekerRepo domain.SeekerRepository,
) domain.EducationUsecase {
	return &educationUsecase{
		educationRepo: educationRepo,
		seekerRepo:    seekerRepo,
	}
}

// ListByProfile returns a seeker's education history, most recent first
func (uc *educationUsecase) ListByProfile(ctx context.Context, profileID int64) (*domain.SeekerProfile, []domain.SeekerEducation, error) {
	profile, err := uc.seekerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.NotFound("Profile not found")
	}
	educations, err := uc.educationRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return profile, educations, nil
}

// Create adds an education record. Year sanity is checked here; the range
// rules run year-grained inside the repository transaction.
func (uc *educationUsecase) Create(ctx context.Context, edu *domain.SeekerEducation) error {
	if _, err := uc.seekerRepo.GetByID(ctx, edu.ProfileID); err != nil {
		return apperror.NotFound("Profile not found")
	}
	if bag := validateEducationYears(edu); bag != nil {
		return apperror.Unprocessable("Validation error", bag)
	}

	return mapRangeError(uc.educationRepo.Create(ctx, edu), "start_year", "end_year",
		"This academic period overlaps with an existing education record.",
		"You already have an ongoing education record. Please provide a completion year for previous ones.")
}

// Update edits an education record, excluding it from its own comparison set
func (uc *educationUsecase) Update(ctx context.Context, edu *domain.SeekerEducation) error {
	existing, err := uc.educationRepo.GetByID(ctx, edu.ID)
	if err != nil {
		return apperror.NotFound("Education record not found")
	}
	edu.ProfileID = existing.ProfileID

	if bag := validateEducationYears(edu); bag != nil {
		return apperror.Unprocessable("Validation error", bag)
	}

	return mapRangeError(uc.educationRepo.Update(ctx, edu), "start_year", "end_year",
		"This academic period overlaps with an existing education record.",
		"You already have another ongoing education record.")
}

// Delete removes an education record
func (uc *educationUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.educationRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Education record not found")
	}
	if err := uc.educationRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func validateEducationYears(edu *domain.SeekerEducation) map[string][]string {
	bag := make(map[string][]string)
	year := time.Now().Year()

	if edu.StartYear < 1900 || edu.StartYear > year+5 {
		bag["start_year"] = append(bag["start_year"], "The start year is out of range.")
	}
	if edu.EndYear != nil {
		if *edu.EndYear < edu.StartYear {
			bag["end_year"] = append(bag["end_year"], "The end year must be on or after the start year.")
		}
		if *edu.EndYear > year+10 {
			bag["end_year"] = append(bag["end_year"], "The end year is out of range.")
		}
	}
	if len(bag) == 0 {
		return nil
	}
	return bag
}
