package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type experienceUsecase struct {
	experienceRepo domain.ExperienceRepository
	seekerRepo     domain.SeekerRepository
}

// NewExperienceUsecase creates a new work-experience usecase
func NewExperienceUsecase(
	experienceRepo domain.ExperienceRepository,
	seekerRepo domain.SeekerRepository,
) domain.ExperienceUsecase {
	return &experienceUsecase{
		experienceRepo: experienceRepo,
		seekerRepo:     seekerRepo,
	}
}

// ListByProfile returns a seeker's work history, most recent first
func (uc *experienceUsecase) ListByProfile(ctx context.Context, profileID int64) (*domain.SeekerProfile, []domain.SeekerExperience, error) {
	profile, err := uc.seekerRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.NotFound("Profile not found")
	}
	experiences, err := uc.experienceRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return profile, experiences, nil
}

// Create adds a work-experience record. Date sanity is checked here; the
// single-open-range and overlap rules run inside the repository transaction
// against the owner's other records.
func (uc *experienceUsecase) Create(ctx context.Context, exp *domain.SeekerExperience) error {
	if _, err := uc.seekerRepo.GetByID(ctx, exp.ProfileID); err != nil {
		return apperror.NotFound("Profile not found")
	}
	if bag := validateExperienceDates(exp); bag != nil {
		return apperror.Unprocessable("Validation error", bag)
	}

	return mapRangeError(uc.experienceRepo.Create(ctx, exp), "start_date", "end_date",
		"This job experience overlaps with an existing one.",
		`You already have an active "Current" role. Please provide an end date for previous roles first.`)
}

// Update edits a work-experience record, re-running the range rules with the
// record itself excluded from the comparison set.
func (uc *experienceUsecase) Update(ctx context.Context, exp *domain.SeekerExperience) error {
	existing, err := uc.experienceRepo.GetByID(ctx, exp.ID)
	if err != nil {
		return apperror.NotFound("Experience record not found")
	}
	exp.ProfileID = existing.ProfileID

	if bag := validateExperienceDates(exp); bag != nil {
		return apperror.Unprocessable("Validation error", bag)
	}

	return mapRangeError(uc.experienceRepo.Update(ctx, exp), "start_date", "end_date",
		"This job experience overlaps with an existing one.",
		"You already have another active role. Only one current role is allowed.")
}

// Delete removes a work-experience record
func (uc *experienceUsecase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.experienceRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Experience record not found")
	}
	if err := uc.experienceRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func validateExperienceDates(exp *domain.SeekerExperience) map[string][]string {
	bag := make(map[string][]string)
	today := time.Now()

	if exp.StartDate.After(today) {
		bag["start_date"] = append(bag["start_date"], "The start date may not be in the future.")
	}
	if exp.EndDate != nil {
		if exp.EndDate.Before(exp.StartDate) {
			bag["end_date"] = append(bag["end_date"], "The end date must be on or after the start date.")
		}
		if exp.EndDate.After(today) {
			bag["end_date"] = append(bag["end_date"], "The end date may not be in the future.")
		}
	}
	if len(bag) == 0 {
		return nil
	}
	return bag
}

// mapRangeError converts repository range violations into the per-field 422
// bag clients expect: overlap on the start field, open-range on the end field.
func mapRangeError(err error, startField, endField, overlapMsg, openMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrRangeOverlap):
		return apperror.Unprocessable("Validation error", map[string][]string{startField: {overlapMsg}})
	case errors.Is(err, domain.ErrDuplicateOpenRange):
		return apperror.Unprocessable("Validation error", map[string][]string{endField: {openMsg}})
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Record not found")
	default:
		return apperror.Internal(err)
	}
}
