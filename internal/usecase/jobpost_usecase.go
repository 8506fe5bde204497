package usecase

import (
	"context"
	"strings"
	"unicode"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobPostUsecase struct {
	jobPostRepo  domain.JobPostRepository
	employerRepo domain.EmployerRepository
	categoryRepo domain.CategoryRepository
	skillRepo    domain.SkillRepository
}

// NewJobPostUsecase creates a new job-post usecase
func NewJobPostUsecase(
	jobPostRepo domain.JobPostRepository,
	employerRepo domain.EmployerRepository,
	categoryRepo domain.CategoryRepository,
	skillRepo domain.SkillRepository,
) domain.JobPostUsecase {
	return &jobPostUsecase{
		jobPostRepo:  jobPostRepo,
		employerRepo: employerRepo,
		categoryRepo: categoryRepo,
		skillRepo:    skillRepo,
	}
}

// CreatePost publishes a vacancy. The slug starts as
// slugify(company-title); the repository appends the generated id inside the
// insert transaction to keep it unique.
func (uc *jobPostUsecase) CreatePost(ctx context.Context, post *domain.JobPost, skillIDs []int64) (*domain.JobPost, error) {
	employer, err := uc.employerRepo.GetByID(ctx, post.EmployerID)
	if err != nil {
		return nil, apperror.NotFound("Employer profile not found")
	}
	if _, err := uc.categoryRepo.GetByID(ctx, post.CategoryID); err != nil {
		return nil, apperror.NotFound("Job category not found")
	}
	if bag := uc.validatePost(ctx, post, skillIDs); bag != nil {
		return nil, apperror.Unprocessable("Validation error", bag)
	}

	companyName := employer.CompanyName
	if companyName == "" {
		companyName = "hiring"
	}
	post.Slug = Slugify(companyName + "-" + post.Title)
	if post.Status == "" {
		post.Status = domain.JobPostStatusOpen
	}
	if post.Currency == "" {
		post.Currency = "USD"
	}

	if err := uc.jobPostRepo.Create(ctx, post, skillIDs); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.jobPostRepo.GetByID(ctx, post.ID)
}

func (uc *jobPostUsecase) GetPost(ctx context.Context, id int64) (*domain.JobPost, error) {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job post not found")
	}
	return post, nil
}

// GetOpenPostBySlug serves the public detail page; closed and archived posts 404
func (uc *jobPostUsecase) GetOpenPostBySlug(ctx context.Context, slug string) (*domain.JobPost, error) {
	post, err := uc.jobPostRepo.GetOpenBySlug(ctx, slug)
	if err != nil {
		return nil, apperror.NotFound("Job post not found")
	}
	return post, nil
}

func (uc *jobPostUsecase) ListOpenPosts(ctx context.Context) ([]domain.JobPost, error) {
	return uc.jobPostRepo.FetchOpen(ctx)
}

func (uc *jobPostUsecase) ListByEmployer(ctx context.Context, employerProfileID int64) (*domain.EmployerProfile, []domain.JobPost, error) {
	profile, err := uc.employerRepo.GetByID(ctx, employerProfileID)
	if err != nil {
		return nil, nil, apperror.NotFound("Employer profile not found")
	}
	posts, err := uc.jobPostRepo.FetchByEmployer(ctx, employerProfileID)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return profile, posts, nil
}

func (uc *jobPostUsecase) UpdatePost(ctx context.Context, post *domain.JobPost, skillIDs []int64) (*domain.JobPost, error) {
	existing, err := uc.jobPostRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, apperror.NotFound("Job post not found")
	}
	if _, err := uc.categoryRepo.GetByID(ctx, post.CategoryID); err != nil {
		return nil, apperror.NotFound("Job category not found")
	}
	if bag := uc.validatePost(ctx, post, skillIDs); bag != nil {
		return nil, apperror.Unprocessable("Validation error", bag)
	}

	// Slug, ownership, status and counter are not editable through update
	post.EmployerID = existing.EmployerID
	post.Slug = existing.Slug
	post.Status = existing.Status
	post.ApplicationCount = existing.ApplicationCount

	if err := uc.jobPostRepo.Update(ctx, post, skillIDs); err != nil {
		return nil, apperror.Internal(err)
	}
	return uc.jobPostRepo.GetByID(ctx, post.ID)
}

// ArchivePost soft-removes the post; history (applications) stays intact
func (uc *jobPostUsecase) ArchivePost(ctx context.Context, id int64) error {
	if _, err := uc.jobPostRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Job post not found")
	}
	if err := uc.jobPostRepo.SetStatus(ctx, id, domain.JobPostStatusArchived); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobPostUsecase) RestorePost(ctx context.Context, id int64) error {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Job post not found")
	}
	if post.Status != domain.JobPostStatusArchived {
		return apperror.BadRequest("Only archived posts can be restored")
	}
	if err := uc.jobPostRepo.SetStatus(ctx, id, domain.JobPostStatusOpen); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ToggleVisibility flips OPEN<->CLOSED
func (uc *jobPostUsecase) ToggleVisibility(ctx context.Context, id int64) (string, error) {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return "", apperror.NotFound("Job post not found")
	}
	if post.Status == domain.JobPostStatusArchived {
		return "", apperror.BadRequest("Archived posts cannot be toggled. Restore them first.")
	}

	newStatus := domain.JobPostStatusClosed
	if post.Status == domain.JobPostStatusClosed {
		newStatus = domain.JobPostStatusOpen
	}
	if err := uc.jobPostRepo.SetStatus(ctx, id, newStatus); err != nil {
		return "", apperror.Internal(err)
	}
	return newStatus, nil
}

func (uc *jobPostUsecase) ToggleSalaryVisibility(ctx context.Context, id int64) (bool, error) {
	post, err := uc.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return false, apperror.NotFound("Job post not found")
	}
	visible := !post.SalaryVisible
	if err := uc.jobPostRepo.SetSalaryVisible(ctx, id, visible); err != nil {
		return false, apperror.Internal(err)
	}
	return visible, nil
}

func (uc *jobPostUsecase) validatePost(ctx context.Context, post *domain.JobPost, skillIDs []int64) map[string][]string {
	bag := make(map[string][]string)

	if post.SalaryMin != nil && post.SalaryMax != nil && *post.SalaryMax < *post.SalaryMin {
		bag["salary_max"] = append(bag["salary_max"], "The salary max must be greater than or equal to salary min.")
	}
	for _, id := range skillIDs {
		if _, err := uc.skillRepo.GetByID(ctx, id); err != nil {
			bag["skills"] = append(bag["skills"], "The selected skills are invalid.")
			break
		}
	}
	if len(bag) == 0 {
		return nil
	}
	return bag
}

// Slugify lowercases and strips s down to letter/digit runs joined by hyphens
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
