package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock repositories shared by the usecase tests.

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobPostID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobPostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetBySeekerID(ctx context.Context, seekerID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) Exists(ctx context.Context, jobPostID, seekerID int64) (bool, error) {
	args := m.Called(ctx, jobPostID, seekerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, upd domain.ApplicationStatusUpdate) (*domain.JobApplication, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) Withdraw(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockApplicationRepo) Reapply(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobPostRepo struct {
	mock.Mock
}

func (m *MockJobPostRepo) Create(ctx context.Context, post *domain.JobPost, skillIDs []int64) error {
	return m.Called(ctx, post, skillIDs).Error(0)
}

func (m *MockJobPostRepo) GetByID(ctx context.Context, id int64) (*domain.JobPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) GetOpenBySlug(ctx context.Context, slug string) (*domain.JobPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) FetchOpen(ctx context.Context) ([]domain.JobPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) FetchOpenLatest(ctx context.Context, limit int) ([]domain.JobPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) FetchByEmployer(ctx context.Context, employerProfileID int64) ([]domain.JobPost, error) {
	args := m.Called(ctx, employerProfileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPost), args.Error(1)
}

func (m *MockJobPostRepo) Update(ctx context.Context, post *domain.JobPost, skillIDs []int64) error {
	return m.Called(ctx, post, skillIDs).Error(0)
}

func (m *MockJobPostRepo) SetStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockJobPostRepo) SetSalaryVisible(ctx context.Context, id int64, visible bool) error {
	return m.Called(ctx, id, visible).Error(0)
}

func (m *MockJobPostRepo) GetSkillIDs(ctx context.Context, id int64) ([]int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockJobPostRepo) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobPostRepo) CountByEmployerStatus(ctx context.Context, employerProfileID int64, status string) (int64, error) {
	args := m.Called(ctx, employerProfileID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobPostRepo) SumApplicationsByEmployer(ctx context.Context, employerProfileID int64) (int64, error) {
	args := m.Called(ctx, employerProfileID)
	return args.Get(0).(int64), args.Error(1)
}

type MockSeekerRepo struct {
	mock.Mock
}

func (m *MockSeekerRepo) Fetch(ctx context.Context) ([]domain.SeekerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeekerProfile), args.Error(1)
}

func (m *MockSeekerRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfile), args.Error(1)
}

func (m *MockSeekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerProfile), args.Error(1)
}

func (m *MockSeekerRepo) Create(ctx context.Context, profile *domain.SeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockSeekerRepo) Update(ctx context.Context, profile *domain.SeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockSeekerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSeekerRepo) GetSkills(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSeekerRepo) GetSkillIDs(ctx context.Context, profileID int64) ([]int64, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockSeekerRepo) SyncSkills(ctx context.Context, profileID int64, skills []domain.SeekerSkillInput) error {
	return m.Called(ctx, profileID, skills).Error(0)
}

func (m *MockSeekerRepo) DetachSkill(ctx context.Context, profileID, skillID int64) error {
	return m.Called(ctx, profileID, skillID).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.SeekerExperience, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeekerExperience), args.Error(1)
}

func (m *MockExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerExperience), args.Error(1)
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.SeekerExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.SeekerExperience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) ListByProfile(ctx context.Context, profileID int64) ([]domain.SeekerEducation, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeekerEducation), args.Error(1)
}

func (m *MockEducationRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerEducation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeekerEducation), args.Error(1)
}

func (m *MockEducationRepo) Create(ctx context.Context, edu *domain.SeekerEducation) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockEducationRepo) Update(ctx context.Context, edu *domain.SeekerEducation) error {
	return m.Called(ctx, edu).Error(0)
}

func (m *MockEducationRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) Upsert(ctx context.Context, iv *domain.InterviewSchedule) error {
	return m.Called(ctx, iv).Error(0)
}

func (m *MockInterviewRepo) GetByID(ctx context.Context, id int64) (*domain.InterviewSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSchedule), args.Error(1)
}

func (m *MockInterviewRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.InterviewSchedule, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewSchedule), args.Error(1)
}

func (m *MockInterviewRepo) GetForSeeker(ctx context.Context, seekerID int64) ([]domain.InterviewSchedule, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewSchedule), args.Error(1)
}

func (m *MockInterviewRepo) GetUpcomingForEmployer(ctx context.Context, employerProfileID int64, limit int) ([]domain.InterviewSchedule, error) {
	args := m.Called(ctx, employerProfileID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InterviewSchedule), args.Error(1)
}

func (m *MockInterviewRepo) UpdateStatus(ctx context.Context, id int64, upd domain.InterviewStatusUpdate) (*domain.InterviewSchedule, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSchedule), args.Error(1)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) Fetch(ctx context.Context) ([]domain.EmployerProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}

func (m *MockEmployerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockEmployerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockEmployerRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockEmployerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Fetch(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id int64) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Fetch(ctx context.Context) ([]domain.JobCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.JobCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobCategory), args.Error(1)
}

func (m *MockCategoryRepo) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) Update(ctx context.Context, category *domain.JobCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepo) TopByOpenJobs(ctx context.Context, limit int) ([]domain.JobCategory, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobCategory), args.Error(1)
}

type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) CountMetric(ctx context.Context, metric string, daysAgo, sparkPoints int) (int64, int64, []int64, error) {
	args := m.Called(ctx, metric, daysAgo, sparkPoints)
	var sparkline []int64
	if args.Get(2) != nil {
		sparkline = args.Get(2).([]int64)
	}
	return args.Get(0).(int64), args.Get(1).(int64), sparkline, args.Error(3)
}

func (m *MockDashboardRepo) SeekersWithSkills(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepo) TopSkills(ctx context.Context, limit int) ([]domain.SkillCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SkillCount), args.Error(1)
}

func (m *MockDashboardRepo) CategoryDistribution(ctx context.Context, limit int) ([]domain.CategoryJobCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryJobCount), args.Error(1)
}
