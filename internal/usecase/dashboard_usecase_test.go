package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAdminDashboard(t *testing.T) {
	ctx := context.Background()

	metrics := []string{
		domain.MetricTotalUsers,
		domain.MetricActiveJobs,
		domain.MetricTotalEmployers,
		domain.MetricTalentPool,
	}

	t.Run("Should report zero growth on a zero baseline", func(t *testing.T) {
		repo := new(MockDashboardRepo)
		uc := usecase.NewDashboardUsecase(repo)

		for _, name := range metrics {
			repo.On("CountMetric", ctx, name, 30, 7).
				Return(int64(12), int64(0), []int64{0, 0, 2, 4, 6, 9, 12}, nil)
		}
		repo.On("SeekersWithSkills", ctx).Return(int64(0), nil)
		repo.On("TopSkills", ctx, 5).Return([]domain.SkillCount{}, nil)
		repo.On("CategoryDistribution", ctx, 6).Return([]domain.CategoryJobCount{}, nil)

		dashboard, err := uc.AdminDashboard(ctx)
		assert.NoError(t, err)
		for _, name := range metrics {
			assert.Equal(t, float64(0), dashboard.Overview[name].Growth)
			assert.Equal(t, int64(12), dashboard.Overview[name].Value)
		}
	})

	t.Run("Should compute growth against the 30-day baseline", func(t *testing.T) {
		repo := new(MockDashboardRepo)
		uc := usecase.NewDashboardUsecase(repo)

		for _, name := range metrics {
			repo.On("CountMetric", ctx, name, 30, 7).
				Return(int64(10), int64(8), []int64{8, 8, 8, 9, 9, 10, 10}, nil)
		}
		repo.On("SeekersWithSkills", ctx).Return(int64(4), nil)
		repo.On("TopSkills", ctx, 5).Return([]domain.SkillCount{{Name: "Go", Count: 4}}, nil)
		repo.On("CategoryDistribution", ctx, 6).
			Return([]domain.CategoryJobCount{{Name: "Engineering", JobsCount: 3}}, nil)

		dashboard, err := uc.AdminDashboard(ctx)
		assert.NoError(t, err)
		assert.InDelta(t, 25.0, dashboard.Overview[domain.MetricTotalUsers].Growth, 0.001)
		assert.Equal(t, int64(4), dashboard.TalentInsights.SeekersWithSkills)
		assert.Len(t, dashboard.TalentInsights.TopSkills, 1)
		assert.Len(t, dashboard.MarketActivity.CategoryDistribution, 1)
	})
}
