package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

const (
	growthWindowDays = 30
	sparklinePoints  = 7
	topSkillsLimit   = 5
	topCategoryLimit = 6
)

type dashboardUsecase struct {
	dashboardRepo domain.DashboardRepository
}

// NewDashboardUsecase creates a new admin-dashboard usecase
func NewDashboardUsecase(dashboardRepo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{dashboardRepo: dashboardRepo}
}

// AdminDashboard builds the admin overview: four metric cards with 30-day
// growth and 7-point sparklines, plus talent and market aggregates.
func (uc *dashboardUsecase) AdminDashboard(ctx context.Context) (*domain.AdminDashboard, error) {
	dashboard := &domain.AdminDashboard{
		Overview: make(map[string]domain.DashboardMetric, 4),
	}

	metrics := []string{
		domain.MetricTotalUsers,
		domain.MetricActiveJobs,
		domain.MetricTotalEmployers,
		domain.MetricTalentPool,
	}
	for _, name := range metrics {
		current, previous, sparkline, err := uc.dashboardRepo.CountMetric(ctx, name, growthWindowDays, sparklinePoints)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		dashboard.Overview[name] = domain.DashboardMetric{
			Value:     current,
			Growth:    growthPercent(current, previous),
			Sparkline: sparkline,
		}
	}

	seekers, err := uc.dashboardRepo.SeekersWithSkills(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	topSkills, err := uc.dashboardRepo.TopSkills(ctx, topSkillsLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	dashboard.TalentInsights.SeekersWithSkills = seekers
	dashboard.TalentInsights.TopSkills = topSkills

	categories, err := uc.dashboardRepo.CategoryDistribution(ctx, topCategoryLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	dashboard.MarketActivity.CategoryDistribution = categories

	return dashboard, nil
}

// growthPercent reports the change from previous to current as a percentage.
// A zero baseline reads as 0% growth regardless of the current count.
func growthPercent(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
