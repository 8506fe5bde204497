package domain

import "context"

// DashboardMetric is one admin overview card: current value, growth against
// thirty days ago, and a seven-point sparkline.
type DashboardMetric struct {
	Value     int64   `json:"value"`
	Growth    float64 `json:"growth"`
	Sparkline []int64 `json:"sparkline"`
}

type SkillCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type CategoryJobCount struct {
	Name      string `json:"name"`
	JobsCount int64  `json:"jobs_count"`
}

type AdminDashboard struct {
	Overview map[string]DashboardMetric `json:"overview"`

	TalentInsights struct {
		SeekersWithSkills int64        `json:"seekers_with_skills"`
		TopSkills         []SkillCount `json:"top_skills"`
	} `json:"talent_insights"`

	MarketActivity struct {
		CategoryDistribution []CategoryJobCount `json:"category_distribution"`
	} `json:"market_activity"`
}

// DashboardRepository runs the aggregate queries behind the admin dashboard.
// Pure aggregation, no invariants of its own.
type DashboardRepository interface {
	// CountMetric returns the current value, the value as of daysAgo, and a
	// sparkline of the last sparkPoints days for the named metric.
	CountMetric(ctx context.Context, metric string, daysAgo, sparkPoints int) (current, previous int64, sparkline []int64, err error)
	SeekersWithSkills(ctx context.Context) (int64, error)
	TopSkills(ctx context.Context, limit int) ([]SkillCount, error)
	CategoryDistribution(ctx context.Context, limit int) ([]CategoryJobCount, error)
}

// Metric names accepted by DashboardRepository.CountMetric.
const (
	MetricTotalUsers     = "totalUsers"
	MetricActiveJobs     = "activeJobs"
	MetricTotalEmployers = "totalEmployers"
	MetricTalentPool     = "talentPool"
)

type DashboardUsecase interface {
	AdminDashboard(ctx context.Context) (*AdminDashboard, error)
}
