package postgres

import (
	"context"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new admin-dashboard repository
func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

// metricSources maps a metric name to the FROM clause and filter its counts
// run against. Every metric is scoped to ACTIVE accounts; rows owned by
// deactivated or suspended users do not count. Growth and sparklines are
// cumulative over the source row's created_at.
var metricSources = map[string]struct {
	from    string
	timeCol string
	filter  string
}{
	domain.MetricTotalUsers: {
		from:    "users u",
		timeCol: "u.created_at",
		filter:  "u.status = 'ACTIVE'",
	},
	domain.MetricActiveJobs: {
		from:    "job_posts j JOIN employer_profiles e ON j.employer_profile_id = e.id JOIN users u ON e.user_id = u.id",
		timeCol: "j.created_at",
		filter:  "j.status = 'OPEN' AND u.status = 'ACTIVE'",
	},
	domain.MetricTotalEmployers: {
		from:    "employer_profiles e JOIN users u ON e.user_id = u.id",
		timeCol: "e.created_at",
		filter:  "u.status = 'ACTIVE'",
	},
	domain.MetricTalentPool: {
		from:    "job_seeker_profiles p JOIN users u ON p.user_id = u.id",
		timeCol: "p.created_at",
		filter:  "u.status = 'ACTIVE'",
	},
}

func (r *dashboardRepo) CountMetric(ctx context.Context, metric string, daysAgo, sparkPoints int) (int64, int64, []int64, error) {
	src, ok := metricSources[metric]
	if !ok {
		return 0, 0, nil, fmt.Errorf("unknown dashboard metric %q", metric)
	}

	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE %s <= NOW() - ($1 * INTERVAL '1 day') AND %s`,
		src.from, src.timeCol, src.filter,
	)

	var current, previous int64
	if err := r.db.QueryRow(ctx, query, 0).Scan(&current); err != nil {
		return 0, 0, nil, err
	}
	if err := r.db.QueryRow(ctx, query, daysAgo).Scan(&previous); err != nil {
		return 0, 0, nil, err
	}

	sparkline := make([]int64, 0, sparkPoints)
	for i := sparkPoints - 1; i >= 0; i-- {
		var v int64
		if err := r.db.QueryRow(ctx, query, i).Scan(&v); err != nil {
			return 0, 0, nil, err
		}
		sparkline = append(sparkline, v)
	}

	return current, previous, sparkline, nil
}

func (r *dashboardRepo) SeekersWithSkills(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT js.job_seeker_profile_id)
		FROM job_seeker_skills js
		JOIN job_seeker_profiles p ON js.job_seeker_profile_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE u.status = 'ACTIVE'`
	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	return count, err
}

func (r *dashboardRepo) TopSkills(ctx context.Context, limit int) ([]domain.SkillCount, error) {
	query := `
		SELECT s.name, COUNT(js.job_seeker_profile_id) AS holders
		FROM skills s
		JOIN job_seeker_skills js ON js.skill_id = s.id
		JOIN job_seeker_profiles p ON js.job_seeker_profile_id = p.id
		JOIN users u ON p.user_id = u.id
		WHERE u.status = 'ACTIVE'
		GROUP BY s.id
		ORDER BY holders DESC, s.name
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.SkillCount
	for rows.Next() {
		var sc domain.SkillCount
		if err := rows.Scan(&sc.Name, &sc.Count); err != nil {
			return nil, err
		}
		skills = append(skills, sc)
	}
	return skills, nil
}

func (r *dashboardRepo) CategoryDistribution(ctx context.Context, limit int) ([]domain.CategoryJobCount, error) {
	query := `
		SELECT c.name, COUNT(j.id) AS jobs_count
		FROM job_categories c
		JOIN job_posts j ON j.job_category_id = c.id AND j.status = 'OPEN'
		JOIN employer_profiles e ON j.employer_profile_id = e.id
		JOIN users u ON e.user_id = u.id AND u.status = 'ACTIVE'
		GROUP BY c.id
		ORDER BY jobs_count DESC, c.name
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CategoryJobCount
	for rows.Next() {
		var cc domain.CategoryJobCount
		if err := rows.Scan(&cc.Name, &cc.JobsCount); err != nil {
			return nil, err
		}
		categories = append(categories, cc)
	}
	return categories, nil
}
