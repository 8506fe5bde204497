package domain

import (
	"context"
	"time"
)

type JobCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Desc      *string   `json:"desc,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// OpenJobCount is populated by aggregate listings only
	OpenJobCount *int64 `json:"open_job_count,omitempty"`
}

type CategoryRepository interface {
	Fetch(ctx context.Context) ([]JobCategory, error)
	GetByID(ctx context.Context, id int64) (*JobCategory, error)
	// ExistsByName reports whether another category already carries the name,
	// case-insensitively. excludeID skips one row so updates can keep their
	// own name; pass 0 on create.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, category *JobCategory) error
	Update(ctx context.Context, category *JobCategory) error
	Delete(ctx context.Context, id int64) error
	// TopByOpenJobs returns categories that currently have open posts,
	// busiest first.
	TopByOpenJobs(ctx context.Context, limit int) ([]JobCategory, error)
}

type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]JobCategory, error)
	GetCategory(ctx context.Context, id int64) (*JobCategory, error)
	CreateCategory(ctx context.Context, category *JobCategory) error
	UpdateCategory(ctx context.Context, category *JobCategory) error
	DeleteCategory(ctx context.Context, id int64) error
}
