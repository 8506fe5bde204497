package domain

import (
	"context"
	"time"
)

type Skill struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Proficiency is populated when the skill is loaded through a seeker
	// profile (0..100), absent otherwise.
	Proficiency *int `json:"proficiency,omitempty"`
}

type SkillRepository interface {
	Fetch(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	// ExistsByName reports whether another skill already carries the name,
	// case-insensitively. excludeID skips one row so updates can keep their
	// own name; pass 0 on create.
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	GetSkill(ctx context.Context, id int64) (*Skill, error)
	CreateSkill(ctx context.Context, skill *Skill) error
	UpdateSkill(ctx context.Context, skill *Skill) error
	DeleteSkill(ctx context.Context, id int64) error
}
