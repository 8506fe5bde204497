package domain

import (
	"context"
	"time"
)

// User status constants
const (
	UserStatusActive    = "ACTIVE"
	UserStatusInactive  = "INACTIVE"
	UserStatusSuspended = "SUSPENDED"
)

// Role name constants (seeded)
const (
	RoleAdmin    = "Admin"
	RoleSeeker   = "Job Seeker"
	RoleEmployer = "Employer"
)

type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Desc      *string   `json:"desc,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type User struct {
	ID        int64     `json:"id"`
	RoleID    int64     `json:"role_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Role *Role `json:"role,omitempty"`
}

func (u *User) IsAdmin() bool    { return u.Role != nil && u.Role.Name == RoleAdmin }
func (u *User) IsSeeker() bool   { return u.Role != nil && u.Role.Name == RoleSeeker }
func (u *User) IsEmployer() bool { return u.Role != nil && u.Role.Name == RoleEmployer }

type UserRepository interface {
	Fetch(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type RoleRepository interface {
	Fetch(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int64) (*Role, error)
	Create(ctx context.Context, role *Role) error
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, user *User, plainPassword string) error
	UpdateUser(ctx context.Context, user *User, plainPassword string) error
	// ToggleActive flips ACTIVE<->INACTIVE; suspended users must be unsuspended first.
	ToggleActive(ctx context.Context, id int64) (*User, error)
	// ToggleSuspend flips ACTIVE<->SUSPENDED; inactive users cannot be suspended.
	ToggleSuspend(ctx context.Context, id int64) (*User, error)
}

type RoleUsecase interface {
	ListRoles(ctx context.Context) ([]Role, error)
	GetRole(ctx context.Context, id int64) (*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	UpdateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id int64) error
}

// AuthenticatedUser is the login payload returned to the SPA so it can route
// to the right surface without a second round trip.
type AuthenticatedUser struct {
	User            *User            `json:"user"`
	IsAdmin         bool             `json:"is_admin"`
	IsSeeker        bool             `json:"is_seeker"`
	IsEmployer      bool             `json:"is_employer"`
	SeekerProfile   *SeekerProfile   `json:"profile,omitempty"`
	EmployerProfile *EmployerProfile `json:"employer_profile,omitempty"`
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (token string, user *AuthenticatedUser, err error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
