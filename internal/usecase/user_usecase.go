package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	userRepo domain.UserRepository
	roleRepo domain.RoleRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo domain.UserRepository, roleRepo domain.RoleRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, roleRepo: roleRepo}
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.userRepo.Fetch(ctx)
}

func (uc *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (uc *userUsecase) CreateUser(ctx context.Context, user *domain.User, plainPassword string) error {
	if _, err := uc.roleRepo.GetByID(ctx, user.RoleID); err != nil {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"role_id": {"The selected role id is invalid."},
		})
	}

	user.Email = strings.ToLower(user.Email)
	if existing, err := uc.userRepo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"email": {"The email has already been taken."},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal(err)
	}
	user.Password = string(hash)
	user.Status = domain.UserStatusActive

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, user *domain.User, plainPassword string) error {
	existing, err := uc.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return apperror.NotFound("User not found")
	}

	if _, err := uc.roleRepo.GetByID(ctx, user.RoleID); err != nil {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"role_id": {"The selected role id is invalid."},
		})
	}

	user.Email = strings.ToLower(user.Email)
	if other, err := uc.userRepo.GetByEmail(ctx, user.Email); err == nil && other != nil && other.ID != user.ID {
		return apperror.Unprocessable("Validation error", map[string][]string{
			"email": {"The email has already been taken."},
		})
	}

	user.Password = existing.Password
	if plainPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
		if err != nil {
			return apperror.Internal(err)
		}
		user.Password = string(hash)
	}
	user.Status = existing.Status

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ToggleActive flips ACTIVE<->INACTIVE. Accounts are never hard-deleted.
func (uc *userUsecase) ToggleActive(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if user.Status == domain.UserStatusSuspended {
		return nil, apperror.BadRequest("Suspended users cannot be toggled. Unsuspend them first.")
	}

	newStatus := domain.UserStatusInactive
	if user.Status == domain.UserStatusInactive {
		newStatus = domain.UserStatusActive
	}
	if err := uc.userRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, apperror.Internal(err)
	}
	user.Status = newStatus
	return user, nil
}

// ToggleSuspend flips ACTIVE<->SUSPENDED
func (uc *userUsecase) ToggleSuspend(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	if user.Status == domain.UserStatusInactive {
		return nil, apperror.BadRequest("Inactive users cannot be suspended")
	}

	newStatus := domain.UserStatusSuspended
	if user.Status == domain.UserStatusSuspended {
		newStatus = domain.UserStatusActive
	}
	if err := uc.userRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, apperror.Internal(err)
	}
	user.Status = newStatus
	return user, nil
}

type roleUsecase struct {
	roleRepo domain.RoleRepository
}

// NewRoleUsecase creates a new role usecase
func NewRoleUsecase(roleRepo domain.RoleRepository) domain.RoleUsecase {
	return &roleUsecase{roleRepo: roleRepo}
}

func (uc *roleUsecase) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return uc.roleRepo.Fetch(ctx)
}

func (uc *roleUsecase) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	role, err := uc.roleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Role not found")
	}
	return role, nil
}

func (uc *roleUsecase) CreateRole(ctx context.Context, role *domain.Role) error {
	if role.Status == "" {
		role.Status = domain.UserStatusActive
	}
	if err := uc.roleRepo.Create(ctx, role); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *roleUsecase) UpdateRole(ctx context.Context, role *domain.Role) error {
	if _, err := uc.roleRepo.GetByID(ctx, role.ID); err != nil {
		return apperror.NotFound("Role not found")
	}
	if err := uc.roleRepo.Update(ctx, role); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *roleUsecase) DeleteRole(ctx context.Context, id int64) error {
	if _, err := uc.roleRepo.GetByID(ctx, id); err != nil {
		return apperror.NotFound("Role not found")
	}
	err := uc.roleRepo.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Role not found")
	}
	if err != nil {
		return apperror.Conflict("Role is still assigned to users")
	}
	return nil
}
