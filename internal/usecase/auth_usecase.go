package usecase

import (
	"context"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	seekerRepo   domain.SeekerRepository
	employerRepo domain.EmployerRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo domain.UserRepository,
	seekerRepo domain.SeekerRepository,
	employerRepo domain.EmployerRepository,
	jwtSecret string,
	tokenTTLHours int,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		seekerRepo:   seekerRepo,
		employerRepo: employerRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     time.Duration(tokenTTLHours) * time.Hour,
	}
}

// Login verifies credentials and issues an HS256 token. The payload carries
// role flags and the attached profile so the SPA can route without a second
// round trip.
func (uc *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.AuthenticatedUser, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		// Same message whether the email or the password was wrong
		return "", nil, apperror.Unprocessable("Validation error", map[string][]string{
			"email": {"The provided credentials are incorrect."},
		})
	}

	if user.Status != domain.UserStatusActive {
		return "", nil, apperror.Forbidden(fmt.Sprintf("Login blocked. Your account status is: %s.", user.Status))
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", user.ID),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(uc.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.jwtSecret)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	auth := &domain.AuthenticatedUser{
		User:       user,
		IsAdmin:    user.IsAdmin(),
		IsSeeker:   user.IsSeeker(),
		IsEmployer: user.IsEmployer(),
	}
	if auth.IsSeeker {
		auth.SeekerProfile, _ = uc.seekerRepo.GetByUserID(ctx, user.ID)
	}
	if auth.IsEmployer {
		auth.EmployerProfile, _ = uc.employerRepo.GetByUserID(ctx, user.ID)
	}

	return token, auth, nil
}

// GetCurrentUser resolves the authenticated user from a token subject. The
// role comes from the database row, never from token claims.
func (uc *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Unauthorized("User not found")
	}
	return user, nil
}
