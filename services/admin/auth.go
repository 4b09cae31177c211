package admin

import (
	"context"
	"errors"

	adminRepo "sctclinic/database/repository/admin"
	"sctclinic/models"
	"sctclinic/utils"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// AuthError covers every credential failure. Handlers map it to 401 without
// telling the caller whether the email or the password was wrong.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// AuthService authenticates dashboard admins and manages their sessions.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)
	Logout(token string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo     adminRepo.AdminRepository
	Sessions *redis.Client
}

func (s *DefaultAuthService) Login(ctx context.Context, email, password string) (string, *models.Admin, error) {
	adm, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, &AuthError{Message: "Invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return "", nil, &AuthError{Message: "Invalid email or password"}
	}

	token, err := utils.GenerateToken(adm.ID, adm.Email, utils.AdminSessionTTL)
	if err != nil {
		return "", nil, err
	}
	if err := utils.SaveAdminSession(s.Sessions, utils.HashToken(token), adm.ID); err != nil {
		return "", nil, err
	}
	return token, adm, nil
}

func (s *DefaultAuthService) Logout(token string) error {
	if token == "" {
		return errors.New("missing token")
	}
	return utils.DeleteAdminSession(s.Sessions, utils.HashToken(token))
}
