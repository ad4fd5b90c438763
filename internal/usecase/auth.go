package usecase

import (
	"context"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/config"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/jwt"
	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/password"
)

var (
	ErrAuthDisabled       = errs.New("staff authentication is disabled")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AuthUseCase guards the clinic's shared staff password.
// When no password hash is configured the service runs open.
type AuthUseCase interface {
	Enabled() bool
	Login(ctx context.Context, plain string) (*LoginResult, error)
}

type authUseCaseImpl struct {
	passwordHash string
	jwtService   *jwt.Service
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		passwordHash: cfg.Staff.PasswordHash,
		jwtService:   jwtService,
	}
}

func (a *authUseCaseImpl) Enabled() bool {
	return a.passwordHash != ""
}

func (a *authUseCaseImpl) Login(_ context.Context, plain string) (*LoginResult, error) {
	if !a.Enabled() {
		return nil, ErrAuthDisabled
	}

	if err := password.ComparePassword(a.passwordHash, plain); err != nil {
		if errs.IsAny(err, password.ErrComparisonFailed, password.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, expiresAt, err := a.jwtService.GenerateToken(jwt.RoleStaff, jwt.RoleStaff)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
