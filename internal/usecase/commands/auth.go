package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"service-marketplace/internal/domain/user"
	reqdto "service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/infra"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/pkg/jwt"
	"service-marketplace/internal/pkg/password"
	"service-marketplace/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.NotFound("user not found")
	ErrInvalidCredentials   = errs.Validation("invalid credentials")
	ErrUserInactive         = errs.Forbidden("user inactive")
	ErrEmailTaken           = errs.Conflict("email is already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.Validation("token validation failed")
)

type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

//go:generate mockgen -destination=../../../tests/mock/commands/auth.go -package=commandsmock . AuthCommands

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow          shared.UnitOfWork
	tokenService TokenService
}

func NewAuthCommands(uow shared.UnitOfWork, tokenService TokenService) AuthCommands {
	return &authCommandsImpl{
		uow:          uow,
		tokenService: tokenService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	reg, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.Hash(reg.Credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u := user.NewUser(reg.Credentials.Email(), hash, reg.FullName, reg.Role)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user registered", "user_id", u.ID(), "role", u.Role(), "status", u.AccountStatus())
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, credentials.Email())
		if err != nil {
			// Same error as a password mismatch to prevent user enumeration
			return notFoundAs(err, ErrInvalidCredentials)
		}
		if err := password.Verify(found.PasswordHash(), credentials.Password().Value()); err != nil {
			if errs.Is(err, password.ErrMismatch) {
				return ErrInvalidCredentials
			}
			return err
		}
		if !found.CanLogin() {
			return ErrUserInactive
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, u.ID())
	})
	if err != nil {
		// Not critical, the login itself succeeded
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
	}

	pair, err := a.issue(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	return &LoginResult{UserID: u.ID(), Role: u.Role(), TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and may sign in
	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByID(ctx, claims.UserID)
		if err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		u = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !u.CanLogin() {
		return nil, ErrUserInactive
	}

	// Role comes from storage so an approval or rejection takes effect on refresh
	return a.issue(u.ID(), u.Role())
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.tokenService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.tokenService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
