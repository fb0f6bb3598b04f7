package bootstrap

import (
	"time"

	"service-marketplace/internal/pkg/config"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}
	if access >= refresh {
		return nil, errs.New("JWT_ACCESS_TOKEN_DURATION must be shorter than JWT_REFRESH_TOKEN_DURATION")
	}

	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
