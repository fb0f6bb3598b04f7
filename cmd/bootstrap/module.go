package bootstrap

import (
	"service-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	SchedulingModule,
	RedisModule,
	MetricsModule,
	PaymentModule,
	components.PersistenceModule,
	NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
)
