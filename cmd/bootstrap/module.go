package bootstrap

import (
	"slotbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.UseCaseModule,
	JWTModule,
	components.HandlerModule,
	JobsModule,
)
