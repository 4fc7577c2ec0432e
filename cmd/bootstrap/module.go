package bootstrap

import (
	"cashback-tracker/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	SeedModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
