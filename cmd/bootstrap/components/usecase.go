package components

import (
	"time"

	"cashback-tracker/internal/pkg/clock"
	"cashback-tracker/internal/pkg/config"
	"cashback-tracker/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewResellerUseCase,
		usecase.NewPurchaseUseCase,
		usecase.NewBalanceUseCase,
		usecase.NewTokenValidator,
	),
)

func NewResellerUseCase(repo usecase.ResellerRepository, tokens usecase.TokenStore, clk clock.Clock, cfg config.Config) (usecase.ResellerUseCase, error) {
	ttl, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	return usecase.NewResellerUseCase(repo, tokens, clk, ttl), nil
}
