package components

import (
	"cashback-tracker/internal/infra/ledger"
	repo_impl "cashback-tracker/internal/infra/repository"
	"cashback-tracker/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Concrete repository kept available for the startup seeder.
		repo_impl.NewResellerRepository,
		fx.Annotate(
			repo_impl.NewResellerRepository,
			fx.As(new(usecase.ResellerRepository)),
		),
		fx.Annotate(
			repo_impl.NewPurchaseRepository,
			fx.As(new(usecase.PurchaseRepository)),
		),
		fx.Annotate(
			repo_impl.NewTokenStore,
			fx.As(new(usecase.TokenStore)),
		),
		fx.Annotate(
			ledger.NewClient,
			fx.As(new(usecase.LedgerClient)),
		),
	),
)
