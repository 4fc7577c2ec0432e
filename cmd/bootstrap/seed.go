package bootstrap

import (
	"context"
	"log/slog"

	"cashback-tracker/internal/infra/repository"
	"cashback-tracker/internal/infra/seed"
	"cashback-tracker/internal/pkg/config"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(seedPreApproved),
)

// seedPreApproved loads the pre-approved allowlist into Postgres on
// startup. A missing file means an empty allowlist, not a failure.
func seedPreApproved(lc fx.Lifecycle, cfg config.Config, repo *repository.ResellerRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			cpfs, err := seed.LoadPreApproved(cfg.Seed.PreApprovedFile)
			if err != nil {
				return err
			}
			if len(cpfs) == 0 {
				return nil
			}
			if err := repo.UpsertPreApproved(ctx, cpfs); err != nil {
				return err
			}
			slog.Info("pre-approved allowlist seeded", "count", len(cpfs))
			return nil
		},
	})
}
