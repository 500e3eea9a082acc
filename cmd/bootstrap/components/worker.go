package components

import (
	"log/slog"

	"lending-core/internal/infra/lease"
	"lending-core/internal/pkg/config"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(func(lc fx.Lifecycle, s *worker.Sweeper) {
		lc.Append(fx.Hook{
			OnStart: s.Start,
			OnStop:  s.Stop,
		})
	}),
)

func NewSweeper(maintenance commands.MaintenanceCommands, locker lease.Locker, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(maintenance, locker, cfg.Sweep, logger)
}
