package main

import (
	"context"
	"log/slog"
	"os"

	"tableside/cmd/bootstrap"
	"tableside/internal/infra/repository"
	"tableside/internal/usecase/commands"
	"tableside/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// The data layer has no network surface; the binary just wires the graph,
// verifies the store is reachable and holds the pool open for embedders.
func announceReady(lc fx.Lifecycle, pool *pgxpool.Pool, logger *slog.Logger,
	_ commands.OrderCommands, _ commands.TableCommands,
	_ queries.TableQueries, _ queries.OrderQueries,
	_ *repository.DishRepository, _ *repository.IngredientRepository,
	_ *repository.OrderItemRepository, _ *repository.CustomerRepository,
	_ *repository.StaffRepository, _ *repository.PaymentRepository,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return err
			}
			logger.Info("data layer ready")
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("data layer stopping")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(
			announceReady,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}
}
