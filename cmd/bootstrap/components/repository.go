package components

import (
	"tableside/internal/infra/db"
	"tableside/internal/infra/repository"
	"tableside/internal/infra/uow"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(pool *pgxpool.Pool) db.DBTX { return pool },
		uow.NewPostgresUoW,
		repository.NewDishRepository,
		repository.NewIngredientRepository,
		repository.NewOrderItemRepository,
		repository.NewCustomerRepository,
		repository.NewStaffRepository,
		repository.NewPaymentRepository,
	),
)
