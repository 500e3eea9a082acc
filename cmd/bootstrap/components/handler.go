package components

import (
	"lending-core/internal/handler"
	"lending-core/internal/handler/api"
	"lending-core/internal/handler/middleware"
	"lending-core/internal/usecase/commands"
	"lending-core/internal/worker"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewItemHandler,
		api.NewLoanHandler,
		api.NewReservationHandler,
		NewMaintenanceHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewMaintenanceHandler(cmds commands.MaintenanceCommands, sweeper *worker.Sweeper) *api.MaintenanceHandler {
	return api.NewMaintenanceHandler(cmds, sweeper)
}

func NewHandlers(
	auth *api.AuthHandler,
	item *api.ItemHandler,
	loan *api.LoanHandler,
	reservation *api.ReservationHandler,
	maintenance *api.MaintenanceHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Item:        item,
		Loan:        loan,
		Reservation: reservation,
		Maintenance: maintenance,
	}
}
