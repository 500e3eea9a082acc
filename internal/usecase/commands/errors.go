package commands

//go:generate mockgen -destination=../../testutil/mock/commands/mock_commands.go -package=commands_mock lending-core/internal/usecase/commands AuthCommands,ItemCommands,LoanCommands,MaintenanceCommands,ReservationCommands

import (
	"lending-core/internal/infra"
	"lending-core/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errs.NewKind(errs.ErrNotFound, "item not found")
	ErrLoanNotFound        = errs.NewKind(errs.ErrNotFound, "loan not found")
	ErrReservationNotFound = errs.NewKind(errs.ErrNotFound, "reservation not found")
	ErrUserNotFound        = errs.NewKind(errs.ErrNotFound, "user not found")
	ErrItemOutOfOrder      = errs.NewKind(errs.ErrValidation, "item is out of order")
	ErrUserInactive        = errs.NewKind(errs.ErrValidation, "user is inactive")
	ErrNotReservationOwner = errs.NewKind(errs.ErrUnauthorized, "only the owner or an admin may modify this reservation")
	ErrReserveForOthers    = errs.NewKind(errs.ErrUnauthorized, "members may only reserve for themselves")
	ErrStaffRequired       = errs.NewKind(errs.ErrUnauthorized, "librarian or admin role required")
	ErrAdminRequired       = errs.NewKind(errs.ErrUnauthorized, "admin role required")
	ErrStatusRefresh       = errs.NewKind(errs.ErrInconsistency, "item status could not be refreshed")
)

// notFound swaps a repository NOT_FOUND for the usecase sentinel, naming the
// missing id in the message.
func notFound(err error, sentinel error, id uuid.UUID) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrapf(sentinel, "id %s", id)
	}
	return err
}
