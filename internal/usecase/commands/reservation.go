package commands

import (
	"context"
	"log/slog"
	"time"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/history"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/domain/user"
	"lending-core/internal/infra"
	"lending-core/internal/pkg/clock"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	ItemID    uuid.UUID
	UserID    uuid.UUID // uuid.Nil reserves for the actor
	StartDate time.Time
	EndDate   time.Time
}

type ModifyReservationInput struct {
	ReservationID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
}

type ReservationResult struct {
	Reservation *reservation.Reservation
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, in CreateReservationInput, actor user.Actor) (*ReservationResult, error)
	ModifyReservation(ctx context.Context, in ModifyReservationInput, actor user.Actor) (*ReservationResult, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*ReservationResult, error)
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk}
}

// CreateReservation checks only other confirmed reservations. Loans on the
// same item do not block a reservation.
func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, in CreateReservationInput, actor user.Actor) (*ReservationResult, error) {
	if in.UserID == uuid.Nil {
		in.UserID = actor.ID
	}
	if in.UserID != actor.ID && !actor.IsStaff() {
		return nil, ErrReserveForOthers
	}
	now := c.clock.Now()

	period, err := availability.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	candidate, err := reservation.NewReservation(in.ItemID, in.UserID, period, now)
	if err != nil {
		return nil, err
	}

	reads := c.uow.CommandReads()
	if _, err := reads.ItemByID(ctx, in.ItemID); err != nil {
		return nil, notFound(err, ErrItemNotFound, in.ItemID)
	}
	holder, err := reads.UserByID(ctx, in.UserID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound, in.UserID)
	}
	if !holder.IsActive {
		return nil, ErrUserInactive
	}
	if err := checkReservationConflicts(ctx, reads, in.ItemID, period, nil); err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Items().LockByID(ctx, in.ItemID); err != nil {
			return notFound(err, ErrItemNotFound, in.ItemID)
		}
		if err := checkReservationConflicts(ctx, tx.Reads(), in.ItemID, period, nil); err != nil {
			return err
		}
		if err := tx.Reservations().Create(ctx, candidate); err != nil {
			return err
		}
		entry, err := history.NewReservationEntry(candidate.ID(), in.ItemID, actor.IDPtr(),
			history.ReservationCreate, "", periodDetails(period), now)
		if err != nil {
			return err
		}
		return tx.History().AppendReservation(ctx, entry)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrUserNotFound
		}
		return nil, asConflict(ctx, err, func(ctx context.Context) error {
			return checkReservationConflicts(ctx, c.uow.CommandReads(), in.ItemID, period, nil)
		})
	}

	return &ReservationResult{Reservation: candidate}, nil
}

// ModifyReservation reschedules a confirmed reservation. Refusals for
// ownership or conflicts are themselves recorded in the reservation history.
func (c *reservationCommandsImpl) ModifyReservation(ctx context.Context, in ModifyReservationInput, actor user.Actor) (*ReservationResult, error) {
	now := c.clock.Now()
	reads := c.uow.CommandReads()

	current, err := reads.ReservationByID(ctx, in.ReservationID)
	if err != nil {
		return nil, notFound(err, ErrReservationNotFound, in.ReservationID)
	}
	requested := history.PeriodDetails{Start: in.StartDate, End: in.EndDate}

	if !current.IsOwnedBy(actor.ID) && !actor.IsAdmin() {
		c.audit(ctx, current, actor, history.ReservationUnauthorizedModify, history.ModifyDetails{
			Previous:  periodDetailsPtr(current.Period()),
			Requested: requested,
		}, now)
		return nil, ErrNotReservationOwner
	}

	period, err := availability.NewPeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	previous := current.Period()
	if err := current.Reschedule(period, now); err != nil {
		return nil, err
	}

	exclude := current.ID()
	recheck := func(ctx context.Context, reads shared.CommandReads) error {
		return checkReservationConflicts(ctx, reads, current.ItemID(), period, &exclude)
	}
	if err := recheck(ctx, reads); err != nil {
		return nil, c.modifyFailed(ctx, err, current, actor, previous, requested, now)
	}

	var updated *reservation.Reservation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Items().LockByID(ctx, current.ItemID()); err != nil {
			return notFound(err, ErrItemNotFound, current.ItemID())
		}
		r, err := tx.Reads().ReservationByID(ctx, in.ReservationID)
		if err != nil {
			return notFound(err, ErrReservationNotFound, in.ReservationID)
		}
		before := r.Period()
		if err := r.Reschedule(period, now); err != nil {
			return err
		}
		if err := recheck(ctx, tx.Reads()); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, r); err != nil {
			return err
		}
		entry, err := history.NewReservationEntry(r.ID(), r.ItemID(), actor.IDPtr(), history.ReservationModify, "",
			history.ModifyDetails{Previous: periodDetailsPtr(before), Requested: requested}, now)
		if err != nil {
			return err
		}
		updated = r
		return tx.History().AppendReservation(ctx, entry)
	})
	if err != nil {
		err = asConflict(ctx, err, func(ctx context.Context) error {
			return recheck(ctx, c.uow.CommandReads())
		})
		return nil, c.modifyFailed(ctx, err, current, actor, previous, requested, now)
	}

	return &ReservationResult{Reservation: updated}, nil
}

// modifyFailed records MODIFY_FAILED when err is a conflict and passes err through.
func (c *reservationCommandsImpl) modifyFailed(ctx context.Context, err error, r *reservation.Reservation, actor user.Actor, previous availability.Period, requested history.PeriodDetails, now time.Time) error {
	var conflictErr *availability.ConflictError
	if !errs.As(err, &conflictErr) {
		return err
	}
	c.audit(ctx, r, actor, history.ReservationModifyFailed, history.ModifyDetails{
		Previous:  periodDetailsPtr(previous),
		Requested: requested,
		Conflicts: conflictDetails(conflictErr.Conflicts),
	}, now)
	return err
}

// audit commits a reservation history row on its own. An actor the users
// table no longer knows is dropped from the row rather than losing it. A
// failure here is logged; the caller still reports the original refusal.
func (c *reservationCommandsImpl) audit(ctx context.Context, r *reservation.Reservation, actor user.Actor, action history.ReservationAction, details any, now time.Time) {
	write := func(actorID *uuid.UUID) error {
		return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			entry, err := history.NewReservationEntry(r.ID(), r.ItemID(), actorID, action, "", details, now)
			if err != nil {
				return err
			}
			return tx.History().AppendReservation(ctx, entry)
		})
	}

	err := write(actor.IDPtr())
	if err != nil && actor.IDPtr() != nil && infra.IsKind(err, infra.KindForeignKeyViolated) {
		slog.Warn("reservation history actor unknown, recording without it",
			"reservation_id", r.ID(), "actor_id", actor.ID, "action", string(action))
		err = write(nil)
	}
	if err != nil {
		slog.Error("failed to record reservation history",
			"reservation_id", r.ID(), "action", string(action), "error", err.Error())
	}
}

// CancelReservation is open to any caller. The history row names the acting
// user when they are known, and the owner otherwise.
func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID, actor user.Actor) (*ReservationResult, error) {
	now := c.clock.Now()

	var cancelled *reservation.Reservation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return notFound(err, ErrReservationNotFound, reservationID)
		}
		if _, err := tx.Items().LockByID(ctx, r.ItemID()); err != nil {
			return notFound(err, ErrItemNotFound, r.ItemID())
		}
		if err := r.Cancel(now); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, r); err != nil {
			return err
		}

		actorID := r.UserID()
		if actor.ID != uuid.Nil {
			if _, err := tx.Reads().UserByID(ctx, actor.ID); err == nil {
				actorID = actor.ID
			} else if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
		}

		entry, err := history.NewReservationEntry(r.ID(), r.ItemID(), &actorID, history.ReservationCancel, "",
			periodDetails(r.Period()), now)
		if err != nil {
			return err
		}
		cancelled = r
		return tx.History().AppendReservation(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return &ReservationResult{Reservation: cancelled}, nil
}

func periodDetails(p availability.Period) history.PeriodDetails {
	return history.PeriodDetails{Start: p.Start(), End: p.End()}
}

func periodDetailsPtr(p availability.Period) *history.PeriodDetails {
	d := periodDetails(p)
	return &d
}

func conflictDetails(conflicts []availability.Holding) []history.ConflictDetail {
	out := make([]history.ConflictDetail, 0, len(conflicts))
	for _, h := range conflicts {
		out = append(out, history.ConflictDetail{
			Kind:       string(h.Kind),
			ID:         h.ID,
			HolderID:   h.HolderID,
			HolderName: h.HolderName,
			Start:      h.Period.Start(),
			End:        h.Period.End(),
		})
	}
	return out
}
