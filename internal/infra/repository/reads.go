package repository

import (
	"context"
	"log/slog"

	"lending-core/internal/domain/availability"
	"lending-core/internal/domain/item"
	"lending-core/internal/domain/loan"
	"lending-core/internal/domain/reservation"
	"lending-core/internal/infra"
	"lending-core/internal/infra/repository/converter"
	"lending-core/internal/usecase/shared"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

// CommandReads answers the lookups commands make before and inside a
// transaction. Filter semantics match shared.LoanFilter.Matches and
// shared.ReservationFilter.Matches.
type CommandReads struct {
	db     DBTX
	items  *ItemRepository
	users  *UserRepository
	logger *slog.Logger
}

func NewCommandReads(db DBTX, logger *slog.Logger) *CommandReads {
	return &CommandReads{
		db:     db,
		items:  NewItemRepository(db, logger),
		users:  NewUserRepository(db, logger),
		logger: logger,
	}
}

func (r *CommandReads) ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	return r.items.FindByID(ctx, id)
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.users.SnapshotByID(ctx, id)
}

func (r *CommandReads) LoanByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	ds := SelectFrom(goqu.T(tableLoans).As("l")).Select(qualified("l", loanColumns)...).
		Where(goqu.I("l.id").Eq(id))
	row, err := CollectOne[converter.LoanRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find loan", err)
	}
	return converter.LoanFromRow(row)
}

func (r *CommandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	ds := SelectFrom(goqu.T(tableReservations).As("r")).Select(qualified("r", reservationColumns)...).
		Where(goqu.I("r.id").Eq(id))
	row, err := CollectOne[converter.ReservationRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to find reservation", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *CommandReads) Loans(ctx context.Context, f shared.LoanFilter) ([]*loan.Loan, error) {
	rows, err := CollectAll[converter.LoanRow](ctx, r.db, loansQuery(f))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list loans", err)
	}
	out := make([]*loan.Loan, 0, len(rows))
	for _, row := range rows {
		l, err := converter.LoanFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *CommandReads) Reservations(ctx context.Context, f shared.ReservationFilter) ([]*reservation.Reservation, error) {
	rows, err := CollectAll[converter.ReservationRow](ctx, r.db, reservationsQuery(f))
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list reservations", err)
	}
	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *CommandReads) LoanHoldings(ctx context.Context, f shared.LoanFilter) ([]availability.Holding, error) {
	ds := loansQuery(f).
		SelectAppend(goqu.COALESCE(goqu.I("u.name"), "").As("holder_name")).
		LeftJoin(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("l.borrower_id"))))
	rows, err := CollectAll[converter.LoanHoldingRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list loan holdings", err)
	}
	out := make([]availability.Holding, 0, len(rows))
	for _, row := range rows {
		l, err := converter.LoanFromRow(row.LoanRow)
		if err != nil {
			return nil, err
		}
		out = append(out, l.Holding(row.HolderName))
	}
	return out, nil
}

func (r *CommandReads) ReservationHoldings(ctx context.Context, f shared.ReservationFilter) ([]availability.Holding, error) {
	ds := reservationsQuery(f).
		SelectAppend(goqu.COALESCE(goqu.I("u.name"), "").As("holder_name")).
		LeftJoin(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("r.user_id"))))
	rows, err := CollectAll[converter.ReservationHoldingRow](ctx, r.db, ds)
	if err != nil {
		return nil, infra.ClassifyPgErr(r.logger, "failed to list reservation holdings", err)
	}
	out := make([]availability.Holding, 0, len(rows))
	for _, row := range rows {
		res, err := converter.ReservationFromRow(row.ReservationRow)
		if err != nil {
			return nil, err
		}
		out = append(out, res.Holding(row.HolderName))
	}
	return out, nil
}

func loansQuery(f shared.LoanFilter) *goqu.SelectDataset {
	return SelectFrom(goqu.T(tableLoans).As("l")).
		Select(qualified("l", loanColumns)...).
		Where(loanConditions(f)...).
		Order(goqu.I("l.borrowed_at").Asc(), goqu.I("l.id").Asc())
}

func loanConditions(f shared.LoanFilter) []exp.Expression {
	conds := []exp.Expression{}
	if f.ItemID != nil {
		conds = append(conds, goqu.I("l.item_id").Eq(*f.ItemID))
	}
	if f.BorrowerID != nil {
		conds = append(conds, goqu.I("l.borrower_id").Eq(*f.BorrowerID))
	}
	if len(f.Statuses) > 0 {
		values := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			values = append(values, s.String())
		}
		conds = append(conds, goqu.I("l.status").In(values))
	}
	if f.OpenOnly {
		conds = append(conds, goqu.I("l.returned_at").IsNull())
	}
	if p := f.Overlapping; p != nil {
		conds = append(conds,
			goqu.I("l.borrowed_at").Lt(p.End()),
			goqu.I("l.due_at").Gt(p.Start()),
		)
	}
	return conds
}

func reservationsQuery(f shared.ReservationFilter) *goqu.SelectDataset {
	return SelectFrom(goqu.T(tableReservations).As("r")).
		Select(qualified("r", reservationColumns)...).
		Where(reservationConditions(f)...).
		Order(goqu.I("r.start_date").Asc(), goqu.I("r.id").Asc())
}

func reservationConditions(f shared.ReservationFilter) []exp.Expression {
	conds := []exp.Expression{}
	if f.ItemID != nil {
		conds = append(conds, goqu.I("r.item_id").Eq(*f.ItemID))
	}
	if f.UserID != nil {
		conds = append(conds, goqu.I("r.user_id").Eq(*f.UserID))
	}
	if len(f.Statuses) > 0 {
		values := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			values = append(values, s.String())
		}
		conds = append(conds, goqu.I("r.status").In(values))
	}
	if f.ExcludeID != nil {
		conds = append(conds, goqu.I("r.id").Neq(*f.ExcludeID))
	}
	if f.EndingBefore != nil {
		conds = append(conds, goqu.I("r.end_date").Lt(*f.EndingBefore))
	}
	if f.EndingFrom != nil {
		conds = append(conds, goqu.I("r.end_date").Gte(*f.EndingFrom))
	}
	if p := f.Overlapping; p != nil {
		conds = append(conds,
			goqu.I("r.start_date").Lt(p.End()),
			goqu.I("r.end_date").Gt(p.Start()),
		)
	}
	return conds
}
