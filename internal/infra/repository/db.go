package repository

import (
	"context"

	"lending-core/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	tableUsers              = "users"
	tableItems              = "items"
	tableLoans              = "loans"
	tableReservations       = "reservations"
	tableLoanHistory        = "loan_history"
	tableReservationHistory = "reservation_history"
	tableUserActionHistory  = "user_action_history"
)

// Dialect renders postgres placeholders ($1, $2, ...) once Prepared is set.
var Dialect = goqu.Dialect("postgres")

var (
	itemColumns        = []any{"id", "name", "category", "status", "created_at", "updated_at"}
	loanColumns        = []any{"id", "item_id", "borrower_id", "borrowed_at", "due_at", "returned_at", "status", "notes", "tags", "created_at", "updated_at"}
	reservationColumns = []any{"id", "item_id", "user_id", "start_date", "end_date", "status", "created_at", "updated_at"}
	userColumns        = []any{"id", "name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}
)

func SelectFrom(table any) *goqu.SelectDataset {
	return Dialect.From(table).Prepared(true)
}

func insertInto(table string) *goqu.InsertDataset {
	return Dialect.Insert(table).Prepared(true)
}

func update(table string) *goqu.UpdateDataset {
	return Dialect.Update(table).Prepared(true)
}

// qualified prefixes each column with a table alias.
func qualified(alias string, columns []any) []any {
	out := make([]any, 0, len(columns))
	for _, c := range columns {
		out = append(out, goqu.I(alias+"."+c.(string)))
	}
	return out
}

// CollectAll runs ds and scans every row into T by column name.
func CollectAll[T any](ctx context.Context, db DBTX, ds *goqu.SelectDataset) ([]T, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, errs.Wrap(err, "build query")
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}

// CollectOne returns pgx.ErrNoRows when ds matches nothing.
func CollectOne[T any](ctx context.Context, db DBTX, ds *goqu.SelectDataset) (T, error) {
	var zero T
	query, args, err := ds.ToSQL()
	if err != nil {
		return zero, errs.Wrap(err, "build query")
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
}

type execBuilder interface {
	ToSQL() (string, []any, error)
}

func execute(ctx context.Context, db DBTX, ds execBuilder) (pgconn.CommandTag, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return pgconn.CommandTag{}, errs.Wrap(err, "build statement")
	}
	return db.Exec(ctx, query, args...)
}
