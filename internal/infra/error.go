package infra

import (
	"log/slog"

	"lending-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// NewRepoErr builds a RepositoryError without logging. Expected outcomes
// such as a missing row go through here.
func NewRepoErr(kind RepositoryErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	return NewRepoErr(kind, msg, err)
}

// ClassifyPgErr maps a pgx error onto a repository kind. Constraint
// violations are expected under contention and are not logged.
func ClassifyPgErr(slogger *slog.Logger, msg string, err error) error {
	if errs.Is(err, pgx.ErrNoRows) {
		return NewRepoErr(KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return NewRepoErr(KindDuplicateKey, msg, err)
		case "23503":
			return NewRepoErr(KindForeignKeyViolated, msg, err)
		case "23P01":
			return NewRepoErr(KindConflict, msg, err)
		}
	}

	return WrapRepoErr(slogger, KindDBFailure, msg, err)
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// KindConflict: an exclusion constraint rejected overlapping holdings.
	KindConflict RepositoryErrorKind = "CONFLICT"
)
