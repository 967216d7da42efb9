package infra

import (
	"context"
	"errors"
	"log/slog"

	"petshop-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	// Constraint is set for unique, foreign key and exclusion violations.
	Constraint string
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr classifies a driver error. An explicit kind overrides the classification.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind, constraint := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	switch kind {
	case KindUnavailable:
		err = errs.Mark(err, errs.ErrUnavailable)
	case KindCheckViolated, KindOutOfRange:
		err = errs.Mark(err, errs.ErrInvalid)
	}

	switch kind {
	case KindDBFailure, KindUnavailable:
		slog.Error("Repository error: "+msg, slog.String("kind", string(kind)), slog.Any("error", err))
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintOf returns the violated constraint name carried by err, if any.
func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

func classify(err error) (RepositoryErrorKind, string) {
	if err == nil {
		return KindDBFailure, ""
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound, ""
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return KindUnavailable, ""
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		var connErr *pgconn.ConnectError
		if errors.As(err, &connErr) {
			return KindUnavailable, ""
		}
		return KindDBFailure, ""
	}

	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	case pgErrCheckViolation:
		return KindCheckViolated, pgErr.ConstraintName
	case pgErrNumericOutOfRange:
		return KindOutOfRange, ""
	case pgErrSerializationFailure, pgErrDeadlockDetected:
		return KindRetryable, ""
	case pgErrQueryCanceled, pgErrLockNotAvailable, pgErrTooManyConnections, pgErrCannotConnectNow:
		return KindUnavailable, ""
	}
	return KindDBFailure, ""
}

const (
	pgErrUniqueViolation      = "23505"
	pgErrForeignKeyViolation  = "23503"
	pgErrExclusionViolation   = "23P01"
	pgErrCheckViolation       = "23514"
	pgErrNumericOutOfRange    = "22003"
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrQueryCanceled        = "57014"
	pgErrLockNotAvailable     = "55P03"
	pgErrTooManyConnections   = "53300"
	pgErrCannotConnectNow     = "57P03"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindOutOfRange         RepositoryErrorKind = "OUT_OF_RANGE"
	KindRetryable          RepositoryErrorKind = "RETRYABLE"
	KindUnavailable        RepositoryErrorKind = "UNAVAILABLE"
)
