// Package postgres implements the repository interfaces on a pgx connection pool.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/khabaroff/thesis-management/src/repositories"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DBTX is the subset of pgxpool.Pool used by the repositories. A pgx.Tx also satisfies it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translate maps driver errors onto repository errors. fk is returned for a
// foreign key violation, which means different things for writes and deletes.
func translate(err error, fk error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repositories.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(repositories.ErrDuplicate, pgErr)
		case pgForeignKeyViolation:
			return wrap(fk, pgErr)
		}
	}
	return err
}

// constraintError keeps the driver error reachable for logging while
// matching the repository sentinel with errors.Is.
type constraintError struct {
	kind error
	pg   *pgconn.PgError
}

func wrap(kind error, pg *pgconn.PgError) error {
	return &constraintError{kind: kind, pg: pg}
}

func (e *constraintError) Error() string {
	return e.kind.Error() + ": " + e.pg.ConstraintName
}

// Unwrap exposes both the sentinel and the driver error
func (e *constraintError) Unwrap() []error {
	return []error{e.kind, e.pg}
}

// requireAffected reports ErrNotFound when an UPDATE or DELETE touched no row
func requireAffected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
