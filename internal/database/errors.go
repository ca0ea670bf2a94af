package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConnectionError is returned when the connection factory has exhausted
// its retry budget. It wraps the last failure seen.
type ConnectionError struct {
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to database after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ConstraintKind distinguishes the storage-level constraint classes the
// layer surfaces.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
)

// ConstraintViolation is a uniqueness or foreign-key failure reported by
// the store. It is surfaced to the caller unchanged apart from this typed
// wrapper; no recovery is attempted.
type ConstraintViolation struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s constraint %q violated: %v", e.Kind, e.Constraint, e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// Postgres error codes, https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeCannotConnectNow    = "57P03"
	pgCodeTooManyConnections  = "53300"
)

// ClassifyError wraps unique and foreign-key violations into a
// *ConstraintViolation and passes every other error through unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return &ConstraintViolation{Kind: ConstraintUnique, Constraint: pgErr.ConstraintName, Err: err}
		case pgCodeForeignKeyViolation:
			return &ConstraintViolation{Kind: ConstraintForeignKey, Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}

// IsTransient reports whether a connection failure belongs to the class
// worth retrying: dial and socket errors, timeouts, and Postgres states
// that resolve on their own (server starting up, pool exhausted).
// Authentication failures and malformed configuration are not transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgCodeCannotConnectNow || pgErr.Code == pgCodeTooManyConnections {
			return true
		}
		// Class 08: connection exceptions.
		return strings.HasPrefix(pgErr.Code, "08")
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded)
}
