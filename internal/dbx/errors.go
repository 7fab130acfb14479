package dbx

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/luconnect/luconnect/internal/common"
)

// Postgres SQLSTATE codes the repositories care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeTooManyConnections  = "53300"
	CodeAdminShutdown       = "57P01"
	CodeCannotConnectNow    = "57P03"
)

// Classify maps driver errors onto the common sentinels while keeping the
// original error in the chain:
//
//   - unique violation      -> common.ErrorConflict
//   - foreign key violation -> common.ErrorNotFound
//   - check violation       -> common.ErrorValidation
//   - connection failures   -> common.ErrUnavailable
//
// Any other error is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == CodeUniqueViolation:
			return fmt.Errorf("%w (%s): %w", common.ErrorConflict, ConstraintName(err), err)
		case pgErr.Code == CodeForeignKeyViolation:
			return fmt.Errorf("%w (%s): %w", common.ErrorNotFound, ConstraintName(err), err)
		case pgErr.Code == CodeCheckViolation:
			return fmt.Errorf("%w (%s): %w", common.ErrorValidation, ConstraintName(err), err)
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == CodeTooManyConnections,
			pgErr.Code == CodeAdminShutdown,
			pgErr.Code == CodeCannotConnectNow:
			return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
		}
		return err
	}

	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}

	return err
}

// IsUnavailable reports whether err is a connectivity failure rather than a
// query failure.
func IsUnavailable(err error) bool {
	if errors.Is(err, common.ErrUnavailable) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// ConstraintName returns the violated constraint of a Postgres error, or "".
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// HasCode reports whether err is a Postgres error with the given SQLSTATE.
func HasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
