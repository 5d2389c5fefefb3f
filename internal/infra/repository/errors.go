package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// storeError tags connectivity failures as store_unavailable and passes
// everything else through unchanged.
func storeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if _, ok := httperr.AsBusiness(err); ok {
		return err
	}

	if pgconn.Timeout(err) {
		return httperr.StoreUnavailable(err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return httperr.StoreUnavailable(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && isUnavailableCode(pgErr.Code) {
		return httperr.StoreUnavailable(err)
	}

	return err
}

// Class 08 is connection exception; 53300 too_many_connections;
// 57P01..57P03 are server shutdown / cannot connect now.
func isUnavailableCode(code string) bool {
	if strings.HasPrefix(code, "08") {
		return true
	}
	switch code {
	case "53300", "57P01", "57P02", "57P03":
		return true
	}
	return false
}
