package errors

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"

	"codeberg.org/algopatterns/apierrors/apierr"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgres SQLSTATE class for integrity constraint violations
const integrityViolationClass = "23"

// maps any error onto the taxonomy. errors that already carry an apierr value
// keep it; known foreign errors get the matching kind; the rest become the
// generic kind, which is never disclosed by default.
func Classify(err error) *apierr.Error {
	if err == nil {
		return nil
	}

	if e, ok := apierr.As(err); ok {
		return e
	}

	// no rows found
	if errors.Is(err, pgx.ErrNoRows) {
		return apierr.NewNotFoundError("resource not found")
	}

	// database errors (pgx-specific)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		info := map[string]any{"sqlstate": pgErr.Code}
		if pgErr.ConstraintName != "" {
			info["constraint"] = pgErr.ConstraintName
		}

		if pgErr.TableName != "" {
			info["table"] = pgErr.TableName
		}

		if strings.HasPrefix(pgErr.Code, integrityViolationClass) {
			return apierr.NewRequestError("request conflicts with existing data").WithInfo(info)
		}

		return apierr.NewDataError(pgErr.Message).WithInfo(info)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apierr.NewConnectionError(err.Error())
	}

	// client went away
	if errors.Is(err, context.Canceled) {
		return apierr.NewRequestError("request canceled")
	}

	// context deadline, pgx timeouts and network timeouts
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return apierr.NewConnectionError(err.Error()).WithInfo(map[string]any{"timeout": true})
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apierr.NewConnectionError(err.Error())
	}

	// unknown - generic 500
	return apierr.New(err.Error())
}

// maps a gin binding failure (ShouldBindJSON and friends) onto the taxonomy
func FromBinding(err error) *apierr.Error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{
				Field: fe.Field(),
				Rule:  fe.Tag(),
				Param: fe.Param(),
			})
		}

		return apierr.NewValidationError("request validation failed", fields)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return apierr.NewRequestError("malformed request body")
	}

	return apierr.NewRequestError("invalid request")
}
