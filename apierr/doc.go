// Package apierr defines the error kinds a service raises and the single
// function that turns them into response bodies.
//
// # Kinds
//
// The taxonomy is closed. Each kind has a fixed HTTP status and a fixed
// machine-readable code:
//
//	RequestError         400  ERR_REQUEST_ERROR
//	ValidationError      400  ERR_VALIDATION_ERROR   (is also a RequestError)
//	AuthenticationError  401  ERR_AUTHENTICATION_ERROR
//	AuthorizationError   403  ERR_AUTHORIZATION_ERROR
//	NotFoundError        404  ERR_NOT_FOUND
//	GoneError            410  ERR_GONE
//	ImplementationError  500  ERR_IMPLEMENTATION_ERROR
//	DataError            500  ERR_DATA_ERROR
//	ConnectionError      503  ERR_CONNECTION_ERROR
//	Error (generic)      500  (no code)
//
// Kinds with a status below 500 form the safe tier: the condition is the
// caller's to fix, so message, code and validation detail are always shown.
// Everything else is the sensitive tier and is opaque by default.
//
// # Raising errors
//
//	user, err := repo.Get(ctx, id)
//	if err != nil {
//	    return apierr.NewNotFoundErrorf("user %s not found", id)
//	}
//
//	return apierr.NewConnectionError("cannot reach billing").
//	    WithInfo(map[string]any{"host": billingHost})
//
// Kinds are errors.Is targets and honor the hierarchy:
//
//	errors.Is(apierr.NewValidationError("bad", nil), apierr.KindRequest) // true
//	errors.Is(apierr.NewNotFoundError("x"), apierr.KindImplementation)   // false
//
// # Rendering errors
//
// Format is called once, at the service boundary:
//
//	e, _ := apierr.As(err)
//	body := apierr.Format(e, apierr.Options{ExposeErrors: !production})
//	c.JSON(e.StatusCode(), body)
//
// With ExposeErrors the output additionally carries the stack trace captured
// at construction and every info entry whose key is not already used by a
// standard field.
package apierr
