package apierr

import "strings"

// Kind identifies one variant of the closed error taxonomy.
//
// Kind implements error so it can be used as an errors.Is target:
//
//	if errors.Is(err, apierr.KindRequest) {
//	    // also true for validation errors
//	}
type Kind uint8

const (
	// KindGeneric is the base kind. Every other kind satisfies it.
	KindGeneric Kind = iota

	// Caller-correctable kinds (safe tier).

	// KindRequest indicates a malformed or otherwise unacceptable request.
	KindRequest
	// KindValidation indicates request data failed validation. It specializes KindRequest.
	KindValidation
	// KindAuthentication indicates missing or invalid credentials.
	KindAuthentication
	// KindAuthorization indicates the caller lacks permission.
	KindAuthorization
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound
	// KindGone indicates the requested resource existed but was removed.
	KindGone

	// Server-side kinds (sensitive tier).

	// KindImplementation indicates a bug or unhandled state in the service.
	KindImplementation
	// KindData indicates stored or upstream data is inconsistent.
	KindData
	// KindConnection indicates a backend could not be reached.
	KindConnection
)

type kindSpec struct {
	name   string
	status int
	code   string
	parent Kind
}

// kinds is indexed by Kind. Status and code are fixed per kind and never
// taken from callers.
var kinds = [...]kindSpec{
	KindGeneric:        {name: "Error", status: 500},
	KindRequest:        {name: "RequestError", status: 400, code: "ERR_REQUEST_ERROR"},
	KindValidation:     {name: "ValidationError", status: 400, code: "ERR_VALIDATION_ERROR", parent: KindRequest},
	KindAuthentication: {name: "AuthenticationError", status: 401, code: "ERR_AUTHENTICATION_ERROR"},
	KindAuthorization:  {name: "AuthorizationError", status: 403, code: "ERR_AUTHORIZATION_ERROR"},
	KindNotFound:       {name: "NotFoundError", status: 404, code: "ERR_NOT_FOUND"},
	KindGone:           {name: "GoneError", status: 410, code: "ERR_GONE"},
	KindImplementation: {name: "ImplementationError", status: 500, code: "ERR_IMPLEMENTATION_ERROR"},
	KindData:           {name: "DataError", status: 500, code: "ERR_DATA_ERROR"},
	KindConnection:     {name: "ConnectionError", status: 503, code: "ERR_CONNECTION_ERROR"},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) spec() kindSpec {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[KindGeneric]
}

// Name returns the display name used as the first line of a rendered stack trace.
func (k Kind) Name() string { return k.spec().name }

// StatusCode returns the HTTP status associated with the kind.
func (k Kind) StatusCode() int { return k.spec().status }

// Code returns the machine-readable code. Empty for KindGeneric.
func (k Kind) Code() string { return k.spec().code }

// IsSafe reports whether errors of this kind may be shown to untrusted callers.
// Derived from the status code: anything below 500 is caller-caused.
func (k Kind) IsSafe() bool { return k.StatusCode() < 500 }

// Extends reports whether k is, or specializes, parent.
// Every kind extends KindGeneric; KindValidation also extends KindRequest.
func (k Kind) Extends(parent Kind) bool {
	if parent == KindGeneric || k == parent {
		return true
	}
	for cur := k.spec().parent; cur != KindGeneric; cur = cur.spec().parent {
		if cur == parent {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Name() }

// Error implements error so kinds can be errors.Is targets.
func (k Kind) Error() string { return k.Name() }

// ParseKind looks a kind up by display name ("NotFoundError") or code
// ("ERR_NOT_FOUND"), ignoring case.
func ParseKind(s string) (Kind, bool) {
	for i, spec := range kinds {
		if strings.EqualFold(s, spec.name) || (spec.code != "" && strings.EqualFold(s, spec.code)) {
			return Kind(i), true
		}
	}
	return KindGeneric, false
}
