package errors

import (
	"regexp"
	"strings"

	"codeberg.org/algopatterns/apierrors/apierr"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Build an apierr value at the point the fault is detected and hand it to
//     errorhandler.Abort(c, err); the error middleware logs and renders it
//   - Never write an error body directly with c.JSON
//
// For services/repositories/internal packages:
//   - Return apierr values when the kind is known, otherwise wrap with
//     fmt.Errorf("context: %w", err)
//   - Foreign errors (pgx, context, net, binding) are mapped by Classify at the boundary
//   - Do not log errors in non-handler code (avoid double logging)

// UUID format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (36 characters)
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// validates a UUID string format
func IsValidUUID(id string) bool {
	if id == "" {
		return false
	}

	return uuidRegex.MatchString(strings.ToLower(id))
}

// validates a UUID path value; a missing id is a bad request, a malformed one
// cannot exist and is reported as not found
func ValidateUUID(id string, resource string) *apierr.Error {
	if resource == "" {
		resource = "resource"
	}

	if id == "" {
		return apierr.NewRequestErrorf("missing %s id", resource)
	}

	if !IsValidUUID(id) {
		return apierr.NewNotFoundErrorf("%s not found", resource)
	}

	return nil
}
