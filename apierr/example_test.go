package apierr_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"codeberg.org/algopatterns/apierrors/apierr"
)

func ExampleFormat() {
	err := apierr.NewNotFoundError("user 42 not found")

	body, _ := json.Marshal(apierr.Format(err))
	fmt.Println(err.StatusCode(), string(body))
	// Output: 404 {"code":"ERR_NOT_FOUND","message":"user 42 not found"}
}

func ExampleFormat_sensitive() {
	err := apierr.NewConnectionError("dial tcp 10.0.0.7:5432: connection refused")

	body, _ := json.Marshal(apierr.Format(err, apierr.Options{ExposeErrors: false}))
	fmt.Println(err.StatusCode(), string(body))
	// Output: 503 {"message":"Internal Server Error"}
}

func ExampleNewValidationError() {
	err := apierr.NewValidationError("invalid payload", map[string]string{"email": "required"})

	body, _ := json.Marshal(apierr.Format(err))
	fmt.Println(string(body))
	// Output: {"code":"ERR_VALIDATION_ERROR","message":"invalid payload","validation":{"email":"required"}}
}

func ExampleKind() {
	err := fmt.Errorf("saving profile: %w", apierr.NewValidationError("name too long", nil))

	fmt.Println(errors.Is(err, apierr.KindRequest))
	fmt.Println(errors.Is(err, apierr.KindNotFound))
	fmt.Println(apierr.KindOf(err))
	// Output:
	// true
	// false
	// ValidationError
}
