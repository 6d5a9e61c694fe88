package apierr

import (
	stderrors "errors"
)

// Error is a single error of the taxonomy. Values are created through the
// New* constructors and are immutable apart from the info map attached with
// WithInfo.
type Error struct {
	kind       Kind
	message    string
	validation any
	info       map[string]any
	stack      []string
}

// Error returns the message exactly as given to the constructor.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Kind returns the variant of the error.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindGeneric
	}
	return e.kind
}

// Name returns the display name of the variant, e.g. "NotFoundError".
func (e *Error) Name() string { return e.Kind().Name() }

// Message returns the human-readable message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// StatusCode returns the fixed HTTP status of the variant.
func (e *Error) StatusCode() int { return e.Kind().StatusCode() }

// Code returns the fixed machine-readable code of the variant, or "" for the generic kind.
func (e *Error) Code() string { return e.Kind().Code() }

// IsSafe reports whether the error belongs to the safe disclosure tier.
func (e *Error) IsSafe() bool { return e.StatusCode() < 500 }

// Validation returns the validation detail passed to NewValidationError, or nil.
func (e *Error) Validation() any {
	if e == nil {
		return nil
	}
	return e.validation
}

// Info returns a copy of the attached info map, or nil if none was attached.
func (e *Error) Info() map[string]any {
	if e == nil {
		return nil
	}
	return copyInfo(e.info)
}

// Stack returns a copy of the stack trace captured at construction.
// The first line is "<Name>: <message>", each following line one frame.
func (e *Error) Stack() []string {
	if e == nil || len(e.stack) == 0 {
		return nil
	}
	out := make([]string, len(e.stack))
	copy(out, e.stack)
	return out
}

// WithInfo attaches additional structured context and returns the receiver.
// The map is copied; a later call replaces the previously attached info.
// Info only reaches callers when errors are formatted with ExposeErrors.
func (e *Error) WithInfo(info map[string]any) *Error {
	if e == nil {
		return nil
	}
	e.info = copyInfo(info)
	return e
}

// Is lets errors.Is match a Kind against the error, honoring the kind hierarchy.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	if !ok {
		return false
	}
	return e.Kind().Extends(k)
}

// MarshalJSON renders the error with default disclosure options, so an
// *Error serialized directly never leaks sensitive detail.
func (e *Error) MarshalJSON() ([]byte, error) {
	return Format(e).MarshalJSON()
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain.
// Returns KindGeneric if err is nil or carries no *Error.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.kind
	}
	return KindGeneric
}

func copyInfo(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
