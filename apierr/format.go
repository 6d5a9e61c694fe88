package apierr

import "encoding/json"

// FallbackMessage replaces the message of sensitive errors that are not exposed.
const FallbackMessage = "Internal Server Error"

// Options controls how much of an error Format discloses.
type Options struct {
	// ExposeErrors reveals message, code, validation, stack and info for
	// every error regardless of tier. Enable only for trusted callers.
	ExposeErrors bool
}

// Output is the caller-facing representation of an error.
//
// It marshals to a flat JSON object:
//
//	{"message": "...", "code": "...", "validation": ..., "stack": [...], <extra keys>}
//
// Empty Code, nil Validation, empty Stack and empty Extra are omitted.
type Output struct {
	Message    string
	Code       string
	Validation any
	Stack      []string
	// Extra holds info entries copied from the error. Keys never collide with
	// the standard fields present in the output.
	Extra map[string]any
}

// Format converts err into its caller-facing representation.
//
// Safe-tier errors (status below 500) always disclose message, code and
// validation detail. Sensitive-tier errors disclose only FallbackMessage
// unless ExposeErrors is set. Stack and info are disclosed only with
// ExposeErrors. Info entries never replace a field already in the output.
//
// Format does not modify err and returns equal output for equal input.
// Omitting opts is the same as passing the zero Options.
func Format(err *Error, opts ...Options) Output {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	out := Output{Message: FallbackMessage}
	if err == nil {
		return out
	}

	if o.ExposeErrors || err.IsSafe() {
		out.Message = err.message
		out.Code = err.Code()
		out.Validation = err.validation
	}

	if !o.ExposeErrors {
		return out
	}

	out.Stack = err.Stack()

	for k, v := range err.info {
		if out.has(k) {
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]any, len(err.info))
		}
		out.Extra[k] = v
	}

	return out
}

// has reports whether key is already occupied by a field of o.
func (o Output) has(key string) bool {
	switch key {
	case "message":
		return true
	case "code":
		return o.Code != ""
	case "validation":
		return o.Validation != nil
	case "stack":
		return len(o.Stack) > 0
	}
	_, ok := o.Extra[key]
	return ok
}

// Fields returns the flat map that Output serializes to.
func (o Output) Fields() map[string]any {
	fields := make(map[string]any, 4+len(o.Extra))
	fields["message"] = o.Message
	if o.Code != "" {
		fields["code"] = o.Code
	}
	if o.Validation != nil {
		fields["validation"] = o.Validation
	}
	if len(o.Stack) > 0 {
		fields["stack"] = o.Stack
	}
	for k, v := range o.Extra {
		if _, ok := fields[k]; !ok {
			fields[k] = v
		}
	}
	return fields
}

// MarshalJSON implements json.Marshaler.
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Fields())
}
