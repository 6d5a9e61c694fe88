package errors

// describes one failed constraint on a request field, used as validation detail
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}
